package engine

import (
	"context"
	"sync"
	"time"

	"github.com/dshills/focusflow/internal/adapter"
	"github.com/dshills/focusflow/internal/adapter/gamepad"
	"github.com/dshills/focusflow/internal/adapter/gesture"
	"github.com/dshills/focusflow/internal/adapter/keyboard"
	"github.com/dshills/focusflow/internal/binding"
	"github.com/dshills/focusflow/internal/controller"
	"github.com/dshills/focusflow/internal/event"
	"github.com/dshills/focusflow/internal/focus"
	"github.com/dshills/focusflow/internal/geom"
	"github.com/dshills/focusflow/internal/intent"
	"github.com/dshills/focusflow/internal/scroll"
)

// Re-export the consumer-facing types for convenience.
type (
	// Node is a focusable region.
	Node = focus.Node

	// Group clusters nodes sharing edge policy.
	Group = focus.Group

	// Policy is a group's edge behavior.
	Policy = focus.Policy

	// Handle identifies one focusable registration.
	Handle = focus.Handle

	// Event is one engine notification.
	Event = event.Event

	// Subscription identifies one event subscription.
	Subscription = event.Subscription

	// Binding maps an input code to an intent.
	Binding = binding.Binding

	// Container is a scrollable region.
	Container = scroll.Container
)

// Engine wires the input adapters, the intent pipeline, the focus
// graph and controller, the scroll coordinator and the event bus into
// one consumer surface. All focus mutation runs on a single pump
// goroutine fed by the shared intent queue.
type Engine struct {
	graph      *focus.Graph
	resolver   *focus.Resolver
	bus        *event.Bus
	controller *controller.Controller
	scroller   *scroll.Coordinator
	queue      *intent.Queue
	normalizer *intent.Normalizer
	table      *binding.Table
	keys       *keyboard.Adapter
	gestures   *gesture.Recognizer
	profiles   *gamepad.Registry
	watcher    *binding.Watcher

	mu         sync.Mutex
	containers map[string]scroll.Container
	poller     *gamepad.Poller
	running    bool
	cancel     context.CancelFunc
	done       chan struct{}
	pollDone   chan struct{}

	// Options.
	queueSize      int
	coalescing     time.Duration
	curve          adapter.RepeatCurve
	weights        focus.Weights
	scrollCfg      scroll.Config
	deadzone       float64
	pollInterval   time.Duration
	gamepadProfile string
	bindingsPath   string
	rootBack       func()
}

// New creates an engine with the default binding table and the given
// options applied.
func New(opts ...Option) *Engine {
	e := &Engine{
		containers: make(map[string]scroll.Container),
		queueSize:  intent.DefaultQueueSize,
		curve:      adapter.DefaultRepeatCurve(),
		weights:    focus.DefaultWeights(),
		deadzone:   gamepad.DefaultDeadzone,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.graph = focus.NewGraph()
	e.resolver = focus.NewResolver(e.weights)
	e.bus = event.NewBus(nil)
	e.scroller = scroll.New(e.scrollCfg)
	e.table = binding.DefaultTable()
	e.queue = intent.NewQueue(e.queueSize)
	e.profiles = gamepad.NewRegistry()

	e.controller = controller.New(e.graph, e.resolver, &busNotifier{bus: e.bus}, &groupScroller{engine: e})
	if e.rootBack != nil {
		e.controller.SetRootBackHandler(e.rootBack)
	}

	e.normalizer = intent.NewNormalizer(e.controller, e.coalescing)
	e.keys = keyboard.New(e.table, e.curve, e.queue.Enqueue)
	e.normalizer.AddRepeatCanceller(e.keys)
	e.gestures = gesture.NewRecognizer(gesture.Config{}, e.queue.Enqueue)

	return e
}

// Start loads persisted bindings, begins watching the bindings file,
// and launches the intent pump. Starting a running engine is a no-op.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.running {
		return nil
	}

	if e.bindingsPath != "" {
		if err := e.loadBindings(); err != nil {
			return err
		}
		w, err := binding.NewWatcher(e.bindingsPath, func(f binding.File, _ []error, err error) {
			if err == nil {
				e.table.Apply(f.Entries)
			}
		})
		if err == nil {
			e.watcher = w
		}
		// A watcher failure degrades live reload, never startup.
	}

	ctx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	e.done = make(chan struct{})
	e.running = true

	go e.pump()
	if e.poller != nil {
		e.pollDone = make(chan struct{})
		go func(p *gamepad.Poller, done chan struct{}) {
			defer close(done)
			p.Run(ctx)
		}(e.poller, e.pollDone)
	}
	return nil
}

// Stop shuts the engine down: the queue closes, the pump drains, the
// poller and in-flight scroll animations are cancelled.
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	e.running = false
	cancel, done, pollDone := e.cancel, e.done, e.pollDone
	watcher := e.watcher
	e.watcher = nil
	e.mu.Unlock()

	cancel()
	if pollDone != nil {
		<-pollDone
	}
	e.queue.Close()
	<-done

	e.keys.Close()
	e.scroller.Stop()
	if watcher != nil {
		watcher.Close()
	}
}

// pump is the single goroutine that mutates focus state.
func (e *Engine) pump() {
	defer close(e.done)
	for in := range e.queue.Intents() {
		out, ok := e.normalizer.Normalize(in)
		if !ok {
			continue
		}
		e.controller.HandleIntent(out)
	}
}

// Keyboard returns the keyboard adapter for the host to feed key
// events into.
func (e *Engine) Keyboard() *keyboard.Adapter {
	return e.keys
}

// Gestures returns the pointer gesture recognizer for the host to
// feed contacts into.
func (e *Engine) Gestures() *gesture.Recognizer {
	return e.gestures
}

// Bindings returns the live binding table.
func (e *Engine) Bindings() *binding.Table {
	return e.table
}

// GamepadProfiles returns the mapping profile registry for consumers
// to register device-specific profiles on.
func (e *Engine) GamepadProfiles() *gamepad.Registry {
	return e.profiles
}

// AttachGamepad wires a controller backend. Must be called before
// Start; the poller launches with the engine.
func (e *Engine) AttachGamepad(backend gamepad.Backend) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.running || e.poller != nil {
		return
	}
	e.poller = gamepad.NewPoller(backend, e.table, e.profiles, gamepad.Config{
		Interval: e.pollInterval,
		Deadzone: e.deadzone,
		Curve:    e.curve,
		Profile:  e.gamepadProfile,
	}, e.queue.Enqueue)
	e.normalizer.AddRepeatCanceller(e.poller)
}

// Post enqueues a programmatic intent, e.g. from tests or scripted
// navigation.
func (e *Engine) Post(in intent.Intent) {
	e.queue.Enqueue(in)
}

// RegisterFocusable adds a focusable node and returns its handle.
func (e *Engine) RegisterFocusable(n Node) (Handle, error) {
	h, err := e.graph.Register(n)
	if err != nil {
		return "", err
	}
	e.controller.NodeRegistered(n.ID)
	return h, nil
}

// UnregisterFocusable removes a node. Unknown handles are a no-op;
// removing the focused node reassigns focus deterministically.
func (e *Engine) UnregisterFocusable(h Handle) {
	e.controller.Unregister(h)
}

// DefineGroup sets a group's edge policy and default node.
func (e *Engine) DefineGroup(g Group) error {
	return e.graph.DefineGroup(g)
}

// RefreshBounds pushes fresh bounds for a node after a layout change.
func (e *Engine) RefreshBounds(h Handle, r geom.Rect) {
	e.graph.RefreshBounds(h, r)
}

// SetBoundsProvider installs a pull-style bounds hook.
func (e *Engine) SetBoundsProvider(p focus.BoundsProvider) {
	e.graph.SetBoundsProvider(p)
}

// SetDisabled toggles a node's participation in focus resolution.
func (e *Engine) SetDisabled(h Handle, disabled bool) {
	e.graph.SetDisabled(h, disabled)
}

// AttachContainer binds a scrollable container to a focus group. The
// scroll coordinator keeps focused members of the group visible
// inside it.
func (e *Engine) AttachContainer(groupID string, c Container) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.containers[groupID] = c
}

// Subscribe registers an event handler.
func (e *Engine) Subscribe(kind event.Kind, h event.Handler) (Subscription, error) {
	return e.bus.Subscribe(kind, h)
}

// Unsubscribe removes an event subscription.
func (e *Engine) Unsubscribe(sub Subscription) error {
	return e.bus.Unsubscribe(sub)
}

// ConfigureBindings overlays user bindings onto the table. Malformed
// entries are rejected individually and returned; the valid rest of
// the set still applies.
func (e *Engine) ConfigureBindings(entries []Binding) []error {
	return e.table.Apply(entries)
}

// ReplaceBindings swaps the whole table for the given set. An
// entirely invalid set keeps the previous table.
func (e *Engine) ReplaceBindings(entries []Binding) []error {
	return e.table.Replace(entries)
}

// SaveBindings persists the current table to the configured bindings
// path.
func (e *Engine) SaveBindings() error {
	if e.bindingsPath == "" {
		return nil
	}
	return binding.Save(e.bindingsPath, binding.File{
		Entries: e.table.All(),
		Profile: e.gamepadProfile,
	})
}

// SuspendFor claims exclusive input for an overlay. Only resume-class
// intents pass until Resume; trapGroup is remembered for the overlay.
func (e *Engine) SuspendFor(overlayID, trapGroup string, resumeKinds ...intent.Kind) {
	e.controller.Suspend(overlayID, trapGroup, resumeKinds...)
	e.normalizer.Reset()
}

// Resume ends a suspension, restoring the pre-suspension focus when
// possible.
func (e *Engine) Resume() {
	e.controller.Resume()
}

// SetRootBackHandler installs the handler for back intents that find
// an empty history stack.
func (e *Engine) SetRootBackHandler(h func()) {
	e.controller.SetRootBackHandler(h)
}

// Current returns the focused node id, if any.
func (e *Engine) Current() (string, bool) {
	return e.controller.Current()
}

// History returns a copy of the back-navigation stack, oldest first.
func (e *Engine) History() []string {
	return e.controller.History()
}

// loadBindings reads the persisted blob, falling back to defaults on
// absence. Malformed entries degrade individually.
func (e *Engine) loadBindings() error {
	f, _, err := binding.Load(e.bindingsPath)
	if err != nil {
		return err
	}
	e.table.Apply(f.Entries)
	if e.gamepadProfile == "" {
		e.gamepadProfile = f.Profile
	}
	return nil
}

// busNotifier publishes controller notifications on the event bus.
type busNotifier struct {
	bus *event.Bus
}

func (n *busNotifier) FocusChanged(from, to string) { n.bus.Publish(event.FocusChanged(from, to)) }
func (n *busNotifier) Activated(id string)          { n.bus.Publish(event.Activated(id)) }
func (n *busNotifier) BackExhausted()               { n.bus.Publish(event.BackExhausted()) }
func (n *busNotifier) Suspended(overlayID string)   { n.bus.Publish(event.Suspended(overlayID)) }
func (n *busNotifier) Resumed(id string)            { n.bus.Publish(event.Resumed(id)) }

// groupScroller routes a focused node to its group's container.
type groupScroller struct {
	engine *Engine
}

func (s *groupScroller) EnsureVisible(n focus.Node) {
	s.engine.mu.Lock()
	cont := s.engine.containers[n.Group]
	s.engine.mu.Unlock()

	if cont != nil {
		s.engine.scroller.EnsureVisible(cont, n.Bounds)
	}
}
