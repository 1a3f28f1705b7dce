package controller

import (
	"sync"

	"github.com/dshills/focusflow/internal/focus"
	"github.com/dshills/focusflow/internal/intent"
)

// State is the controller's lifecycle state.
type State uint8

const (
	// StateIdle means no node holds focus.
	StateIdle State = iota
	// StateFocused means exactly one node holds focus.
	StateFocused
	// StateSuspended means an overlay claims exclusive input.
	StateSuspended
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateFocused:
		return "focused"
	case StateSuspended:
		return "suspended"
	default:
		return "idle"
	}
}

// Notifier receives the controller's state change notifications. The
// scroll side effect has already settled when FocusChanged fires, so
// observers never see a focused-but-invisible node.
type Notifier interface {
	FocusChanged(from, to string)
	Activated(id string)
	BackExhausted()
	Suspended(overlayID string)
	Resumed(id string)
}

// Scroller brings a node into its container's visible bounds. It is
// invoked synchronously before the focus-changed notification.
type Scroller interface {
	EnsureVisible(n focus.Node)
}

// RootBackHandler receives back intents that exhaust the history
// stack, e.g. to navigate up a page hierarchy.
type RootBackHandler func()

// overlay records an active suspension.
type overlay struct {
	id          string
	trapGroup   string
	resumeKinds map[intent.Kind]bool
}

// Controller owns the focus state: the current node, the history
// stack, and the suspension overlay. All mutation is serialized by an
// internal mutex; adapters never touch it directly.
type Controller struct {
	graph    *focus.Graph
	resolver *focus.Resolver
	notify   Notifier
	scroller Scroller

	mu       sync.Mutex
	state    State
	current  string
	history  []string
	active   *overlay
	rootBack RootBackHandler
}

// New creates a controller over the given graph. notify and scroller
// may be nil.
func New(graph *focus.Graph, resolver *focus.Resolver, notify Notifier, scroller Scroller) *Controller {
	return &Controller{
		graph:    graph,
		resolver: resolver,
		notify:   notify,
		scroller: scroller,
	}
}

// SetRootBackHandler installs the handler for back intents that find
// an empty history. A nil handler makes them a no-op.
func (c *Controller) SetRootBackHandler(h RootBackHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rootBack = h
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Current returns the focused node id, if any.
func (c *Controller) Current() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current, c.state != StateIdle && c.current != ""
}

// History returns a copy of the back-navigation stack, oldest first.
func (c *Controller) History() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.history))
	copy(out, c.history)
	return out
}

// Suspended implements intent.StateProvider.
func (c *Controller) Suspended() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateSuspended
}

// IsResumeKind implements intent.StateProvider: the active overlay
// decides which intent kinds may pass while suspended.
func (c *Controller) IsResumeKind(k intent.Kind) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil {
		return k == intent.KindResume
	}
	return c.active.resumeKinds[k]
}

// HandleIntent applies one normalized intent.
func (c *Controller) HandleIntent(in intent.Intent) {
	switch in.Kind {
	case intent.KindMove:
		c.Move(in.Direction)
	case intent.KindActivate:
		c.Activate()
	case intent.KindBack:
		c.Back()
	case intent.KindSuspend:
		c.Suspend("", "")
	case intent.KindResume:
		c.Resume()
	}
}

// NodeRegistered reacts to a registration: the first node focuses the
// graph default while idle. Call after focus.Graph.Register succeeds.
func (c *Controller) NodeRegistered(id string) {
	c.mu.Lock()
	if c.state != StateIdle {
		c.mu.Unlock()
		return
	}

	target, ok := c.graph.GroupDefault(focus.DefaultGroup)
	if !ok {
		target, ok = c.graph.First()
	}
	if !ok {
		c.mu.Unlock()
		return
	}
	c.state = StateFocused
	c.current = target
	c.mu.Unlock()

	c.settle("", target)
}

// Unregister removes a node through the controller so focus can be
// reassigned deterministically when the current node disappears:
// nearest same-group sibling by registration order, else the group's
// default, else any remaining node, else idle.
func (c *Controller) Unregister(h focus.Handle) {
	id, ok := c.graph.IDForHandle(h)
	if !ok {
		c.graph.Unregister(h)
		return
	}

	c.mu.Lock()
	isCurrent := c.state != StateIdle && c.current == id
	c.mu.Unlock()

	var siblings []string
	grp := ""
	if isCurrent {
		if n, ok := c.graph.Node(id); ok {
			grp = n.Group
		}
		siblings = orderedSiblings(c.graph, id)
	}
	c.graph.Unregister(h)
	if !isCurrent {
		return
	}
	c.reassign(id, grp, siblings)
}

// reassign moves focus off an unregistered node.
func (c *Controller) reassign(removed, grp string, siblings []string) {
	target := ""
	for _, s := range siblings {
		if n, ok := c.graph.Node(s); ok && !n.Disabled {
			target = s
			break
		}
	}
	if target == "" && grp != "" {
		if id, ok := c.graph.GroupDefault(grp); ok {
			target = id
		}
	}
	if target == "" {
		if id, ok := c.graph.First(); ok {
			target = id
		}
	}

	c.mu.Lock()
	if target == "" {
		c.state = StateIdle
		c.current = ""
		c.history = nil
		c.mu.Unlock()
		return
	}
	c.current = target
	c.mu.Unlock()

	c.settle(removed, target)
}

// Move resolves a directional intent. With no candidate and no wrap
// this is a silent no-op: focus does not change and nothing fires.
func (c *Controller) Move(dir intent.Direction) {
	c.mu.Lock()
	if c.state != StateFocused || c.current == "" {
		c.mu.Unlock()
		return
	}
	from := c.current
	c.mu.Unlock()

	to, ok := c.resolver.Next(c.graph, from, dir)
	if !ok || to == from {
		return
	}

	c.mu.Lock()
	// A competing mutation may have landed while resolving.
	if c.state != StateFocused || c.current != from {
		c.mu.Unlock()
		return
	}
	c.history = append(c.history, from)
	c.current = to
	c.mu.Unlock()

	c.settle(from, to)
}

// Activate invokes the focused node's activation handler. Focus does
// not change; every activate intent invokes the handler exactly once.
func (c *Controller) Activate() {
	c.mu.Lock()
	if c.state != StateFocused || c.current == "" {
		c.mu.Unlock()
		return
	}
	id := c.current
	c.mu.Unlock()

	n, ok := c.graph.Node(id)
	if !ok || n.Disabled {
		return
	}
	if n.OnActivate != nil {
		n.OnActivate()
	}
	if c.notify != nil {
		c.notify.Activated(id)
	}
}

// Back pops the history stack, skipping entries that have since been
// unregistered or disabled. An exhausted stack is delegated to the
// root back handler; with none configured it is a no-op.
func (c *Controller) Back() {
	c.mu.Lock()
	if c.state != StateFocused {
		c.mu.Unlock()
		return
	}

	from := c.current
	target := ""
	for len(c.history) > 0 {
		last := len(c.history) - 1
		candidate := c.history[last]
		c.history = c.history[:last]

		if n, ok := c.graph.Node(candidate); ok && !n.Disabled {
			target = candidate
			break
		}
	}
	if target == "" {
		handler := c.rootBack
		c.mu.Unlock()

		if c.notify != nil {
			c.notify.BackExhausted()
		}
		if handler != nil {
			handler()
		}
		return
	}
	c.current = target
	c.mu.Unlock()

	c.settle(from, target)
}

// Suspend claims exclusive input for an overlay. The current focus is
// pushed to history for restoration on resume. Extra resume kinds let
// the overlay widen what passes the normalizer while suspended; the
// resume kind itself always passes.
func (c *Controller) Suspend(overlayID, trapGroup string, resumeKinds ...intent.Kind) {
	c.mu.Lock()
	if c.state == StateSuspended {
		c.mu.Unlock()
		return
	}

	kinds := map[intent.Kind]bool{intent.KindResume: true}
	for _, k := range resumeKinds {
		kinds[k] = true
	}

	if c.current != "" {
		c.history = append(c.history, c.current)
	}
	c.state = StateSuspended
	c.active = &overlay{id: overlayID, trapGroup: trapGroup, resumeKinds: kinds}
	c.mu.Unlock()

	if c.notify != nil {
		c.notify.Suspended(overlayID)
	}
}

// Resume returns from suspension, restoring the pre-suspension node
// if it is still registered and enabled, else falling back to the
// graph's default resolution.
func (c *Controller) Resume() {
	c.mu.Lock()
	if c.state != StateSuspended {
		c.mu.Unlock()
		return
	}

	target := ""
	if len(c.history) > 0 {
		last := len(c.history) - 1
		candidate := c.history[last]
		c.history = c.history[:last]
		if n, ok := c.graph.Node(candidate); ok && !n.Disabled {
			target = candidate
		}
	}
	if target == "" {
		if id, ok := c.graph.GroupDefault(focus.DefaultGroup); ok {
			target = id
		} else if id, ok := c.graph.First(); ok {
			target = id
		}
	}

	c.active = nil
	if target == "" {
		c.state = StateIdle
		c.current = ""
		c.mu.Unlock()
		return
	}
	c.state = StateFocused
	c.current = target
	c.mu.Unlock()

	if c.notify != nil {
		c.notify.Resumed(target)
	}
}

// OverlayTrapGroup returns the trap group of the active overlay.
func (c *Controller) OverlayTrapGroup() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil {
		return "", false
	}
	return c.active.trapGroup, true
}

// settle runs the scroll side effect and emits focus-changed, in that
// order.
func (c *Controller) settle(from, to string) {
	if c.scroller != nil {
		if n, ok := c.graph.Node(to); ok {
			c.scroller.EnsureVisible(n)
		}
	}
	if c.notify != nil {
		c.notify.FocusChanged(from, to)
	}
}

// orderedSiblings returns a node's same-group neighbors by order
// distance: the following member first, then the preceding, then
// outward.
func orderedSiblings(g *focus.Graph, id string) []string {
	n, ok := g.Node(id)
	if !ok {
		return nil
	}
	members := g.Members(n.Group)

	idx := -1
	for i, m := range members {
		if m.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	var out []string
	for d := 1; d < len(members); d++ {
		if i := idx + d; i < len(members) {
			out = append(out, members[i].ID)
		}
		if i := idx - d; i >= 0 {
			out = append(out, members[i].ID)
		}
	}
	return out
}
