package adapter

import (
	"sync"
	"time"

	"github.com/dshills/focusflow/internal/intent"
)

// RepeatCurve describes the auto-repeat acceleration for held
// directional input: a fixed initial delay, then intervals that shrink
// by Decay per tick down to MinInterval. The values are product-tuning
// constants; the defaults are chosen so holding a direction walks a
// list at a comfortable, accelerating pace without flooding one intent
// per frame.
type RepeatCurve struct {
	// InitialDelay is the hold time before the first repeat tick.
	InitialDelay time.Duration

	// StartInterval is the interval between the first repeat ticks.
	StartInterval time.Duration

	// MinInterval is the floor the interval decays toward.
	MinInterval time.Duration

	// Decay is the per-tick interval multiplier in (0, 1].
	Decay float64
}

// DefaultRepeatCurve returns the default acceleration curve.
func DefaultRepeatCurve() RepeatCurve {
	return RepeatCurve{
		InitialDelay:  350 * time.Millisecond,
		StartInterval: 160 * time.Millisecond,
		MinInterval:   50 * time.Millisecond,
		Decay:         0.85,
	}
}

// normalize fills zero or invalid fields from the defaults.
func (c RepeatCurve) normalize() RepeatCurve {
	def := DefaultRepeatCurve()
	if c.InitialDelay <= 0 {
		c.InitialDelay = def.InitialDelay
	}
	if c.StartInterval <= 0 {
		c.StartInterval = def.StartInterval
	}
	if c.MinInterval <= 0 {
		c.MinInterval = def.MinInterval
	}
	if c.Decay <= 0 || c.Decay > 1 {
		c.Decay = def.Decay
	}
	return c
}

// next returns the interval following the given one.
func (c RepeatCurve) next(current time.Duration) time.Duration {
	n := time.Duration(float64(current) * c.Decay)
	if n < c.MinInterval {
		n = c.MinInterval
	}
	return n
}

// repeatState tracks one held direction.
type repeatState struct {
	timer      *time.Timer
	interval   time.Duration
	generation int
}

// Repeater turns press/release transitions into an accelerating
// stream of move intents. One Repeater is owned per adapter so the
// normalizer can cancel a specific source's pending ticks on
// directional reversal.
type Repeater struct {
	mu     sync.Mutex
	curve  RepeatCurve
	source intent.Source
	emit   func(intent.Intent)
	held   map[intent.Direction]*repeatState
	closed bool
}

// NewRepeater creates a repeater emitting intents for the given
// source through emit. Zero curve fields fall back to defaults.
func NewRepeater(curve RepeatCurve, source intent.Source, emit func(intent.Intent)) *Repeater {
	return &Repeater{
		curve:  curve.normalize(),
		source: source,
		emit:   emit,
		held:   make(map[intent.Direction]*repeatState),
	}
}

// Press registers a direction press. The initial move intent is
// emitted immediately and repeat ticks are scheduled. Pressing an
// already-held direction is a no-op.
func (r *Repeater) Press(dir intent.Direction) {
	if dir == intent.DirNone {
		return
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	if _, holding := r.held[dir]; holding {
		r.mu.Unlock()
		return
	}

	state := &repeatState{interval: r.curve.StartInterval}
	state.timer = time.AfterFunc(r.curve.InitialDelay, func() { r.tick(dir) })
	r.held[dir] = state
	r.mu.Unlock()

	r.emit(intent.Move(dir, r.source))
}

// Release cancels the pending repeat for a direction. Releasing a
// direction that is not held is a no-op.
func (r *Repeater) Release(dir intent.Direction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked(dir)
}

// CancelRepeat implements intent.RepeatCanceller. It behaves like
// Release: any future ticks for the direction are cancelled.
func (r *Repeater) CancelRepeat(dir intent.Direction) {
	r.Release(dir)
}

// Holding returns true if the direction currently has a pending repeat.
func (r *Repeater) Holding(dir intent.Direction) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.held[dir]
	return ok
}

// Stop cancels all pending repeats and rejects further presses.
func (r *Repeater) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for dir := range r.held {
		r.stopLocked(dir)
	}
	r.closed = true
}

func (r *Repeater) stopLocked(dir intent.Direction) {
	state, ok := r.held[dir]
	if !ok {
		return
	}
	state.timer.Stop()
	delete(r.held, dir)
}

// tick emits one repeat intent and schedules the next at the decayed
// interval.
func (r *Repeater) tick(dir intent.Direction) {
	r.mu.Lock()
	state, ok := r.held[dir]
	if !ok || r.closed {
		r.mu.Unlock()
		return
	}

	state.generation++
	generation := state.generation
	state.timer = time.AfterFunc(state.interval, func() { r.tick(dir) })
	state.interval = r.curve.next(state.interval)
	r.mu.Unlock()

	in := intent.Move(dir, r.source)
	in.RepeatGeneration = generation
	r.emit(in)
}
