package gesture

import (
	"math"
	"sync"
	"time"

	"github.com/dshills/focusflow/internal/geom"
	"github.com/dshills/focusflow/internal/intent"
)

// Default thresholds. A contact that travels less than MinDistance and
// ends quickly is a tap; one that travels at least MinDistance with at
// least MinVelocity is a swipe. Anything between is discarded.
const (
	DefaultMinDistance = 30.0
	DefaultMinVelocity = 100.0 // units per second
	DefaultTapSlop     = 8.0
	DefaultTapTimeout  = 300 * time.Millisecond
)

// Config tunes gesture recognition thresholds. Zero values take the
// package defaults.
type Config struct {
	// MinDistance is the travel a contact needs to register as a swipe.
	MinDistance float64

	// MinVelocity is the minimum average speed, in coordinate units
	// per second, for a swipe. Slow drags are discarded.
	MinVelocity float64

	// TapSlop is the travel a contact may accumulate and still count
	// as a tap.
	TapSlop float64

	// TapTimeout is how long a contact may stay down and still count
	// as a tap.
	TapTimeout time.Duration
}

func (c Config) normalize() Config {
	if c.MinDistance <= 0 {
		c.MinDistance = DefaultMinDistance
	}
	if c.MinVelocity <= 0 {
		c.MinVelocity = DefaultMinVelocity
	}
	if c.TapSlop <= 0 {
		c.TapSlop = DefaultTapSlop
	}
	if c.TapTimeout <= 0 {
		c.TapTimeout = DefaultTapTimeout
	}
	return c
}

// Recognizer classifies pointer contacts into navigation intents. A
// completed contact yields at most one intent: a tap becomes activate,
// a swipe becomes a single move along its dominant axis. Gestures
// never auto-repeat.
type Recognizer struct {
	config Config
	emit   func(intent.Intent)

	mu       sync.Mutex
	active   bool
	start    geom.Point
	startAt  time.Time
	last     geom.Point
	traveled float64
}

// NewRecognizer creates a recognizer that reports intents to emit.
func NewRecognizer(config Config, emit func(intent.Intent)) *Recognizer {
	return &Recognizer{config: config.normalize(), emit: emit}
}

// PointerDown begins a contact. A second down while a contact is
// active restarts recognition from the new position.
func (r *Recognizer) PointerDown(p geom.Point, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.active = true
	r.start = p
	r.startAt = at
	r.last = p
	r.traveled = 0
}

// PointerMove extends the active contact. Moves without a preceding
// down are ignored.
func (r *Recognizer) PointerMove(p geom.Point, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.active {
		return
	}
	r.traveled += r.last.DistanceTo(p)
	r.last = p
}

// PointerUp completes the contact and classifies it. Ups without a
// preceding down are ignored.
func (r *Recognizer) PointerUp(p geom.Point, at time.Time) {
	r.mu.Lock()
	if !r.active {
		r.mu.Unlock()
		return
	}
	r.traveled += r.last.DistanceTo(p)

	start, startAt, traveled := r.start, r.startAt, r.traveled
	r.active = false
	r.mu.Unlock()

	held := at.Sub(startAt)
	displacement := start.DistanceTo(p)

	if traveled <= r.config.TapSlop && held <= r.config.TapTimeout {
		r.emit(intent.Activate(intent.SourcePointer))
		return
	}

	if displacement < r.config.MinDistance {
		return
	}
	if held <= 0 {
		held = time.Millisecond
	}
	velocity := displacement / held.Seconds()
	if velocity < r.config.MinVelocity {
		return
	}

	if dir := dominantDirection(start, p); dir != intent.DirNone {
		r.emit(intent.Move(dir, intent.SourcePointer))
	}
}

// Cancel discards the active contact without emitting anything, e.g.
// when the host loses pointer capture.
func (r *Recognizer) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = false
}

// dominantDirection quantizes a displacement to the axis it mostly
// moved along. Focus follows the swipe: swiping right moves right.
func dominantDirection(from, to geom.Point) intent.Direction {
	dx := to.X - from.X
	dy := to.Y - from.Y

	if math.Abs(dx) >= math.Abs(dy) {
		if dx < 0 {
			return intent.DirLeft
		}
		return intent.DirRight
	}
	if dy < 0 {
		return intent.DirUp
	}
	return intent.DirDown
}
