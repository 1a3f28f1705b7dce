package intent

import (
	"sync"
	"time"
)

// DefaultCoalescingWindow is how long after a move intent a duplicate
// of the same direction from a different source is considered an echo
// and collapsed. Product-tunable; the default keeps simultaneous
// keyboard and stick input from double-stepping.
const DefaultCoalescingWindow = 40 * time.Millisecond

// StateProvider exposes the controller state the normalizer gates on.
// The normalizer never mutates controller state itself.
type StateProvider interface {
	// Suspended reports whether an overlay currently claims input.
	Suspended() bool

	// IsResumeKind reports whether the given kind may pass through
	// while suspended. The set is defined by the active overlay.
	IsResumeKind(k Kind) bool
}

// RepeatCanceller cancels pending auto-repeat ticks for a direction.
// Adapters that run repeat timers register one with the normalizer so
// a directional reversal stops the old direction instantly rather
// than letting queued ticks fire first.
type RepeatCanceller interface {
	CancelRepeat(dir Direction)
}

// Normalizer merges the raw adapter stream into one ordered,
// de-duplicated intent sequence. Normalize is driven synchronously
// from the engine pump goroutine; Reset may arrive from any consumer
// goroutine, so the coalescing state is guarded by a mutex.
type Normalizer struct {
	window     time.Duration
	state      StateProvider
	cancellers []RepeatCanceller

	mu sync.Mutex

	// Last forwarded move, for coalescing and reversal detection.
	lastMoveDir    Direction
	lastMoveSource Source
	lastMoveAt     time.Time

	// reversedDir is a direction whose in-flight repeat was cancelled;
	// stale repeat ticks for it are dropped until a fresh press.
	reversedDir Direction
}

// NewNormalizer creates a normalizer gated on the given state
// provider. A non-positive window falls back to the default.
func NewNormalizer(state StateProvider, window time.Duration) *Normalizer {
	if window <= 0 {
		window = DefaultCoalescingWindow
	}
	return &Normalizer{window: window, state: state}
}

// AddRepeatCanceller registers an adapter repeat canceller. Must be
// called before the engine pump starts.
func (n *Normalizer) AddRepeatCanceller(rc RepeatCanceller) {
	if rc != nil {
		n.cancellers = append(n.cancellers, rc)
	}
}

// Normalize applies the conflict-resolution rules to one intent.
// It returns the intent to forward and true, or a zero intent and
// false when the intent is coalesced or dropped.
func (n *Normalizer) Normalize(in Intent) (Intent, bool) {
	if in.Kind == KindNone {
		return Intent{}, false
	}

	// While suspended only resume-class intents pass; the rest are
	// dropped outright so stale input cannot fire after the overlay
	// closes.
	if n.state != nil && n.state.Suspended() {
		if !n.state.IsResumeKind(in.Kind) {
			return Intent{}, false
		}
		return in, true
	}

	if in.Kind != KindMove {
		// Activate, back, suspend, resume are never coalesced.
		return in, true
	}

	return n.normalizeMove(in)
}

func (n *Normalizer) normalizeMove(in Intent) (Intent, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	// Stale repeat ticks of a reversed direction are discarded until
	// the user presses that direction again.
	if in.Direction == n.reversedDir {
		if in.IsRepeat() {
			return Intent{}, false
		}
		n.reversedDir = DirNone
	}

	// Reversal: cancel the old direction's repeat immediately.
	if n.lastMoveDir != DirNone && in.Direction == n.lastMoveDir.Opposite() {
		for _, rc := range n.cancellers {
			rc.CancelRepeat(n.lastMoveDir)
		}
		n.reversedDir = n.lastMoveDir
	}

	// Coalesce same-direction echoes from a different source inside
	// the window. Repeats from the same source are intentional.
	if in.Direction == n.lastMoveDir &&
		in.Source != n.lastMoveSource &&
		in.Timestamp.Sub(n.lastMoveAt) < n.window {
		return Intent{}, false
	}

	n.lastMoveDir = in.Direction
	n.lastMoveSource = in.Source
	n.lastMoveAt = in.Timestamp
	return in, true
}

// Reset clears coalescing and reversal state. Called when focus
// handling is suspended or the graph is cleared; safe to call
// concurrently with the pump.
func (n *Normalizer) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.lastMoveDir = DirNone
	n.lastMoveSource = SourceUnknown
	n.lastMoveAt = time.Time{}
	n.reversedDir = DirNone
}
