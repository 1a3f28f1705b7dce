package event

import "time"

// Kind identifies an engine event.
type Kind uint8

const (
	// KindFocusChanged fires after focus moves and the scroll side
	// effect has settled.
	KindFocusChanged Kind = iota
	// KindActivate fires when the focused node's handler is invoked.
	KindActivate
	// KindBackExhausted fires when a back intent finds an empty
	// history stack.
	KindBackExhausted
	// KindSuspended fires when an overlay claims exclusive input.
	KindSuspended
	// KindResumed fires when suspension ends.
	KindResumed
)

// String returns a string representation of the event kind.
func (k Kind) String() string {
	switch k {
	case KindFocusChanged:
		return "focus-changed"
	case KindActivate:
		return "activate"
	case KindBackExhausted:
		return "back-exhausted"
	case KindSuspended:
		return "suspended"
	case KindResumed:
		return "resumed"
	default:
		return "unknown"
	}
}

// Event is one engine notification. Fields beyond Kind are populated
// per kind: From and To for focus changes, Node for activate and
// resume, Overlay for suspension.
type Event struct {
	Kind      Kind
	From      string
	To        string
	Node      string
	Overlay   string
	Timestamp time.Time
}

// FocusChanged builds a focus-changed event.
func FocusChanged(from, to string) Event {
	return Event{Kind: KindFocusChanged, From: from, To: to, Timestamp: time.Now()}
}

// Activated builds an activate event.
func Activated(node string) Event {
	return Event{Kind: KindActivate, Node: node, Timestamp: time.Now()}
}

// BackExhausted builds a back-exhausted event.
func BackExhausted() Event {
	return Event{Kind: KindBackExhausted, Timestamp: time.Now()}
}

// Suspended builds a suspended event.
func Suspended(overlay string) Event {
	return Event{Kind: KindSuspended, Overlay: overlay, Timestamp: time.Now()}
}

// Resumed builds a resumed event.
func Resumed(node string) Event {
	return Event{Kind: KindResumed, Node: node, Timestamp: time.Now()}
}
