package intent

import "time"

// Direction represents a directional navigation request.
type Direction uint8

const (
	// DirNone indicates no direction.
	DirNone Direction = iota
	// DirUp indicates upward movement.
	DirUp
	// DirDown indicates downward movement.
	DirDown
	// DirLeft indicates leftward movement.
	DirLeft
	// DirRight indicates rightward movement.
	DirRight
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Opposite returns the reverse direction, or DirNone for DirNone.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// Kind identifies what the intent asks the focus controller to do.
type Kind uint8

const (
	// KindNone is the zero value; such intents are ignored.
	KindNone Kind = iota
	// KindMove requests a directional focus change.
	KindMove
	// KindActivate requests activation of the focused node.
	KindActivate
	// KindBack requests back-navigation.
	KindBack
	// KindSuspend requests suspension of focus handling (overlay opened).
	KindSuspend
	// KindResume requests resumption after a suspension (overlay closed).
	KindResume
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindMove:
		return "move"
	case KindActivate:
		return "activate"
	case KindBack:
		return "back"
	case KindSuspend:
		return "suspend"
	case KindResume:
		return "resume"
	default:
		return "none"
	}
}

// Source indicates which adapter produced an intent.
type Source uint8

const (
	// SourceUnknown indicates an unidentified source.
	SourceUnknown Source = iota
	// SourceKeyboard indicates keyboard input.
	SourceKeyboard
	// SourceGamepad indicates game-controller input.
	SourceGamepad
	// SourcePointer indicates pointer or touch input.
	SourcePointer
	// SourceProgram indicates a programmatic request (overlay suspend/resume).
	SourceProgram
)

// String returns a string representation of the source.
func (s Source) String() string {
	switch s {
	case SourceKeyboard:
		return "keyboard"
	case SourceGamepad:
		return "gamepad"
	case SourcePointer:
		return "pointer"
	case SourceProgram:
		return "program"
	default:
		return "unknown"
	}
}

// Intent is a normalized, source-agnostic navigation request. Intents
// are transient: each is consumed exactly once by the controller.
type Intent struct {
	// Kind identifies the requested operation.
	Kind Kind

	// Direction is set for KindMove intents, DirNone otherwise.
	Direction Direction

	// Source indicates the producing adapter.
	Source Source

	// Timestamp is when the originating input occurred.
	Timestamp time.Time

	// RepeatGeneration is 0 for the initial press and increments for
	// each auto-repeat tick while the input is held.
	RepeatGeneration int
}

// Move creates a directional move intent.
func Move(dir Direction, src Source) Intent {
	return Intent{Kind: KindMove, Direction: dir, Source: src, Timestamp: time.Now()}
}

// Activate creates an activation intent.
func Activate(src Source) Intent {
	return Intent{Kind: KindActivate, Source: src, Timestamp: time.Now()}
}

// Back creates a back-navigation intent.
func Back(src Source) Intent {
	return Intent{Kind: KindBack, Source: src, Timestamp: time.Now()}
}

// Suspend creates a suspension intent.
func Suspend() Intent {
	return Intent{Kind: KindSuspend, Source: SourceProgram, Timestamp: time.Now()}
}

// Resume creates a resumption intent.
func Resume() Intent {
	return Intent{Kind: KindResume, Source: SourceProgram, Timestamp: time.Now()}
}

// IsRepeat returns true if this intent came from an auto-repeat tick.
func (i Intent) IsRepeat() bool {
	return i.RepeatGeneration > 0
}
