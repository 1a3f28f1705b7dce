package keyboard

// Key identifies a key on the keyboard.
type Key uint16

const (
	// KeyNone indicates no key.
	KeyNone Key = iota
	// KeyRune is a printable character key; the Event carries the rune.
	KeyRune
	// KeyUp is the up arrow.
	KeyUp
	// KeyDown is the down arrow.
	KeyDown
	// KeyLeft is the left arrow.
	KeyLeft
	// KeyRight is the right arrow.
	KeyRight
	// KeyEnter is the return key.
	KeyEnter
	// KeyEscape is the escape key.
	KeyEscape
	// KeyTab is the tab key.
	KeyTab
	// KeyBackspace is the backspace key.
	KeyBackspace
	// KeySpace is the space bar.
	KeySpace
	// KeyHome is the home key.
	KeyHome
	// KeyEnd is the end key.
	KeyEnd
	// KeyPageUp is the page-up key.
	KeyPageUp
	// KeyPageDown is the page-down key.
	KeyPageDown
	// KeyDelete is the forward-delete key.
	KeyDelete
)

// String returns the canonical key name used in binding codes.
func (k Key) String() string {
	switch k {
	case KeyRune:
		return "Rune"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Esc"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "BS"
	case KeySpace:
		return "Space"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PgUp"
	case KeyPageDown:
		return "PgDn"
	case KeyDelete:
		return "Del"
	default:
		return "None"
	}
}

// Modifier is a bitmask of held modifier keys.
type Modifier uint8

const (
	// ModNone means no modifiers are held.
	ModNone Modifier = 0
	// ModCtrl is the control key.
	ModCtrl Modifier = 1 << iota
	// ModAlt is the alt/option key.
	ModAlt
	// ModShift is the shift key.
	ModShift
	// ModMeta is the super/command key.
	ModMeta
)

// HasCtrl returns true if Ctrl is held.
func (m Modifier) HasCtrl() bool { return m&ModCtrl != 0 }

// HasAlt returns true if Alt is held.
func (m Modifier) HasAlt() bool { return m&ModAlt != 0 }

// HasShift returns true if Shift is held.
func (m Modifier) HasShift() bool { return m&ModShift != 0 }

// HasMeta returns true if Meta is held.
func (m Modifier) HasMeta() bool { return m&ModMeta != 0 }
