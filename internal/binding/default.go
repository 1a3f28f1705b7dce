package binding

import "github.com/dshills/focusflow/internal/intent"

// Defaults returns the built-in binding set: arrow keys and hjkl on
// the keyboard, d-pad and face buttons on the gamepad, wheel steps on
// the pointer. Held directional bindings auto-repeat; activate, back
// and wheel steps are fire-once.
func Defaults() []Binding {
	return []Binding{
		// Keyboard directions.
		{Source: intent.SourceKeyboard, Code: "Up", Intent: intent.KindMove, Direction: intent.DirUp, Repeat: RepeatAccelerate},
		{Source: intent.SourceKeyboard, Code: "Down", Intent: intent.KindMove, Direction: intent.DirDown, Repeat: RepeatAccelerate},
		{Source: intent.SourceKeyboard, Code: "Left", Intent: intent.KindMove, Direction: intent.DirLeft, Repeat: RepeatAccelerate},
		{Source: intent.SourceKeyboard, Code: "Right", Intent: intent.KindMove, Direction: intent.DirRight, Repeat: RepeatAccelerate},
		{Source: intent.SourceKeyboard, Code: "k", Intent: intent.KindMove, Direction: intent.DirUp, Repeat: RepeatAccelerate},
		{Source: intent.SourceKeyboard, Code: "j", Intent: intent.KindMove, Direction: intent.DirDown, Repeat: RepeatAccelerate},
		{Source: intent.SourceKeyboard, Code: "h", Intent: intent.KindMove, Direction: intent.DirLeft, Repeat: RepeatAccelerate},
		{Source: intent.SourceKeyboard, Code: "l", Intent: intent.KindMove, Direction: intent.DirRight, Repeat: RepeatAccelerate},

		// Keyboard activate / back.
		{Source: intent.SourceKeyboard, Code: "Enter", Intent: intent.KindActivate},
		{Source: intent.SourceKeyboard, Code: "Space", Intent: intent.KindActivate},
		{Source: intent.SourceKeyboard, Code: "Esc", Intent: intent.KindBack},
		{Source: intent.SourceKeyboard, Code: "BS", Intent: intent.KindBack},

		// Gamepad d-pad.
		{Source: intent.SourceGamepad, Code: "dpad_up", Intent: intent.KindMove, Direction: intent.DirUp, Repeat: RepeatAccelerate},
		{Source: intent.SourceGamepad, Code: "dpad_down", Intent: intent.KindMove, Direction: intent.DirDown, Repeat: RepeatAccelerate},
		{Source: intent.SourceGamepad, Code: "dpad_left", Intent: intent.KindMove, Direction: intent.DirLeft, Repeat: RepeatAccelerate},
		{Source: intent.SourceGamepad, Code: "dpad_right", Intent: intent.KindMove, Direction: intent.DirRight, Repeat: RepeatAccelerate},

		// Gamepad face buttons (A activates, B goes back).
		{Source: intent.SourceGamepad, Code: "a", Intent: intent.KindActivate},
		{Source: intent.SourceGamepad, Code: "b", Intent: intent.KindBack},

		// Scroll wheel steps focus one node at a time.
		{Source: intent.SourcePointer, Code: "wheel_up", Intent: intent.KindMove, Direction: intent.DirUp},
		{Source: intent.SourcePointer, Code: "wheel_down", Intent: intent.KindMove, Direction: intent.DirDown},
		{Source: intent.SourcePointer, Code: "wheel_left", Intent: intent.KindMove, Direction: intent.DirLeft},
		{Source: intent.SourcePointer, Code: "wheel_right", Intent: intent.KindMove, Direction: intent.DirRight},
	}
}

// DefaultTable returns a table populated with Defaults.
func DefaultTable() *Table {
	t := NewTable()
	t.Apply(Defaults()) // defaults are always valid
	return t
}
