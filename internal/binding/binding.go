package binding

import (
	"fmt"

	"github.com/dshills/focusflow/internal/intent"
)

// RepeatPolicy controls auto-repeat for a binding while its input is
// held.
type RepeatPolicy uint8

const (
	// RepeatNone fires the binding once per press.
	RepeatNone RepeatPolicy = iota
	// RepeatAccelerate fires on press, then repeats on the adapter's
	// acceleration curve while held. Only valid for move bindings.
	RepeatAccelerate
)

// String returns a string representation of the policy.
func (p RepeatPolicy) String() string {
	if p == RepeatAccelerate {
		return "accelerate"
	}
	return "none"
}

// Binding maps one input code from one source to an intent. Bindings
// are configuration: loaded once, optionally overridden by user
// preference, and read-only to the engine at runtime.
type Binding struct {
	// Source is the adapter this binding applies to.
	Source intent.Source

	// Code is the source-specific input identifier, e.g. the
	// canonical key string "Up" or "C-m" for keyboard, or a gamepad
	// button name like "dpad_up".
	Code string

	// Intent is the kind of intent the binding produces.
	Intent intent.Kind

	// Direction is required for move bindings and must be DirNone
	// otherwise.
	Direction intent.Direction

	// Repeat controls held-input auto-repeat.
	Repeat RepeatPolicy
}

// Validate checks the binding for structural problems. A binding that
// fails validation is rejected individually; the rest of its table
// still applies.
func (b Binding) Validate() error {
	if b.Code == "" {
		return fmt.Errorf("%w: empty code", ErrInvalidBinding)
	}

	switch b.Source {
	case intent.SourceKeyboard, intent.SourceGamepad, intent.SourcePointer:
	default:
		return fmt.Errorf("%w: source %q cannot be bound", ErrInvalidBinding, b.Source)
	}

	switch b.Intent {
	case intent.KindMove:
		if b.Direction == intent.DirNone {
			return fmt.Errorf("%w: move binding for %q has no direction", ErrInvalidBinding, b.Code)
		}
	case intent.KindActivate, intent.KindBack:
		if b.Direction != intent.DirNone {
			return fmt.Errorf("%w: %s binding for %q must not carry a direction", ErrInvalidBinding, b.Intent, b.Code)
		}
		if b.Repeat == RepeatAccelerate {
			return fmt.Errorf("%w: %s binding for %q cannot auto-repeat", ErrInvalidBinding, b.Intent, b.Code)
		}
	default:
		return fmt.Errorf("%w: intent %q cannot be bound", ErrInvalidBinding, b.Intent)
	}

	return nil
}

// key returns the lookup key for the binding.
func (b Binding) key() tableKey {
	return tableKey{source: b.Source, code: b.Code}
}
