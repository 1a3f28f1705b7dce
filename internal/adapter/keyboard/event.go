package keyboard

import (
	"strings"
	"time"
)

// Event represents a single key transition (down or up).
type Event struct {
	// Key identifies the key.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewEvent creates a key event with the current timestamp.
func NewEvent(key Key, r rune, mods Modifier) Event {
	return Event{Key: key, Rune: r, Modifiers: mods, Timestamp: time.Now()}
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods, Timestamp: time.Now()}
}

// Code returns the canonical binding code for the event.
// Examples: "a", "Up", "C-Up", "C-A-Right", "Space".
func (e Event) Code() string {
	var parts []string

	if e.Modifiers.HasCtrl() {
		parts = append(parts, "C")
	}
	if e.Modifiers.HasAlt() {
		parts = append(parts, "A")
	}
	if e.Modifiers.HasMeta() {
		parts = append(parts, "M")
	}
	// Shift is part of the character for rune keys.
	if e.Modifiers.HasShift() && e.Key != KeyRune {
		parts = append(parts, "S")
	}

	var name string
	switch {
	case e.Key == KeyRune && e.Rune == ' ':
		name = "Space"
	case e.Key == KeyRune:
		name = string(e.Rune)
	default:
		name = e.Key.String()
	}
	parts = append(parts, name)

	return strings.Join(parts, "-")
}

// String returns the canonical code; it exists for logging and tests.
func (e Event) String() string {
	return e.Code()
}
