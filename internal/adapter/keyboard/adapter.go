// Package keyboard translates key down/up events into navigation
// intents through the binding table, with accelerating auto-repeat
// for held directional keys.
package keyboard

import (
	"github.com/dshills/focusflow/internal/adapter"
	"github.com/dshills/focusflow/internal/binding"
	"github.com/dshills/focusflow/internal/intent"
)

// Adapter is the keyboard input source. It holds no focus state; it
// only resolves key events against the binding table and emits
// intents.
type Adapter struct {
	table    *binding.Table
	repeater *adapter.Repeater
	emit     func(intent.Intent)
}

// New creates a keyboard adapter emitting intents through emit.
func New(table *binding.Table, curve adapter.RepeatCurve, emit func(intent.Intent)) *Adapter {
	return &Adapter{
		table:    table,
		repeater: adapter.NewRepeater(curve, intent.SourceKeyboard, emit),
		emit:     emit,
	}
}

// KeyDown processes a key press. Unbound keys are ignored.
func (a *Adapter) KeyDown(ev Event) {
	b, ok := a.table.Lookup(intent.SourceKeyboard, ev.Code())
	if !ok {
		return
	}

	switch b.Intent {
	case intent.KindMove:
		if b.Repeat == binding.RepeatAccelerate {
			a.repeater.Press(b.Direction)
		} else {
			a.emit(intent.Move(b.Direction, intent.SourceKeyboard))
		}
	case intent.KindActivate:
		a.emit(intent.Activate(intent.SourceKeyboard))
	case intent.KindBack:
		a.emit(intent.Back(intent.SourceKeyboard))
	}
}

// KeyUp processes a key release, cancelling any pending repeat for
// the key's bound direction.
func (a *Adapter) KeyUp(ev Event) {
	b, ok := a.table.Lookup(intent.SourceKeyboard, ev.Code())
	if !ok || b.Intent != intent.KindMove {
		return
	}
	a.repeater.Release(b.Direction)
}

// CancelRepeat implements intent.RepeatCanceller so a directional
// reversal from any source stops this adapter's pending ticks.
func (a *Adapter) CancelRepeat(dir intent.Direction) {
	a.repeater.CancelRepeat(dir)
}

// Close cancels all pending repeats.
func (a *Adapter) Close() {
	a.repeater.Stop()
}
