// Package tcellterm feeds terminal input into the adapter layer. It
// translates tcell key events into keyboard events and mouse events
// into pointer contacts for the gesture recognizer.
//
// Terminals report no key releases, so every key arrives as a tap: a
// KeyDown immediately followed by a KeyUp. Held keys repeat through
// the terminal's own auto-repeat rather than the adapter's curve.
package tcellterm

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/focusflow/internal/adapter/gesture"
	"github.com/dshills/focusflow/internal/adapter/keyboard"
	"github.com/dshills/focusflow/internal/binding"
	"github.com/dshills/focusflow/internal/geom"
	"github.com/dshills/focusflow/internal/intent"
)

// Source pumps events from a tcell screen into the keyboard adapter
// and gesture recognizer.
type Source struct {
	screen   tcell.Screen
	keys     *keyboard.Adapter
	gestures *gesture.Recognizer
	table    *binding.Table
	emit     func(intent.Intent)
	onResize func(width, height int)

	dragging bool
}

// Option configures a Source.
type Option func(*Source)

// WithResizeHandler registers a callback for terminal resize events.
func WithResizeHandler(f func(width, height int)) Option {
	return func(s *Source) { s.onResize = f }
}

// New creates a terminal input source. The screen must already be
// initialized with mouse reporting enabled.
func New(screen tcell.Screen, keys *keyboard.Adapter, gestures *gesture.Recognizer, table *binding.Table, emit func(intent.Intent), opts ...Option) *Source {
	s := &Source{
		screen:   screen,
		keys:     keys,
		gestures: gestures,
		table:    table,
		emit:     emit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run pumps terminal events until the context is cancelled or the
// screen is finalized.
func (s *Source) Run(ctx context.Context) {
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			// Unblock PollEvent.
			_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-done:
		}
	}()

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok && ctx.Err() != nil {
			return
		}
		s.handle(ev)
	}
}

// handle dispatches one tcell event. Exported indirectly through Run;
// split out so tests can drive it with synthetic events.
func (s *Source) handle(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		s.handleKey(e)
	case *tcell.EventMouse:
		s.handleMouse(e)
	case *tcell.EventResize:
		if s.onResize != nil {
			w, h := e.Size()
			s.onResize(w, h)
		}
	}
}

func (s *Source) handleKey(e *tcell.EventKey) {
	kev, ok := translateKey(e)
	if !ok {
		return
	}
	s.keys.KeyDown(kev)
	s.keys.KeyUp(kev)
}

func (s *Source) handleMouse(e *tcell.EventMouse) {
	if code, ok := wheelCode(e.Buttons()); ok {
		s.wheel(code)
		return
	}

	x, y := e.Position()
	p := geom.Point{X: float64(x), Y: float64(y)}
	at := time.Now()

	pressed := e.Buttons()&tcell.Button1 != 0
	switch {
	case pressed && !s.dragging:
		s.dragging = true
		s.gestures.PointerDown(p, at)
	case pressed && s.dragging:
		s.gestures.PointerMove(p, at)
	case !pressed && s.dragging:
		s.dragging = false
		s.gestures.PointerUp(p, at)
	}
}

// wheel resolves a scroll wheel tick through the pointer bindings.
func (s *Source) wheel(code string) {
	b, ok := s.table.Lookup(intent.SourcePointer, code)
	if !ok || b.Intent != intent.KindMove {
		return
	}
	s.emit(intent.Move(b.Direction, intent.SourcePointer))
}

func wheelCode(b tcell.ButtonMask) (string, bool) {
	switch {
	case b&tcell.WheelUp != 0:
		return "wheel_up", true
	case b&tcell.WheelDown != 0:
		return "wheel_down", true
	case b&tcell.WheelLeft != 0:
		return "wheel_left", true
	case b&tcell.WheelRight != 0:
		return "wheel_right", true
	}
	return "", false
}

// translateKey converts a tcell key event into a keyboard event.
// Unrecognized keys report false and are dropped.
func translateKey(e *tcell.EventKey) (keyboard.Event, bool) {
	mods := translateMods(e.Modifiers())

	if e.Key() == tcell.KeyRune {
		return keyboard.NewRuneEvent(e.Rune(), mods), true
	}

	key := keyboard.KeyNone
	switch e.Key() {
	case tcell.KeyUp:
		key = keyboard.KeyUp
	case tcell.KeyDown:
		key = keyboard.KeyDown
	case tcell.KeyLeft:
		key = keyboard.KeyLeft
	case tcell.KeyRight:
		key = keyboard.KeyRight
	case tcell.KeyEnter:
		key = keyboard.KeyEnter
	case tcell.KeyEscape:
		key = keyboard.KeyEscape
	case tcell.KeyTab:
		key = keyboard.KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		key = keyboard.KeyBackspace
	case tcell.KeyHome:
		key = keyboard.KeyHome
	case tcell.KeyEnd:
		key = keyboard.KeyEnd
	case tcell.KeyPgUp:
		key = keyboard.KeyPageUp
	case tcell.KeyPgDn:
		key = keyboard.KeyPageDown
	case tcell.KeyDelete:
		key = keyboard.KeyDelete
	default:
		return keyboard.Event{}, false
	}
	return keyboard.NewEvent(key, 0, mods), true
}

func translateMods(m tcell.ModMask) keyboard.Modifier {
	var mods keyboard.Modifier
	if m&tcell.ModCtrl != 0 {
		mods |= keyboard.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= keyboard.ModAlt
	}
	if m&tcell.ModShift != 0 {
		mods |= keyboard.ModShift
	}
	if m&tcell.ModMeta != 0 {
		mods |= keyboard.ModMeta
	}
	return mods
}
