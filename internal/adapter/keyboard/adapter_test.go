package keyboard

import (
	"sync"
	"testing"
	"time"

	"github.com/dshills/focusflow/internal/adapter"
	"github.com/dshills/focusflow/internal/binding"
	"github.com/dshills/focusflow/internal/intent"
)

type sink struct {
	mu      sync.Mutex
	intents []intent.Intent
}

func (s *sink) emit(in intent.Intent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.intents = append(s.intents, in)
}

func (s *sink) all() []intent.Intent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]intent.Intent, len(s.intents))
	copy(out, s.intents)
	return out
}

func slowCurve() adapter.RepeatCurve {
	// Long delays so tests never see an unwanted repeat tick.
	return adapter.RepeatCurve{
		InitialDelay:  time.Hour,
		StartInterval: time.Hour,
		MinInterval:   time.Hour,
		Decay:         1.0,
	}
}

func TestKeyDownEmitsBoundMove(t *testing.T) {
	s := &sink{}
	a := New(binding.DefaultTable(), slowCurve(), s.emit)
	defer a.Close()

	a.KeyDown(NewEvent(KeyUp, 0, ModNone))

	got := s.all()
	if len(got) != 1 {
		t.Fatalf("expected 1 intent, got %d", len(got))
	}
	if got[0].Kind != intent.KindMove || got[0].Direction != intent.DirUp {
		t.Errorf("expected move up, got %+v", got[0])
	}
	if got[0].Source != intent.SourceKeyboard {
		t.Errorf("expected keyboard source, got %s", got[0].Source)
	}
}

func TestKeyDownVimKeys(t *testing.T) {
	s := &sink{}
	a := New(binding.DefaultTable(), slowCurve(), s.emit)
	defer a.Close()

	a.KeyDown(NewRuneEvent('j', ModNone))
	a.KeyUp(NewRuneEvent('j', ModNone))

	got := s.all()
	if len(got) != 1 || got[0].Direction != intent.DirDown {
		t.Errorf("expected one move down for 'j', got %+v", got)
	}
}

func TestKeyDownUnboundKeyIgnored(t *testing.T) {
	s := &sink{}
	a := New(binding.DefaultTable(), slowCurve(), s.emit)
	defer a.Close()

	a.KeyDown(NewRuneEvent('z', ModNone))

	if got := s.all(); len(got) != 0 {
		t.Errorf("unbound key should emit nothing, got %+v", got)
	}
}

func TestKeyDownActivateAndBack(t *testing.T) {
	s := &sink{}
	a := New(binding.DefaultTable(), slowCurve(), s.emit)
	defer a.Close()

	a.KeyDown(NewEvent(KeyEnter, 0, ModNone))
	a.KeyDown(NewEvent(KeyEscape, 0, ModNone))

	got := s.all()
	if len(got) != 2 {
		t.Fatalf("expected 2 intents, got %d", len(got))
	}
	if got[0].Kind != intent.KindActivate {
		t.Errorf("expected activate, got %s", got[0].Kind)
	}
	if got[1].Kind != intent.KindBack {
		t.Errorf("expected back, got %s", got[1].Kind)
	}
}

func TestHeldKeyRepeatsAndReleaseCancels(t *testing.T) {
	s := &sink{}
	curve := adapter.RepeatCurve{
		InitialDelay:  10 * time.Millisecond,
		StartInterval: 5 * time.Millisecond,
		MinInterval:   5 * time.Millisecond,
		Decay:         1.0,
	}
	a := New(binding.DefaultTable(), curve, s.emit)
	defer a.Close()

	a.KeyDown(NewEvent(KeyRight, 0, ModNone))
	time.Sleep(40 * time.Millisecond)
	a.KeyUp(NewEvent(KeyRight, 0, ModNone))
	count := len(s.all())

	if count < 2 {
		t.Fatalf("expected repeats while held, got %d intents", count)
	}

	time.Sleep(30 * time.Millisecond)
	if after := len(s.all()); after != count {
		t.Errorf("release should cancel repeats: %d intents grew to %d", count, after)
	}
}

func TestEventCodes(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want string
	}{
		{"plain arrow", NewEvent(KeyUp, 0, ModNone), "Up"},
		{"rune", NewRuneEvent('h', ModNone), "h"},
		{"space rune", NewRuneEvent(' ', ModNone), "Space"},
		{"ctrl arrow", NewEvent(KeyRight, 0, ModCtrl), "C-Right"},
		{"shift special", NewEvent(KeyTab, 0, ModShift), "S-Tab"},
		{"shift rune folds into char", NewRuneEvent('H', ModShift), "H"},
		{"ctrl alt", NewEvent(KeyEnter, 0, ModCtrl|ModAlt), "C-A-Enter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ev.Code(); got != tt.want {
				t.Errorf("Code() = %q, want %q", got, tt.want)
			}
		})
	}
}
