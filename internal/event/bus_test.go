package event

import (
	"errors"
	"testing"
)

func TestPublishDeliversToSubscribers(t *testing.T) {
	b := NewBus(nil)

	var got []Event
	if _, err := b.Subscribe(KindFocusChanged, func(ev Event) { got = append(got, ev) }); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	b.Publish(FocusChanged("a", "b"))

	if len(got) != 1 || got[0].From != "a" || got[0].To != "b" {
		t.Fatalf("delivered = %+v", got)
	}
}

func TestKindsAreIndependent(t *testing.T) {
	b := NewBus(nil)

	var focus, activate int
	b.Subscribe(KindFocusChanged, func(Event) { focus++ })
	b.Subscribe(KindActivate, func(Event) { activate++ })

	b.Publish(Activated("n"))

	if focus != 0 || activate != 1 {
		t.Errorf("focus=%d activate=%d, want 0/1", focus, activate)
	}
}

func TestSubscriptionOrderPreserved(t *testing.T) {
	b := NewBus(nil)

	var order []int
	for i := 0; i < 5; i++ {
		i := i
		b.Subscribe(KindResumed, func(Event) { order = append(order, i) })
	}

	b.Publish(Resumed("n"))

	for i, v := range order {
		if v != i {
			t.Fatalf("delivery order = %v", order)
		}
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := NewBus(nil)

	count := 0
	sub, _ := b.Subscribe(KindActivate, func(Event) { count++ })

	b.Publish(Activated("n"))
	if err := b.Unsubscribe(sub); err != nil {
		t.Fatalf("unsubscribe: %v", err)
	}
	b.Publish(Activated("n"))

	if count != 1 {
		t.Errorf("handler ran %d times, want 1", count)
	}
}

func TestUnsubscribeUnknown(t *testing.T) {
	b := NewBus(nil)
	if err := b.Unsubscribe(Subscription("ghost")); !errors.Is(err, ErrSubscriptionNotFound) {
		t.Errorf("expected ErrSubscriptionNotFound, got %v", err)
	}
}

func TestNilHandlerRejected(t *testing.T) {
	b := NewBus(nil)
	if _, err := b.Subscribe(KindActivate, nil); !errors.Is(err, ErrNilHandler) {
		t.Errorf("expected ErrNilHandler, got %v", err)
	}
}

func TestPanicIsolation(t *testing.T) {
	var reported []*PanicError
	b := NewBus(func(pe *PanicError) { reported = append(reported, pe) })

	after := 0
	b.Subscribe(KindActivate, func(Event) { panic("boom") })
	b.Subscribe(KindActivate, func(Event) { after++ })

	b.Publish(Activated("n"))

	if after != 1 {
		t.Error("subscriber after the panicking one was starved")
	}
	if len(reported) != 1 || reported[0].Value != "boom" {
		t.Fatalf("panic report = %+v", reported)
	}
	if !errors.Is(reported[0], ErrHandlerPanic) {
		t.Error("PanicError should match ErrHandlerPanic")
	}
}

func TestStats(t *testing.T) {
	b := NewBus(nil)
	b.Subscribe(KindActivate, func(Event) {})
	b.Subscribe(KindActivate, func(Event) { panic("x") })

	b.Publish(Activated("n"))

	s := b.Stats()
	if s.Published != 1 || s.Delivered != 1 || s.HandlerPanics != 1 || s.ActiveSubscribers != 2 {
		t.Errorf("stats = %+v", s)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindFocusChanged, "focus-changed"},
		{KindActivate, "activate"},
		{KindBackExhausted, "back-exhausted"},
		{KindSuspended, "suspended"},
		{KindResumed, "resumed"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
