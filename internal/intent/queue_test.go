package intent

import "testing"

func TestQueueEnqueueDequeue(t *testing.T) {
	q := NewQueue(4)

	q.Enqueue(Move(DirUp, SourceKeyboard))
	q.Enqueue(Activate(SourceGamepad))

	if q.Len() != 2 {
		t.Fatalf("expected 2 queued intents, got %d", q.Len())
	}

	first := <-q.Intents()
	if first.Kind != KindMove || first.Direction != DirUp {
		t.Errorf("expected move up, got %s %s", first.Kind, first.Direction)
	}

	second := <-q.Intents()
	if second.Kind != KindActivate {
		t.Errorf("expected activate, got %s", second.Kind)
	}
}

func TestQueueIgnoresZeroIntents(t *testing.T) {
	q := NewQueue(4)
	q.Enqueue(Intent{})

	if q.Len() != 0 {
		t.Errorf("zero-kind intent should not be queued, len = %d", q.Len())
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewQueue(2)

	q.Enqueue(Move(DirUp, SourceKeyboard))
	q.Enqueue(Move(DirDown, SourceKeyboard))
	q.Enqueue(Move(DirLeft, SourceKeyboard)) // evicts up

	if q.Len() != 2 {
		t.Fatalf("expected 2 queued intents, got %d", q.Len())
	}

	first := <-q.Intents()
	if first.Direction != DirDown {
		t.Errorf("expected oldest surviving intent down, got %s", first.Direction)
	}
}

func TestQueueEnqueueAfterClose(t *testing.T) {
	q := NewQueue(4)
	q.Close()

	// Must not panic.
	q.Enqueue(Move(DirUp, SourceKeyboard))

	if _, ok := <-q.Intents(); ok {
		t.Error("expected closed channel")
	}
}
