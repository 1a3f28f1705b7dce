package intent

import "sync"

// DefaultQueueSize is the default capacity of the shared intent queue.
const DefaultQueueSize = 128

// Queue is the bounded, shared queue adapters emit intents onto.
// Enqueue never blocks: when the queue is full the oldest intent is
// dropped so fresh input always wins over stale input.
type Queue struct {
	mu     sync.Mutex
	ch     chan Intent
	closed bool
}

// NewQueue creates a queue with the given capacity. A non-positive
// size falls back to DefaultQueueSize.
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{ch: make(chan Intent, size)}
}

// Enqueue adds an intent without blocking. Intents of KindNone are
// ignored. When the queue is full the oldest entry is evicted.
func (q *Queue) Enqueue(in Intent) {
	if in.Kind == KindNone {
		return
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}

	select {
	case q.ch <- in:
	default:
		// Full - drop oldest and retry once.
		select {
		case <-q.ch:
		default:
		}
		select {
		case q.ch <- in:
		default:
		}
	}
}

// Intents returns the receive side of the queue.
func (q *Queue) Intents() <-chan Intent {
	return q.ch
}

// Len returns the number of queued intents.
func (q *Queue) Len() int {
	return len(q.ch)
}

// Close closes the queue. Subsequent Enqueue calls are no-ops.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	close(q.ch)
}
