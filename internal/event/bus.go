package event

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Handler receives a published event.
type Handler func(Event)

// PanicHandler observes recovered handler panics. It runs inside the
// publishing goroutine and must not itself panic.
type PanicHandler func(*PanicError)

// Subscription identifies one registered handler.
type Subscription string

// Stats is a snapshot of bus counters.
type Stats struct {
	Published         uint64
	Delivered         uint64
	HandlerPanics     uint64
	ActiveSubscribers int
}

// subscriber is one registered handler. Order within a kind's slice
// is subscription order.
type subscriber struct {
	id      Subscription
	handler Handler
}

// Bus delivers engine events synchronously to subscribers in
// subscription order. A panicking handler is isolated: the panic is
// recovered, reported to the panic handler, and delivery continues
// with the next subscriber.
type Bus struct {
	onPanic PanicHandler

	mu    sync.RWMutex
	subs  map[Kind][]*subscriber
	index map[Subscription]Kind

	published atomic.Uint64
	delivered atomic.Uint64
	panics    atomic.Uint64
}

// NewBus creates a bus. onPanic may be nil to discard panic reports.
func NewBus(onPanic PanicHandler) *Bus {
	return &Bus{
		onPanic: onPanic,
		subs:    make(map[Kind][]*subscriber),
		index:   make(map[Subscription]Kind),
	}
}

// Subscribe registers a handler for one event kind.
func (b *Bus) Subscribe(kind Kind, h Handler) (Subscription, error) {
	if h == nil {
		return "", ErrNilHandler
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	sub := &subscriber{
		id:      Subscription(uuid.NewString()),
		handler: h,
	}
	b.subs[kind] = append(b.subs[kind], sub)
	b.index[sub.id] = kind
	return sub.id, nil
}

// Unsubscribe removes a subscription.
func (b *Bus) Unsubscribe(id Subscription) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	kind, ok := b.index[id]
	if !ok {
		return ErrSubscriptionNotFound
	}
	delete(b.index, id)

	list := b.subs[kind]
	for i, sub := range list {
		if sub.id == id {
			b.subs[kind] = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	return nil
}

// Publish delivers an event to every subscriber of its kind, in
// subscription order, on the calling goroutine.
func (b *Bus) Publish(ev Event) {
	b.mu.RLock()
	list := b.subs[ev.Kind]
	subs := make([]*subscriber, len(list))
	copy(subs, list)
	b.mu.RUnlock()

	b.published.Add(1)
	for _, sub := range subs {
		b.deliver(sub, ev)
	}
}

// deliver invokes one handler with panic isolation.
func (b *Bus) deliver(sub *subscriber, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			b.panics.Add(1)
			if b.onPanic != nil {
				b.onPanic(&PanicError{Subscription: sub.id, Kind: ev.Kind, Value: r})
			}
		}
	}()

	sub.handler(ev)
	b.delivered.Add(1)
}

// Stats returns current bus counters.
func (b *Bus) Stats() Stats {
	b.mu.RLock()
	active := len(b.index)
	b.mu.RUnlock()

	return Stats{
		Published:         b.published.Load(),
		Delivered:         b.delivered.Load(),
		HandlerPanics:     b.panics.Load(),
		ActiveSubscribers: active,
	}
}
