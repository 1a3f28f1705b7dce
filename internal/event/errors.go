package event

import (
	"errors"
	"fmt"
)

// Sentinel errors for the event bus.
var (
	// ErrNilHandler is returned when a nil handler is subscribed.
	ErrNilHandler = errors.New("handler cannot be nil")

	// ErrSubscriptionNotFound is returned when unsubscribing an
	// unknown subscription.
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrHandlerPanic marks a recovered handler panic.
	ErrHandlerPanic = errors.New("handler panicked")
)

// PanicError wraps a recovered panic value from a handler.
type PanicError struct {
	// Subscription is the id of the subscription whose handler panicked.
	Subscription Subscription

	// Kind is the event kind being delivered.
	Kind Kind

	// Value is the value passed to panic().
	Value any
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("handler panic for subscription %s on %s: %v", e.Subscription, e.Kind, e.Value)
}

// Is allows errors.Is to match PanicError with ErrHandlerPanic.
func (e *PanicError) Is(target error) bool {
	return target == ErrHandlerPanic
}
