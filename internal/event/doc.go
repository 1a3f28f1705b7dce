// Package event is the engine's notification surface: a synchronous
// typed bus for focus-changed, activate, back-exhausted, suspended
// and resumed events. Delivery happens on the publishing goroutine in
// subscription order; a panicking handler never takes down the intent
// pump or starves later subscribers.
package event
