// Package engine assembles the input-to-focus pipeline and exposes
// the consumer surface. Raw input enters through the keyboard adapter,
// the gamepad poller and the gesture recognizer; their intents meet on
// one bounded queue, pass the normalizer's conflict resolution, and
// drive the focus controller on a single pump goroutine. Focus changes
// scroll their container into place before the event bus tells
// subscribers.
//
// Rendering collaborators register focusable regions and containers,
// subscribe to events, and react; the engine itself renders nothing.
package engine
