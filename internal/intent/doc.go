// Package intent defines the normalized navigation intents the focus
// engine operates on, the bounded queue adapters emit onto, and the
// normalizer that merges concurrent adapter streams into one ordered,
// de-duplicated sequence.
//
// Adapters translate raw device input into Intents and enqueue them;
// the engine pump dequeues, runs each through the Normalizer, and
// delivers survivors synchronously to the focus controller. Intents
// are transient and consumed exactly once.
package intent
