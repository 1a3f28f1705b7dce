// Package adapter holds the contracts shared by the input source
// adapters and the acceleration repeater used for held directional
// input.
//
// Adapters translate raw device events into normalized intents and
// emit them onto the shared intent queue. They hold no application
// state beyond their own device samples: the focus controller is the
// single owner of focus state and adapters never read or write it.
//
//   - keyboard: key down/up events with binding lookup and auto-repeat
//   - gamepad: periodic device polling with edge-triggered buttons,
//     deadzone handling, and mapping profiles
//   - gesture: pointer/touch swipe and tap recognition
package adapter
