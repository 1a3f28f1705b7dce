// Package gamepad polls connected game controllers and translates
// their state into navigation intents.
//
// A Backend abstracts the physical device API (the ebitenpad
// subpackage provides the Ebiten implementation). The Poller samples
// every device once per tick: button unpressed-to-pressed edges are
// resolved through the binding table (edge-triggered, never
// level-triggered), stick deflections beyond the deadzone are
// quantized to their dominant axis and repeat on the same
// acceleration curve as held keyboard keys.
//
// Device signatures select a named mapping Profile from the Registry;
// an unmatched device deterministically falls back to the generic
// 4-button/d-pad profile. Disconnection mid-poll drops the device's
// state and releases its held directions - it never fails the poll
// cycle.
package gamepad
