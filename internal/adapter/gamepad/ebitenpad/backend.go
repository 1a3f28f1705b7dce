// Package ebitenpad reads controller state through Ebiten's gamepad
// API and exposes it as a gamepad.Backend.
package ebitenpad

import (
	"encoding/hex"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/dshills/focusflow/internal/adapter/gamepad"
)

// Left stick axes under SDL-based backends:
// 0 = X (left -1, right +1), 1 = Y (up -1, down +1).
const (
	axisLeftX  = 0
	axisLeftY  = 1
	axisRightX = 2
	axisRightY = 3
)

// Backend samples gamepads through Ebiten. It must be polled from the
// Ebiten update loop; Ebiten's input state is only valid there.
type Backend struct {
	ids []ebiten.GamepadID
}

// New creates an Ebiten-backed gamepad source.
func New() *Backend {
	return &Backend{}
}

// Devices returns the ids of currently connected gamepads.
func (b *Backend) Devices() []gamepad.DeviceID {
	b.ids = ebiten.AppendGamepadIDs(b.ids[:0])

	out := make([]gamepad.DeviceID, len(b.ids))
	for i, id := range b.ids {
		out[i] = gamepad.DeviceID(id)
	}
	return out
}

// Sample reads a gamepad's current button and stick state.
func (b *Backend) Sample(id gamepad.DeviceID) (gamepad.Sample, bool) {
	eid := ebiten.GamepadID(id)

	connected := false
	for _, known := range ebiten.AppendGamepadIDs(nil) {
		if known == eid {
			connected = true
			break
		}
	}
	if !connected {
		return gamepad.Sample{}, false
	}

	s := gamepad.NewSample(id)
	s.Timestamp = time.Now()

	count := ebiten.GamepadButtonCount(eid)
	for i := 0; i < count; i++ {
		if ebiten.IsGamepadButtonPressed(eid, ebiten.GamepadButton(i)) {
			s.Buttons.Put(i)
		}
	}

	s.Left = gamepad.Stick{
		X: ebiten.GamepadAxisValue(eid, axisLeftX),
		Y: ebiten.GamepadAxisValue(eid, axisLeftY),
	}
	if ebiten.GamepadAxisCount(eid) > axisRightY {
		s.Right = gamepad.Stick{
			X: ebiten.GamepadAxisValue(eid, axisRightX),
			Y: ebiten.GamepadAxisValue(eid, axisRightY),
		}
	}
	return s, true
}

// Signature reports a gamepad's identity for profile selection. The
// vendor and product ids are recovered from the SDL GUID when present.
func (b *Backend) Signature(id gamepad.DeviceID) gamepad.Signature {
	eid := ebiten.GamepadID(id)
	sig := gamepad.Signature{Name: ebiten.GamepadName(eid)}
	sig.Vendor, sig.Product = parseSDLID(ebiten.GamepadSDLID(eid))
	return sig
}

// parseSDLID extracts the little-endian vendor and product ids from a
// 32-character SDL joystick GUID. Returns zeros on any malformed id.
func parseSDLID(guid string) (vendor, product uint16) {
	raw, err := hex.DecodeString(guid)
	if err != nil || len(raw) != 16 {
		return 0, 0
	}
	vendor = uint16(raw[4]) | uint16(raw[5])<<8
	product = uint16(raw[8]) | uint16(raw[9])<<8
	return vendor, product
}
