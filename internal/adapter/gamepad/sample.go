package gamepad

import (
	"time"

	"github.com/zyedidia/generic/mapset"
)

// DeviceID identifies one connected controller.
type DeviceID int

// Signature identifies a controller model for profile selection.
type Signature struct {
	// Vendor is the USB vendor id, zero when unknown.
	Vendor uint16

	// Product is the USB product id, zero when unknown.
	Product uint16

	// Name is the backend-reported device name, used for matching
	// when vendor/product ids are unavailable.
	Name string
}

// Stick holds one analog stick's axis values in [-1, 1].
type Stick struct {
	X float64
	Y float64
}

// Sample is one poll of a controller's raw state. Only the current
// and previous sample per device are retained; edge detection needs
// nothing older.
type Sample struct {
	// Device is the sampled controller.
	Device DeviceID

	// Buttons holds the raw indices of currently pressed buttons.
	Buttons mapset.Set[int]

	// Left and Right are the analog stick axis values.
	Left  Stick
	Right Stick

	// Timestamp is when the sample was taken.
	Timestamp time.Time
}

// NewSample creates an empty sample for a device.
func NewSample(id DeviceID) Sample {
	return Sample{
		Device:    id,
		Buttons:   mapset.New[int](),
		Timestamp: time.Now(),
	}
}

// Pressed returns true if the raw button index is down in this sample.
func (s Sample) Pressed(button int) bool {
	return s.Buttons.Has(button)
}

// JustPressed returns the raw button indices that are down in this
// sample but were not down in prev: the unpressed-to-pressed edges.
func (s Sample) JustPressed(prev Sample) []int {
	var edges []int
	s.Buttons.Each(func(b int) {
		if !prev.Buttons.Has(b) {
			edges = append(edges, b)
		}
	})
	return edges
}

// JustReleased returns the raw button indices that were down in prev
// but are no longer down in this sample.
func (s Sample) JustReleased(prev Sample) []int {
	var edges []int
	prev.Buttons.Each(func(b int) {
		if !s.Buttons.Has(b) {
			edges = append(edges, b)
		}
	})
	return edges
}
