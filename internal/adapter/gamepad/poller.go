package gamepad

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/dshills/focusflow/internal/adapter"
	"github.com/dshills/focusflow/internal/binding"
	"github.com/dshills/focusflow/internal/intent"
)

const (
	// DefaultInterval polls roughly once per display frame.
	DefaultInterval = 16 * time.Millisecond

	// DefaultDeadzone is the stick magnitude below which axis values
	// are ignored. Product-tunable; 0.5 avoids drift on worn sticks.
	DefaultDeadzone = 0.5
)

// Backend enumerates and samples physical controllers. Sample returns
// false for a device that has disconnected; the poller skips it until
// it is observed again.
type Backend interface {
	// Devices returns the ids of currently connected controllers.
	Devices() []DeviceID

	// Sample reads a device's current state.
	Sample(id DeviceID) (Sample, bool)

	// Signature reports a device's identity for profile selection.
	Signature(id DeviceID) Signature
}

// Config configures the poller.
type Config struct {
	// Interval is the polling period. Default: DefaultInterval.
	Interval time.Duration

	// Deadzone is the stick threshold. Default: DefaultDeadzone.
	Deadzone float64

	// Curve is the directional auto-repeat curve.
	Curve adapter.RepeatCurve

	// Profile optionally forces a named mapping profile for all
	// devices. When empty, or when the name is unknown, profiles are
	// selected per device by signature with generic fallback.
	Profile string
}

// Poller samples connected controllers on a bounded periodic tick and
// emits intents: button unpressed-to-pressed edges through the
// binding table, stick deflections quantized to their dominant axis
// with keyboard-equivalent repeat semantics. It only produces
// intents; it never touches focus state.
type Poller struct {
	backend  Backend
	table    *binding.Table
	profiles *Registry
	config   Config
	repeater *adapter.Repeater
	emit     func(intent.Intent)

	mu        sync.Mutex
	prev      map[DeviceID]Sample
	heldStick map[DeviceID]intent.Direction
	assigned  map[DeviceID]Profile
}

// NewPoller creates a poller reading devices from the backend.
func NewPoller(backend Backend, table *binding.Table, profiles *Registry, config Config, emit func(intent.Intent)) *Poller {
	if config.Interval <= 0 {
		config.Interval = DefaultInterval
	}
	if config.Deadzone <= 0 || config.Deadzone >= 1 {
		config.Deadzone = DefaultDeadzone
	}
	if profiles == nil {
		profiles = NewRegistry()
	}

	return &Poller{
		backend:   backend,
		table:     table,
		profiles:  profiles,
		config:    config,
		repeater:  adapter.NewRepeater(config.Curve, intent.SourceGamepad, emit),
		emit:      emit,
		prev:      make(map[DeviceID]Sample),
		heldStick: make(map[DeviceID]intent.Direction),
		assigned:  make(map[DeviceID]Profile),
	}
}

// Run polls until the context is cancelled.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.config.Interval)
	defer ticker.Stop()
	defer p.repeater.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Poll()
		}
	}
}

// Poll samples every connected device once. Exported for tick-driven
// hosts (and tests) that own their own frame loop.
func (p *Poller) Poll() {
	ids := p.backend.Devices()

	connected := make(map[DeviceID]bool, len(ids))
	for _, id := range ids {
		connected[id] = true

		sample, ok := p.backend.Sample(id)
		if !ok {
			// Disconnected mid-poll: drop state, never fail the cycle.
			p.forget(id)
			continue
		}
		p.process(id, sample)
	}

	// Devices that vanished from enumeration.
	p.mu.Lock()
	var gone []DeviceID
	for id := range p.prev {
		if !connected[id] {
			gone = append(gone, id)
		}
	}
	p.mu.Unlock()
	for _, id := range gone {
		p.forget(id)
	}
}

// CancelRepeat implements intent.RepeatCanceller.
func (p *Poller) CancelRepeat(dir intent.Direction) {
	p.repeater.CancelRepeat(dir)
}

// process handles one device sample: button edges then stick state.
func (p *Poller) process(id DeviceID, sample Sample) {
	p.mu.Lock()
	profile, ok := p.assigned[id]
	if !ok {
		profile = p.selectProfile(id)
		p.assigned[id] = profile
	}
	prev, hadPrev := p.prev[id]
	p.prev[id] = sample
	p.mu.Unlock()

	if !hadPrev {
		// First sample only seeds edge detection.
		return
	}

	for _, raw := range sample.JustPressed(prev) {
		code, mapped := profile.Code(raw)
		if !mapped {
			continue
		}
		p.buttonDown(code)
	}
	for _, raw := range sample.JustReleased(prev) {
		code, mapped := profile.Code(raw)
		if !mapped {
			continue
		}
		p.buttonUp(code)
	}

	p.updateStick(id, sample)
}

func (p *Poller) selectProfile(id DeviceID) Profile {
	if p.config.Profile != "" {
		if prof, ok := p.profiles.Get(p.config.Profile); ok {
			return prof
		}
	}
	return p.profiles.Select(p.backend.Signature(id))
}

func (p *Poller) buttonDown(code string) {
	b, bound := p.table.Lookup(intent.SourceGamepad, code)
	if !bound {
		return
	}

	switch b.Intent {
	case intent.KindMove:
		if b.Repeat == binding.RepeatAccelerate {
			p.repeater.Press(b.Direction)
		} else {
			p.emit(intent.Move(b.Direction, intent.SourceGamepad))
		}
	case intent.KindActivate:
		p.emit(intent.Activate(intent.SourceGamepad))
	case intent.KindBack:
		p.emit(intent.Back(intent.SourceGamepad))
	}
}

func (p *Poller) buttonUp(code string) {
	b, bound := p.table.Lookup(intent.SourceGamepad, code)
	if !bound || b.Intent != intent.KindMove {
		return
	}
	p.repeater.Release(b.Direction)
}

// updateStick quantizes the left stick to its dominant axis and
// drives press/release transitions on the repeater.
func (p *Poller) updateStick(id DeviceID, sample Sample) {
	dir := quantize(sample.Left, p.config.Deadzone)

	p.mu.Lock()
	held := p.heldStick[id]
	if dir == held {
		p.mu.Unlock()
		return
	}
	p.heldStick[id] = dir
	p.mu.Unlock()

	if held != intent.DirNone {
		p.repeater.Release(held)
	}
	if dir != intent.DirNone {
		p.repeater.Press(dir)
	}
}

// forget drops all state for a device, releasing any held direction.
func (p *Poller) forget(id DeviceID) {
	p.mu.Lock()
	held := p.heldStick[id]
	delete(p.prev, id)
	delete(p.heldStick, id)
	delete(p.assigned, id)
	p.mu.Unlock()

	if held != intent.DirNone {
		p.repeater.Release(held)
	}
}

// quantize maps stick axes to the dominant direction, or DirNone
// inside the deadzone.
func quantize(s Stick, deadzone float64) intent.Direction {
	ax, ay := math.Abs(s.X), math.Abs(s.Y)
	if ax < deadzone && ay < deadzone {
		return intent.DirNone
	}

	if ax >= ay {
		if s.X < 0 {
			return intent.DirLeft
		}
		return intent.DirRight
	}
	if s.Y < 0 {
		return intent.DirUp
	}
	return intent.DirDown
}
