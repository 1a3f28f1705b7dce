package engine

import (
	"time"

	"github.com/dshills/focusflow/internal/adapter"
	"github.com/dshills/focusflow/internal/focus"
	"github.com/dshills/focusflow/internal/scroll"
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithQueueSize sets the intent queue capacity.
func WithQueueSize(size int) Option {
	return func(e *Engine) {
		if size > 0 {
			e.queueSize = size
		}
	}
}

// WithCoalescingWindow sets how long a same-direction move from a
// different source is treated as an echo and collapsed.
func WithCoalescingWindow(window time.Duration) Option {
	return func(e *Engine) {
		if window > 0 {
			e.coalescing = window
		}
	}
}

// WithRepeatCurve sets the directional auto-repeat acceleration curve
// shared by the keyboard and gamepad adapters.
func WithRepeatCurve(curve adapter.RepeatCurve) Option {
	return func(e *Engine) {
		e.curve = curve
	}
}

// WithResolverWeights sets the directional scoring weights.
func WithResolverWeights(w focus.Weights) Option {
	return func(e *Engine) {
		e.weights = w
	}
}

// WithScrollConfig sets the scroll coordinator's margin, animation
// duration and easing.
func WithScrollConfig(cfg scroll.Config) Option {
	return func(e *Engine) {
		e.scrollCfg = cfg
	}
}

// WithDeadzone sets the gamepad stick deadzone in (0, 1).
func WithDeadzone(deadzone float64) Option {
	return func(e *Engine) {
		if deadzone > 0 && deadzone < 1 {
			e.deadzone = deadzone
		}
	}
}

// WithPollInterval sets the gamepad polling period.
func WithPollInterval(interval time.Duration) Option {
	return func(e *Engine) {
		if interval > 0 {
			e.pollInterval = interval
		}
	}
}

// WithGamepadProfile forces a named mapping profile for all devices
// instead of per-device signature selection.
func WithGamepadProfile(name string) Option {
	return func(e *Engine) {
		e.gamepadProfile = name
	}
}

// WithBindingsPath sets the user bindings file. The file is loaded at
// Start, watched for changes, and written by SaveBindings.
func WithBindingsPath(path string) Option {
	return func(e *Engine) {
		e.bindingsPath = path
	}
}

// WithRootBackHandler installs the handler for back intents that
// exhaust the focus history.
func WithRootBackHandler(h func()) Option {
	return func(e *Engine) {
		e.rootBack = h
	}
}
