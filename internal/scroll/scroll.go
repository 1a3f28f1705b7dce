package scroll

import (
	"sync"
	"time"

	"github.com/dshills/focusflow/internal/geom"
)

// DefaultDuration is the scroll animation length. Zero in Config
// disables animation and commits offsets immediately.
const DefaultDuration = 180 * time.Millisecond

const frameInterval = 16 * time.Millisecond

// Easing maps animation progress in [0, 1] to eased progress.
type Easing func(t float64) float64

// SmoothStep is the default easing: slow in, slow out.
func SmoothStep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// Container is a scrollable region owning part of the focus layout.
// Viewport returns the currently visible content region; SetOffset
// moves its origin. SetOffset may be called from the animation
// goroutine and must be safe for concurrent use.
type Container interface {
	ID() string
	Viewport() geom.Rect
	SetOffset(geom.Point)
}

// Config tunes the coordinator.
type Config struct {
	// Margin is the padding kept between a focused node and the
	// viewport edge.
	Margin float64

	// Duration is the animation length. Zero means instant.
	Duration time.Duration

	// Easing shapes the animation. Nil means SmoothStep.
	Easing Easing

	// Instant disables animation entirely regardless of Duration.
	Instant bool
}

func (c Config) normalize() Config {
	if c.Duration < 0 {
		c.Duration = 0
	}
	if c.Easing == nil {
		c.Easing = SmoothStep
	}
	if c.Instant {
		c.Duration = 0
	}
	return c
}

// animation is one in-flight scroll, cancellable by its successor.
type animation struct {
	cancel chan struct{}
	done   chan struct{}
}

// Coordinator keeps the focused node inside its container's visible
// bounds. At most one animation runs per container: a new request
// cancels the in-flight one and supersedes its target, so two
// animations never race on the same container axis.
type Coordinator struct {
	config Config

	mu    sync.Mutex
	anims map[string]*animation
}

// New creates a coordinator.
func New(config Config) *Coordinator {
	return &Coordinator{
		config: config.normalize(),
		anims:  make(map[string]*animation),
	}
}

// EnsureVisible scrolls the container the minimal amount that brings
// bounds fully into view with the configured margin. Already-visible
// bounds cancel any in-flight animation and scroll nothing.
func (c *Coordinator) EnsureVisible(cont Container, bounds geom.Rect) {
	prev := c.replace(cont.ID(), nil)
	if prev != nil {
		close(prev.cancel)
		<-prev.done
	}

	view := cont.Viewport()
	target := targetOffset(view, bounds, c.config.Margin)
	origin := geom.Point{X: view.X, Y: view.Y}

	if target == origin {
		return
	}
	if c.config.Duration == 0 {
		cont.SetOffset(target)
		return
	}

	anim := &animation{cancel: make(chan struct{}), done: make(chan struct{})}
	c.replace(cont.ID(), anim)
	go c.run(cont, anim, origin, target)
}

// Settle blocks until the container's in-flight animation, if any,
// completes or is cancelled.
func (c *Coordinator) Settle(containerID string) {
	c.mu.Lock()
	anim := c.anims[containerID]
	c.mu.Unlock()
	if anim != nil {
		<-anim.done
	}
}

// Stop cancels every in-flight animation.
func (c *Coordinator) Stop() {
	c.mu.Lock()
	anims := c.anims
	c.anims = make(map[string]*animation)
	c.mu.Unlock()

	for _, a := range anims {
		close(a.cancel)
		<-a.done
	}
}

// replace swaps the registered animation for a container, returning
// the previous one.
func (c *Coordinator) replace(id string, next *animation) *animation {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.anims[id]
	if next == nil {
		delete(c.anims, id)
	} else {
		c.anims[id] = next
	}
	return prev
}

// run animates the container offset from origin to target. The final
// frame lands exactly on target; cancellation leaves the offset
// wherever the last frame put it, for the successor to pick up.
func (c *Coordinator) run(cont Container, anim *animation, origin, target geom.Point) {
	defer close(anim.done)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-anim.cancel:
			return
		case now := <-ticker.C:
			t := float64(now.Sub(start)) / float64(c.config.Duration)
			if t >= 1 {
				cont.SetOffset(target)
				c.finish(cont.ID(), anim)
				return
			}
			e := c.config.Easing(t)
			cont.SetOffset(geom.Point{
				X: origin.X + (target.X-origin.X)*e,
				Y: origin.Y + (target.Y-origin.Y)*e,
			})
		}
	}
}

// finish removes a completed animation if it is still the current one.
func (c *Coordinator) finish(id string, anim *animation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.anims[id] == anim {
		delete(c.anims, id)
	}
}

// targetOffset computes the minimal scroll origin that contains
// bounds plus margin. When the padded bounds exceed the viewport the
// leading edge wins.
func targetOffset(view, bounds geom.Rect, margin float64) geom.Point {
	return geom.Point{
		X: solveAxis(view.X, view.W, bounds.X, bounds.MaxX(), margin),
		Y: solveAxis(view.Y, view.H, bounds.Y, bounds.MaxY(), margin),
	}
}

// solveAxis shifts one axis of the scroll origin just far enough that
// [lo-margin, hi+margin] fits in [off, off+extent]. Applying the low
// constraint last gives the leading edge priority when both bind.
func solveAxis(off, extent, lo, hi, margin float64) float64 {
	if hi+margin > off+extent {
		off = hi + margin - extent
	}
	if lo-margin < off {
		off = lo - margin
	}
	return off
}
