package focus

import (
	"github.com/google/uuid"

	"github.com/dshills/focusflow/internal/geom"
)

// Handle identifies one registration. It is returned by Register and
// required to unregister; unknown handles are ignored.
type Handle string

// newHandle returns a fresh opaque registration handle.
func newHandle() Handle {
	return Handle(uuid.NewString())
}

// DefaultGroup is the group nodes join when they name none.
const DefaultGroup = "default"

// Node is one focusable region. Bounds are viewport-relative; the
// consumer refreshes them on layout change, either by pushing through
// RefreshBounds or by installing a BoundsProvider on the graph.
type Node struct {
	// ID uniquely identifies the node. Registering a duplicate id is
	// rejected and leaves the existing registration untouched.
	ID string

	// Bounds is the node's bounding box.
	Bounds geom.Rect

	// Group names the node's group. Empty means DefaultGroup; every
	// node belongs to exactly one group.
	Group string

	// Priority breaks resolution ties between equally scored
	// candidates. Higher wins; equal priorities fall back to
	// registration order.
	Priority int

	// Disabled excludes the node from resolution. A disabled node can
	// never hold focus.
	Disabled bool

	// OnActivate is invoked once per activate intent while the node
	// holds focus. May be nil.
	OnActivate func()
}

// Policy is a group's edge behavior for directional movement.
type Policy struct {
	// Wrap selects the opposite edge's node when movement runs off
	// this group's edge instead of stopping.
	Wrap bool

	// Trap keeps directional movement inside the group; only back
	// releases focus from it. Used for modal-like surfaces.
	Trap bool
}

// Group clusters nodes that share edge policy and a designated
// default focus target.
type Group struct {
	// ID names the group.
	ID string

	// Policy is the group's edge behavior.
	Policy Policy

	// Default is the node id focused when the group is entered without
	// a spatial target, e.g. on resume fallback. Empty falls back to
	// the group's first registered member.
	Default string
}
