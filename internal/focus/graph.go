package focus

import (
	"sort"
	"sync"

	"github.com/dshills/focusflow/internal/geom"
)

// BoundsProvider supplies fresh bounds for a node id at resolution
// time. Returning false keeps the bounds recorded at registration.
type BoundsProvider func(id string) (geom.Rect, bool)

// entry is one registration with its resolution-order sequence.
type entry struct {
	node   Node
	handle Handle
	seq    uint64
}

// Graph is the registry of focusable nodes and their groups. It is
// safe for concurrent use; resolution reads take a consistent snapshot
// under the read lock.
type Graph struct {
	mu      sync.RWMutex
	nodes   map[string]*entry
	handles map[Handle]string
	groups  map[string]Group
	bounds  BoundsProvider
	nextSeq uint64
}

// NewGraph creates an empty focus graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:   make(map[string]*entry),
		handles: make(map[Handle]string),
		groups:  make(map[string]Group),
	}
}

// Register adds a node and returns its handle. A duplicate id is
// rejected with ErrDuplicateID and the existing registration is
// unaffected. An empty group joins DefaultGroup.
func (g *Graph) Register(n Node) (Handle, error) {
	if n.ID == "" {
		return "", &RegistrationError{ID: n.ID, Err: ErrEmptyID}
	}
	if n.Group == "" {
		n.Group = DefaultGroup
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[n.ID]; exists {
		return "", &RegistrationError{ID: n.ID, Err: ErrDuplicateID}
	}

	h := newHandle()
	g.nextSeq++
	g.nodes[n.ID] = &entry{node: n, handle: h, seq: g.nextSeq}
	g.handles[h] = n.ID
	return h, nil
}

// Unregister removes a node by handle. Unknown handles are a no-op.
func (g *Graph) Unregister(h Handle) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, ok := g.handles[h]
	if !ok {
		return
	}
	delete(g.handles, h)
	delete(g.nodes, id)
}

// DefineGroup sets a group's policy and default. Redefinition replaces
// the earlier definition; nodes referencing an undefined group get the
// zero (stop) policy.
func (g *Graph) DefineGroup(grp Group) error {
	if grp.ID == "" {
		return &RegistrationError{ID: grp.ID, Err: ErrEmptyID}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.groups[grp.ID] = grp
	return nil
}

// GroupOf returns the group definition a node belongs to. An undefined
// group yields a zero-policy group with the node's group id.
func (g *Graph) GroupOf(id string) Group {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.nodes[id]
	if !ok {
		return Group{}
	}
	if grp, defined := g.groups[e.node.Group]; defined {
		return grp
	}
	return Group{ID: e.node.Group}
}

// RefreshBounds pushes fresh bounds for a node. Unknown handles are a
// no-op.
func (g *Graph) RefreshBounds(h Handle, r geom.Rect) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if id, ok := g.handles[h]; ok {
		g.nodes[id].node.Bounds = r
	}
}

// SetDisabled toggles a node's participation in resolution. Unknown
// handles are a no-op.
func (g *Graph) SetDisabled(h Handle, disabled bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if id, ok := g.handles[h]; ok {
		g.nodes[id].node.Disabled = disabled
	}
}

// SetBoundsProvider installs a pull-style bounds hook consulted at
// snapshot time. A nil provider restores registered bounds.
func (g *Graph) SetBoundsProvider(p BoundsProvider) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.bounds = p
}

// Node returns a node by id.
func (g *Graph) Node(id string) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}
	return e.node, true
}

// IDForHandle returns the node id a handle was issued for.
func (g *Graph) IDForHandle(h Handle) (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	id, ok := g.handles[h]
	return id, ok
}

// Contains reports whether a node id is registered.
func (g *Graph) Contains(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]
	return ok
}

// Len returns the number of registered nodes.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// snapshotNode is a node plus its registration sequence, with bounds
// already refreshed through the provider.
type snapshotNode struct {
	Node
	seq uint64
}

// snapshot returns all nodes in registration order with fresh bounds.
func (g *Graph) snapshot() []snapshotNode {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]snapshotNode, 0, len(g.nodes))
	for _, e := range g.nodes {
		n := e.node
		if g.bounds != nil {
			if r, ok := g.bounds(n.ID); ok {
				n.Bounds = r
			}
		}
		out = append(out, snapshotNode{Node: n, seq: e.seq})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

// Members returns a group's nodes in registration order.
func (g *Graph) Members(groupID string) []Node {
	var out []Node
	for _, n := range g.snapshot() {
		if n.Group == groupID {
			out = append(out, n.Node)
		}
	}
	return out
}

// GroupDefault returns the focus target for entering a group without a
// spatial origin: the designated default if registered and enabled,
// else the group's first registered enabled member.
func (g *Graph) GroupDefault(groupID string) (string, bool) {
	g.mu.RLock()
	grp, defined := g.groups[groupID]
	g.mu.RUnlock()

	if defined && grp.Default != "" {
		if n, ok := g.Node(grp.Default); ok && !n.Disabled && n.Group == groupID {
			return n.ID, true
		}
	}
	for _, n := range g.Members(groupID) {
		if !n.Disabled {
			return n.ID, true
		}
	}
	return "", false
}

// First returns the earliest-registered enabled node, used when no
// default is designated anywhere.
func (g *Graph) First() (string, bool) {
	for _, n := range g.snapshot() {
		if !n.Disabled {
			return n.ID, true
		}
	}
	return "", false
}
