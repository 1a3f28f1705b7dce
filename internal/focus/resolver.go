package focus

import (
	"github.com/dshills/focusflow/internal/geom"
	"github.com/dshills/focusflow/internal/intent"
)

// Weights tunes directional scoring. Alignment weights the
// perpendicular-axis overlap with the current node; Distance weights
// raw center distance. Favoring alignment keeps vertical movement in
// the same column and horizontal movement in the same row.
type Weights struct {
	Distance  float64
	Alignment float64
}

// DefaultWeights favors alignment 2:1 over distance.
func DefaultWeights() Weights {
	return Weights{Distance: 1, Alignment: 2}
}

func (w Weights) normalize() Weights {
	if w.Distance <= 0 && w.Alignment <= 0 {
		return DefaultWeights()
	}
	return w
}

// Resolver picks the target of a directional move: a strict half-plane
// filter on the primary axis, a weighted alignment/distance score, and
// priority then registration-order tie-breaks, with group wrap as the
// fallback when the half-plane is empty.
type Resolver struct {
	weights Weights
}

// NewResolver creates a resolver. Zero weights take the defaults.
func NewResolver(w Weights) *Resolver {
	return &Resolver{weights: w.normalize()}
}

// Next resolves a move from the current node. The second return is
// false when focus should not change: no candidate and no wrap, an
// unknown current node, or a wrap that lands back on the current node.
// The result is never a disabled node.
func (r *Resolver) Next(g *Graph, currentID string, dir intent.Direction) (string, bool) {
	nodes := g.snapshot()

	var current *snapshotNode
	for i := range nodes {
		if nodes[i].ID == currentID {
			current = &nodes[i]
			break
		}
	}
	if current == nil || dir == intent.DirNone {
		return "", false
	}

	policy := g.GroupOf(currentID).Policy

	if best, ok := r.bestCandidate(nodes, *current, dir, policy.Trap); ok {
		return best, true
	}
	if policy.Wrap {
		if target, ok := wrapTarget(nodes, *current, dir); ok {
			return target, true
		}
	}
	return "", false
}

// bestCandidate scans the strict half-plane in the movement direction
// and returns the lowest-scoring node.
func (r *Resolver) bestCandidate(nodes []snapshotNode, current snapshotNode, dir intent.Direction, trap bool) (string, bool) {
	perp := perpendicularAxis(dir)
	origin := current.Bounds.Center()

	var (
		best      *snapshotNode
		bestScore float64
	)
	for i := range nodes {
		cand := &nodes[i]
		if cand.ID == current.ID || cand.Disabled {
			continue
		}
		if trap && cand.Group != current.Group {
			continue
		}
		if !beyond(origin, cand.Bounds.Center(), dir) {
			continue
		}

		overlap := current.Bounds.OverlapFraction(cand.Bounds, perp)
		dist := origin.DistanceTo(cand.Bounds.Center())
		score := dist * (r.weights.Distance + r.weights.Alignment*(1-overlap))

		switch {
		case best == nil, score < bestScore:
			best, bestScore = cand, score
		case score == bestScore && cand.Priority > best.Priority:
			best = cand
		case score == bestScore && cand.Priority == best.Priority && cand.seq < best.seq:
			best = cand
		}
	}
	if best == nil {
		return "", false
	}
	return best.ID, true
}

// wrapTarget returns the group member at the opposite edge of the
// movement direction: moving right wraps to the leftmost member.
// Ties prefer the best perpendicular overlap with the current node.
func wrapTarget(nodes []snapshotNode, current snapshotNode, dir intent.Direction) (string, bool) {
	perp := perpendicularAxis(dir)

	var (
		target      *snapshotNode
		targetCoord float64
		targetOver  float64
	)
	for i := range nodes {
		cand := &nodes[i]
		if cand.ID == current.ID || cand.Disabled || cand.Group != current.Group {
			continue
		}

		coord := edgeCoord(cand.Bounds.Center(), dir)
		over := current.Bounds.OverlapFraction(cand.Bounds, perp)

		switch {
		case target == nil, coord < targetCoord:
			target, targetCoord, targetOver = cand, coord, over
		case coord == targetCoord && over > targetOver:
			target, targetOver = cand, over
		case coord == targetCoord && over == targetOver && cand.seq < target.seq:
			target = cand
		}
	}
	if target == nil {
		return "", false
	}
	return target.ID, true
}

// beyond reports whether the candidate center lies strictly past the
// origin along the movement direction. The perpendicular axis is
// unconstrained, so nodes level on it stay in play.
func beyond(origin, cand geom.Point, dir intent.Direction) bool {
	switch dir {
	case intent.DirUp:
		return cand.Y < origin.Y
	case intent.DirDown:
		return cand.Y > origin.Y
	case intent.DirLeft:
		return cand.X < origin.X
	case intent.DirRight:
		return cand.X > origin.X
	}
	return false
}

// edgeCoord orders group members so that the minimum is the wrap
// landing spot for the given direction.
func edgeCoord(center geom.Point, dir intent.Direction) float64 {
	switch dir {
	case intent.DirRight:
		return center.X
	case intent.DirLeft:
		return -center.X
	case intent.DirDown:
		return center.Y
	default: // DirUp
		return -center.Y
	}
}

func perpendicularAxis(dir intent.Direction) geom.Axis {
	if dir == intent.DirLeft || dir == intent.DirRight {
		return geom.AxisVertical
	}
	return geom.AxisHorizontal
}
