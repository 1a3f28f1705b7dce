// Package focus holds the registry of focusable regions and the
// spatial resolution of directional movement between them.
//
// Consumers register Nodes carrying viewport-relative bounds and group
// membership; the Graph hands back opaque handles and tracks
// registration order for deterministic tie-breaking. The Resolver
// answers "where does focus go from here" with a fixed shape: filter
// to the strict half-plane in the movement direction, score candidates
// by alignment-weighted distance, break ties by priority then
// registration order, and fall back to the group's wrap policy when the
// half-plane is empty. Trap groups confine movement to their members.
//
// The package mutates no focus state; ownership of the current node
// lives in the controller.
package focus
