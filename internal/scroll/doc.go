// Package scroll keeps the focused node visible. On each focus change
// the coordinator computes the minimal offset that brings the node's
// bounds fully inside its container's viewport, padded by a margin,
// and drives the container there, either instantly or through a
// single cancellable eased animation per container. A newer request
// always supersedes the in-flight one.
package scroll
