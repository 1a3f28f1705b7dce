// Package controller owns the focus state machine. The lifecycle is
// idle (nothing registered) to focused (exactly one current node) to
// suspended (an overlay claims exclusive input) and back.
//
// All focus mutation flows through the controller, one intent at a
// time: moves resolve through the graph and push the previous node
// onto the history stack, activate fires the current node's handler
// without changing focus, back unwinds the history and delegates to a
// root handler when it runs dry, and suspend/resume bracket overlay
// lifetimes with restoration of the pre-suspension node. Removing the
// node that holds focus reassigns it deterministically rather than
// dropping to idle while nodes remain.
package controller
