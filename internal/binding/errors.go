package binding

import "errors"

// Sentinel errors for the binding package.
var (
	// ErrInvalidBinding is returned when a binding entry is malformed.
	ErrInvalidBinding = errors.New("invalid binding")

	// ErrUnknownVersion is returned when a persisted configuration
	// blob carries a version this build cannot read.
	ErrUnknownVersion = errors.New("unknown bindings config version")

	// ErrWatcherClosed is returned by watcher operations after Close.
	ErrWatcherClosed = errors.New("binding watcher is closed")
)

// EntryError reports one rejected entry from a bindings table. The
// remaining entries of the table still apply.
type EntryError struct {
	// Index is the position of the entry in the supplied table.
	Index int

	// Code is the entry's input code, if any.
	Code string

	// Err is the underlying validation error.
	Err error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	return "binding entry " + e.Code + " rejected: " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
	return e.Err
}
