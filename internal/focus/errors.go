package focus

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph registration.
var (
	// ErrDuplicateID is returned when a node id is already registered.
	ErrDuplicateID = errors.New("duplicate node id")

	// ErrEmptyID is returned for a node or group with no id.
	ErrEmptyID = errors.New("empty id")
)

// RegistrationError wraps a registration failure with the offending id.
type RegistrationError struct {
	ID  string
	Err error
}

// Error implements the error interface.
func (e *RegistrationError) Error() string {
	return fmt.Sprintf("register %q: %v", e.ID, e.Err)
}

// Unwrap returns the underlying error.
func (e *RegistrationError) Unwrap() error {
	return e.Err
}
