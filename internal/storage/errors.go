package storage

import "errors"

// Error kinds surfaced by the core services. Handlers map these onto
// HTTP statuses; anything else is a transient store failure and is
// propagated as-is for the caller to decide on a retry.
var (
	// ErrValidation marks input rejected before any store call.
	ErrValidation = errors.New("validation failed")

	// ErrNotAuthorized marks an action by someone other than the owner
	// or participant it is reserved for.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrNotFound marks a referenced record that could not be resolved.
	ErrNotFound = errors.New("not found")
)
