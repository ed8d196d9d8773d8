package port

import "errors"

// Sentinel errors shared by repositories and use cases. Adapters wrap them
// with context; callers test with errors.Is.
var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrConflict          = errors.New("conflict")
	ErrNotConfigured     = errors.New("not configured")
)
