package tripstore

import "errors"

// Sentinel errors surfaced by the store. Handlers map these onto HTTP
// statuses; the assembly batch reports them per item.
var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation error")
)
