package catalog

import "errors"

// Domain errors for catalog operations. Controllers map these to HTTP
// statuses; a failed operation never changes catalog state.
var (
	ErrNotFound      = errors.New("product not found")
	ErrInvalidCode   = errors.New("invalid product code")
	ErrEmptyName     = errors.New("product name is empty")
	ErrInvalidPrice  = errors.New("invalid price")
	ErrNotAnOverride = errors.New("entry comes from the base catalog and cannot be deleted")
	ErrUnavailable   = errors.New("catalog source unavailable")
)
