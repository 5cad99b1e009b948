package raycast

import "errors"

// Caller contract violations. A ray that hits nothing is not an error.
var (
	ErrZeroDirection   = errors.New("ray direction is zero or not finite")
	ErrInvalidDistance = errors.New("max distance must be finite and greater than zero")
	ErrInvalidOrigin   = errors.New("ray origin is not finite")
	ErrNilSource       = errors.New("raycast source is nil")
)
