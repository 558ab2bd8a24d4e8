package assembly

import "errors"

// Construction errors. Model parameters are checked once in New; Step never fails.
var (
	// ErrInvalidSigma indicates a zero peak spread, which would divide by zero.
	ErrInvalidSigma = errors.New("assembly: sigma must be non-zero")

	// ErrInvalidBounds indicates a channel with non-positive length or width.
	ErrInvalidBounds = errors.New("assembly: channel length and width must be positive")

	// ErrInvalidCount indicates a negative particle count.
	ErrInvalidCount = errors.New("assembly: particle count must be non-negative")

	// ErrInvalidVelocity indicates a negative velocity magnitude.
	ErrInvalidVelocity = errors.New("assembly: velocity magnitude must be non-negative")

	// ErrNonFinite indicates a NaN or Inf parameter.
	ErrNonFinite = errors.New("assembly: parameter is NaN or Inf")
)
