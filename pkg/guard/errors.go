package guard

import "errors"

// Sentinel errors, one per failure kind. A *Failure unwraps to the sentinel
// of its kind, so callers can match with errors.Is.
var (
	// ErrNilArgument is returned when a required value is nil.
	ErrNilArgument = errors.New("value cannot be nil")

	// ErrInvalidArgument is returned when a present value fails a content constraint.
	ErrInvalidArgument = errors.New("value is invalid")

	// ErrOutOfRange is returned when a value falls outside an inclusive bound.
	ErrOutOfRange = errors.New("value is out of range")

	// ErrInvalidOperation is returned when an operation precondition is violated.
	ErrInvalidOperation = errors.New("operation is not valid in the current state")

	// ErrPlatformNotSupported is returned when the running platform is not supported.
	ErrPlatformNotSupported = errors.New("platform is not supported")
)
