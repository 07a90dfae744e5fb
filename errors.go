package tuple

import "errors"

var (
	// ErrIndexOutOfRange is reported when a component index is not in
	// [0, N).
	ErrIndexOutOfRange = errors.New("tuple: index out of range")

	// ErrSizeMismatch is reported when a slice handed to a bulk
	// accessor does not have room for, or does not hold exactly, the
	// tuple's components.
	ErrSizeMismatch = errors.New("tuple: size mismatch")

	// ErrNilArgument is reported when a nil tuple is passed where one
	// is required.
	ErrNilArgument = errors.New("tuple: nil argument")

	// ErrInvalidComponent is reported when a component holds the null
	// value of its kind, such as a nil *big.Int.
	ErrInvalidComponent = errors.New("tuple: invalid component")

	// ErrArithmetic wraps the error of a numeric kind that reports
	// domain errors as values, such as a decimal division by zero.
	ErrArithmetic = errors.New("tuple: arithmetic error")
)
