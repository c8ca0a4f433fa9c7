package arrays

import "errors"

var (
	// ErrNullArgument is returned when a slice or predicate that must be
	// present is nil.
	ErrNullArgument = errors.New("arrays: argument is nil")

	// ErrOutOfRange is returned when an index or length falls outside the
	// bounds of the slice.
	ErrOutOfRange = errors.New("arrays: argument out of range")
)
