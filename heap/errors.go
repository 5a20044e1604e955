package heap

import "errors"

var (
	// ErrInvalidSize indicates a zero or negative size request, or a Calloc
	// product that is zero or overflows.
	ErrInvalidSize = errors.New("heap: invalid allocation size")

	// ErrNoSpace indicates that no free block fits and growing the arena failed.
	ErrNoSpace = errors.New("heap: out of memory")

	// ErrBadRef indicates a reference that was not produced by this heap,
	// is out of bounds, or was already freed.
	ErrBadRef = errors.New("heap: bad payload reference")
)
