// Package arena provides the growable linear memory region backing a heap.
//
// An Arena models a program break: a single contiguous region that only ever
// grows upward, capped at a fixed limit chosen at creation time. On unix the
// whole limit is reserved with an anonymous mapping and the break moves inside
// the reservation; elsewhere a preallocated byte slice provides the same
// contract. Either way Grow is monotonic and the region stays contiguous, so
// offsets handed out earlier remain valid for the arena's lifetime.
package arena

import (
	"errors"
	"fmt"
	"math"
)

// DefaultLimit is the growth cap used when the caller does not provide one.
const DefaultLimit = 1 << 20 // 1 MiB

var (
	// ErrLimit indicates the break cannot move without exceeding the cap.
	ErrLimit = errors.New("arena: growth limit reached")

	// ErrBadSize indicates a non-positive growth request.
	ErrBadSize = errors.New("arena: grow size must be positive")
)

// Arena is a contiguous, growable memory region with a hard cap.
// It is not safe for concurrent use.
type Arena struct {
	mem     []byte // full reservation, length == limit
	size    int32  // current break offset
	release func() error
}

// New creates an arena capped at limit bytes. The region starts empty; the
// first Grow call returns offset 0.
func New(limit int64) (*Arena, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > math.MaxInt32 {
		return nil, fmt.Errorf("arena: limit %d exceeds offset range", limit)
	}
	mem, release, err := reserve(int(limit))
	if err != nil {
		return nil, err
	}
	return &Arena{mem: mem, release: release}, nil
}

// Grow moves the break up by n bytes and returns the offset of the new
// region. The new region is contiguous with all previously returned regions.
// Returns ErrLimit when the cap would be exceeded; the break is unchanged.
func (a *Arena) Grow(n int32) (int32, error) {
	if n <= 0 {
		return 0, ErrBadSize
	}
	if int(a.size)+int(n) > len(a.mem) {
		return 0, ErrLimit
	}
	off := a.size
	a.size += n
	return off, nil
}

// Bytes returns the region up to the current break. The slice is invalidated
// by nothing: Grow never moves existing memory.
func (a *Arena) Bytes() []byte {
	return a.mem[:a.size]
}

// Size returns the current break offset.
func (a *Arena) Size() int32 {
	return a.size
}

// Limit returns the growth cap in bytes.
func (a *Arena) Limit() int64 {
	return int64(len(a.mem))
}

// Release returns the reservation to the OS. The arena must not be used
// afterwards. Calling Release twice is a no-op.
func (a *Arena) Release() error {
	if a.release == nil {
		return nil
	}
	rel := a.release
	a.release = nil
	a.mem = nil
	a.size = 0
	return rel()
}
