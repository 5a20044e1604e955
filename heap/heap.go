package heap

import (
	"github.com/heapkit/heapkit/internal/arena"
	"github.com/heapkit/heapkit/internal/format"
)

// Heap is one independent allocator instance. It owns its arena and all
// block headers inside it; callers own only the payload references they
// receive. Not safe for concurrent use.
type Heap struct {
	arena *arena.Arena

	// Block chain bounds, header offsets. InvalidOffset while the heap is
	// empty; set on the first successful growth and never unset.
	start int32
	top   int32

	// cursor is the next-fit resume point, persisted across searches.
	cursor int32

	strategy Strategy
	checks   bool
	stats    Stats
}

// New creates a heap. A nil config selects DefaultConfig.
func New(cfg *Config) (*Heap, error) {
	if cfg == nil {
		cfg = &DefaultConfig
	}
	a, err := arena.New(cfg.Limit)
	if err != nil {
		return nil, err
	}
	return &Heap{
		arena:    a,
		start:    format.InvalidOffset,
		top:      format.InvalidOffset,
		cursor:   format.InvalidOffset,
		strategy: cfg.Strategy,
		checks:   !cfg.DisableChecks,
	}, nil
}

// SetStrategy selects the search strategy for future allocations. Existing
// blocks are unaffected.
func (h *Heap) SetStrategy(s Strategy) {
	h.strategy = s
}

// Strategy returns the active search strategy.
func (h *Heap) Strategy() Strategy {
	return h.strategy
}

// Stats returns a copy of the heap's operation counters.
func (h *Heap) Stats() Stats {
	return h.stats
}

// Size returns the current extent of the heap region in bytes.
func (h *Heap) Size() int32 {
	return h.arena.Size()
}

// Limit returns the growth cap in bytes.
func (h *Heap) Limit() int64 {
	return h.arena.Limit()
}

// Release returns the backing region to the OS. The heap and every payload
// obtained from it must not be used afterwards.
func (h *Heap) Release() error {
	return h.arena.Release()
}

// grow extends the arena by need+HeaderSize bytes and formats the new space
// as a single used block linked after top. need must be aligned.
func (h *Heap) grow(need int32) (int32, error) {
	off, err := h.arena.Grow(need + format.HeaderSize)
	if err != nil {
		return format.InvalidOffset, err
	}
	h.stats.GrowCalls++
	h.stats.GrowBytes += int64(need) + format.HeaderSize

	data := h.arena.Bytes()
	format.WriteHeader(data, off, need, true, h.top, format.InvalidOffset)
	if h.top != format.InvalidOffset {
		format.PutBlockNext(data, h.top, off)
	}
	h.top = off
	if h.start == format.InvalidOffset {
		h.start = off
	}
	return off, nil
}
