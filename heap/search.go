package heap

import "github.com/heapkit/heapkit/internal/format"

// Free-block search strategies. Each takes an already-aligned payload size
// and returns the header offset of a free block that fits, or InvalidOffset.

// findBlock runs the active strategy and splits an oversized match.
func (h *Heap) findBlock(need int32) int32 {
	var b int32
	switch h.strategy {
	case BestFit:
		b = h.bestFit(need)
	case NextFit:
		b = h.nextFit(need)
	default:
		b = h.firstFit(need)
	}
	if b != format.InvalidOffset && h.canSplit(b, need) {
		h.split(b, need)
	}
	return b
}

// firstFit scans from the lowest address and returns the first free block
// large enough. O(n), biased toward the low end of the heap.
func (h *Heap) firstFit(need int32) int32 {
	for b := h.start; b != format.InvalidOffset; b = h.nextOf(b) {
		if size, used := h.blockSize(b); !used && size >= need {
			return b
		}
	}
	return format.InvalidOffset
}

// nextFit scans like firstFit but resumes from the cursor left by the
// previous successful search, wrapping around to the start once. On a match
// the cursor moves to the block after it.
func (h *Heap) nextFit(need int32) int32 {
	if h.start == format.InvalidOffset {
		return format.InvalidOffset
	}
	if h.cursor == format.InvalidOffset {
		h.cursor = h.start
	}
	from := h.cursor
	b := from
	for {
		if size, used := h.blockSize(b); !used && size >= need {
			h.cursor = h.nextOf(b)
			if h.cursor == format.InvalidOffset {
				h.cursor = h.start
			}
			return b
		}
		b = h.nextOf(b)
		if b == format.InvalidOffset {
			b = h.start
			h.stats.CursorWraps++
		}
		if b == from {
			return format.InvalidOffset
		}
	}
}

// bestFit scans the whole chain and returns the smallest free block that
// fits, keeping the first encountered on ties so lower addresses win.
func (h *Heap) bestFit(need int32) int32 {
	best := format.InvalidOffset
	var bestSize int32
	for b := h.start; b != format.InvalidOffset; b = h.nextOf(b) {
		size, used := h.blockSize(b)
		if used || size < need {
			continue
		}
		if best == format.InvalidOffset || size < bestSize {
			best, bestSize = b, size
		}
	}
	return best
}
