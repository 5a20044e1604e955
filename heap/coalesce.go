package heap

import "github.com/heapkit/heapkit/internal/format"

// canMerge reports whether the block at b can absorb its successor: the
// successor must exist, lie within the heap bound, and be free.
func (h *Heap) canMerge(b int32) bool {
	next := h.nextOf(b)
	return next != format.InvalidOffset && next <= h.top && h.isFree(next)
}

// merge absorbs the next block into b. The absorbed header stops being
// addressable as a block: the chain is spliced around it and the top and
// next-fit cursor are moved off it when they pointed there.
func (h *Heap) merge(b int32) {
	data := h.arena.Bytes()
	next := format.ReadBlockNext(data, b)

	size, used := format.ReadBlockSize(data, b)
	nextSize, _ := format.ReadBlockSize(data, next)
	format.PutBlockSize(data, b, size+format.HeaderSize+nextSize, used)

	after := format.ReadBlockNext(data, next)
	format.PutBlockNext(data, b, after)
	if after != format.InvalidOffset {
		format.PutBlockPrev(data, after, b)
	}
	if h.top == next {
		h.top = b
	}
	if h.cursor == next {
		h.cursor = b
	}
}
