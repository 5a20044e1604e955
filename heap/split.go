package heap

import "github.com/heapkit/heapkit/internal/format"

// canSplit reports whether the block at b can be cut down to need bytes while
// leaving a remainder big enough to host its own header and a minimal
// payload. A remainder too small to be a valid block is absorbed instead.
func (h *Heap) canSplit(b, need int32) bool {
	size, _ := h.blockSize(b)
	return size >= need+format.HeaderSize+format.MinBlockSize
}

// split shrinks the block at b to need bytes and formats the remainder as a
// new free block immediately after it, wiring the links in both directions so
// later scans and coalescing reach it. need must be aligned and the caller
// must have checked canSplit.
func (h *Heap) split(b, need int32) {
	data := h.arena.Bytes()
	size, used := format.ReadBlockSize(data, b)
	rest := size - need - format.HeaderSize

	format.PutBlockSize(data, b, need, used)

	rem := b + format.HeaderSize + need
	next := format.ReadBlockNext(data, b)
	format.WriteHeader(data, rem, rest, false, b, next)
	format.PutBlockNext(data, b, rem)
	if next != format.InvalidOffset {
		format.PutBlockPrev(data, next, rem)
	} else {
		h.top = rem
	}
	h.stats.SplitCount++
}
