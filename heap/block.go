package heap

import "github.com/heapkit/heapkit/internal/format"

// Block navigation over the arena bytes. All helpers take and return header
// offsets; format.InvalidOffset stands in for "no such block".

// blockSize returns the payload size and used flag of the block at b.
func (h *Heap) blockSize(b int32) (int32, bool) {
	return format.ReadBlockSize(h.arena.Bytes(), b)
}

// isFree reports whether the block at b is free.
func (h *Heap) isFree(b int32) bool {
	_, used := h.blockSize(b)
	return !used
}

// nextOf returns the block immediately after b, or InvalidOffset at top.
func (h *Heap) nextOf(b int32) int32 {
	return format.ReadBlockNext(h.arena.Bytes(), b)
}

// prevOf returns the block immediately before b, or InvalidOffset at start.
func (h *Heap) prevOf(b int32) int32 {
	return format.ReadBlockPrev(h.arena.Bytes(), b)
}

// payloadOf returns the payload reference for the block at b.
func payloadOf(b int32) Ref {
	return b + format.HeaderSize
}

// headerOf returns the header offset for a payload reference. The result is
// only meaningful for references produced by this heap; resolve validates it.
func headerOf(ref Ref) int32 {
	return ref - format.HeaderSize
}

// payloadBytes returns the payload region of the block at b.
func (h *Heap) payloadBytes(b int32) []byte {
	data := h.arena.Bytes()
	size, _ := format.ReadBlockSize(data, b)
	off := payloadOf(b)
	return data[off : off+size]
}

// resolve maps a payload reference back to its header offset, rejecting
// references that are out of bounds or fail the check-word validation.
func (h *Heap) resolve(ref Ref) (int32, error) {
	data := h.arena.Bytes()
	b := headerOf(ref)
	if b < 0 || int(ref) > len(data) {
		BUG("reference %#x outside heap region (size %d)\n", ref, len(data))
		return format.InvalidOffset, ErrBadRef
	}
	if h.checks && format.ReadBlockCheck(data, b) != format.CheckMagic {
		BUG("reference %#x has no block header (check word %#x)\n",
			ref, format.ReadBlockCheck(data, b))
		return format.InvalidOffset, ErrBadRef
	}
	size, _ := format.ReadBlockSize(data, b)
	if size <= 0 || int(ref)+int(size) > len(data) {
		BUG("reference %#x has corrupt size %d\n", ref, size)
		return format.InvalidOffset, ErrBadRef
	}
	return b, nil
}

// Payload returns the usable bytes behind a reference previously returned by
// Alloc, Calloc, or Realloc.
func (h *Heap) Payload(ref Ref) ([]byte, error) {
	b, err := h.resolve(ref)
	if err != nil {
		return nil, err
	}
	return h.payloadBytes(b), nil
}
