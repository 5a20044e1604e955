package heap

import (
	"math"

	"github.com/heapkit/heapkit/internal/format"
)

// maxAllocSize bounds a single request so the aligned size plus header still
// fits the int32 offset range.
const maxAllocSize = math.MaxInt32 - format.HeaderSize - format.WordSize

// Alloc allocates size bytes and returns the payload reference plus a slice
// over the payload. The size is aligned up to the word size; the payload may
// therefore be slightly larger than requested. A zero or negative size yields
// ErrInvalidSize; a denied growth yields ErrNoSpace with no state change.
func (h *Heap) Alloc(size int) (Ref, []byte, error) {
	h.stats.AllocCalls++
	if size <= 0 {
		return NilRef, nil, ErrInvalidSize
	}
	if size > maxAllocSize {
		return NilRef, nil, ErrNoSpace
	}
	need := format.AlignI32(int32(size))

	b := h.findBlock(need)
	if b != format.InvalidOffset {
		data := h.arena.Bytes()
		sz, _ := format.ReadBlockSize(data, b)
		format.PutBlockSize(data, b, sz, true)
	} else {
		var err error
		b, err = h.grow(need)
		if err != nil {
			return NilRef, nil, ErrNoSpace
		}
	}

	sz, _ := h.blockSize(b)
	h.stats.BytesAllocated += int64(sz)
	return payloadOf(b), h.payloadBytes(b), nil
}

// Free marks the block behind ref free and coalesces it with free neighbors,
// forward first, then backward. Free(NilRef) is a no-op. A reference that was
// not produced by this heap, or was already freed, yields ErrBadRef and
// leaves the chain untouched.
func (h *Heap) Free(ref Ref) error {
	h.stats.FreeCalls++
	if ref == NilRef {
		WARN("Free(nil) called\n")
		return nil
	}
	b, err := h.resolve(ref)
	if err != nil {
		return err
	}
	data := h.arena.Bytes()
	size, used := format.ReadBlockSize(data, b)
	if !used {
		BUG("double free of reference %#x\n", ref)
		return ErrBadRef
	}
	format.PutBlockSize(data, b, size, false)
	h.stats.BytesFreed += int64(size)

	for h.canMerge(b) {
		h.merge(b)
		h.stats.CoalesceForward++
	}
	prev := h.prevOf(b)
	for prev != format.InvalidOffset && h.isFree(prev) && h.canMerge(prev) {
		h.merge(prev)
		h.stats.CoalesceBackward++
		prev = h.prevOf(prev)
	}
	return nil
}

// Calloc allocates count*size bytes and zero-fills the payload. Reused blocks
// carry whatever the previous owner wrote, so the wipe is unconditional.
// A zero product yields ErrInvalidSize, as does a product that would
// overflow, instead of silently wrapping.
func (h *Heap) Calloc(count, size int) (Ref, []byte, error) {
	h.stats.CallocCalls++
	if count <= 0 || size <= 0 {
		return NilRef, nil, ErrInvalidSize
	}
	if count > math.MaxInt/size {
		return NilRef, nil, ErrInvalidSize
	}
	ref, payload, err := h.Alloc(count * size)
	if err != nil {
		return NilRef, nil, err
	}
	clear(payload)
	return ref, payload, nil
}

// Realloc resizes the allocation behind ref. When the block already
// accommodates size the same reference is returned with no data movement.
// Otherwise a new block is allocated, the old payload copied over, and the
// old block freed. On allocation failure the original block is left intact
// and still allocated. Realloc(NilRef, n) behaves as Alloc(n).
func (h *Heap) Realloc(ref Ref, size int) (Ref, []byte, error) {
	h.stats.ReallocCalls++
	if ref == NilRef {
		return h.Alloc(size)
	}
	if size < 0 {
		return NilRef, nil, ErrInvalidSize
	}
	b, err := h.resolve(ref)
	if err != nil {
		return NilRef, nil, err
	}
	oldSize, used := h.blockSize(b)
	if !used {
		BUG("realloc of freed reference %#x\n", ref)
		return NilRef, nil, ErrBadRef
	}
	if int(oldSize) >= size {
		return ref, h.payloadBytes(b), nil
	}

	newRef, newPayload, err := h.Alloc(size)
	if err != nil {
		return NilRef, nil, err
	}
	copy(newPayload, h.payloadBytes(b))
	if err := h.Free(ref); err != nil {
		return NilRef, nil, err
	}
	return newRef, newPayload, nil
}
