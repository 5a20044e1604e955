package heap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRealloc_NilRefActsAsAlloc verifies the malloc-compatible shortcut.
func TestRealloc_NilRefActsAsAlloc(t *testing.T) {
	h := newTestHeap(t)

	ref, payload, err := h.Realloc(NilRef, 32)
	require.NoError(t, err)
	assert.NotEqual(t, NilRef, ref)
	assert.Len(t, payload, 32)

	assert.Equal(t, 1, h.Stats().ReallocCalls)
	assert.Equal(t, 1, h.Stats().AllocCalls)
}

// TestRealloc_GrowMovesAndPreservesPrefix verifies that growing past the
// current block moves the data and releases the old block.
func TestRealloc_GrowMovesAndPreservesPrefix(t *testing.T) {
	h := newTestHeap(t)

	ref, payload, err := h.Alloc(16)
	require.NoError(t, err)
	for i := range payload {
		payload[i] = byte(i + 1)
	}
	_ = mustAlloc(t, h, 8) // guard, so the grow cannot extend in place

	newRef, newPayload, err := h.Realloc(ref, 64)
	require.NoError(t, err)
	require.NotEqual(t, ref, newRef, "a larger block must move")
	require.Len(t, newPayload, 64)

	for i := 0; i < 16; i++ {
		assert.Equal(t, byte(i+1), newPayload[i], "byte %d must survive the move", i)
	}
	assert.True(t, findInfo(t, h, ref).Free, "old block must be released")

	assertInvariants(t, h)
}

// TestRealloc_ShrinkStaysInPlace verifies that a block already large enough
// is returned as-is, with no data movement.
func TestRealloc_ShrinkStaysInPlace(t *testing.T) {
	h := newTestHeap(t)

	ref, payload, err := h.Alloc(64)
	require.NoError(t, err)
	payload[0] = 0x42

	newRef, newPayload, err := h.Realloc(ref, 16)
	require.NoError(t, err)
	assert.Equal(t, ref, newRef, "shrink must stay in place")
	assert.Equal(t, byte(0x42), newPayload[0])
	assert.EqualValues(t, 64, findInfo(t, h, ref).Size, "block keeps its full size")
}

// TestRealloc_SameSizeStaysInPlace covers the exact-fit case.
func TestRealloc_SameSizeStaysInPlace(t *testing.T) {
	h := newTestHeap(t)

	ref := mustAlloc(t, h, 32)
	newRef, _, err := h.Realloc(ref, 32)
	require.NoError(t, err)
	assert.Equal(t, ref, newRef)
}

// TestRealloc_ZeroSizeKeepsBlock verifies that Realloc(ref, 0) does not free
// the block; releasing is Free's job alone.
func TestRealloc_ZeroSizeKeepsBlock(t *testing.T) {
	h := newTestHeap(t)

	ref := mustAlloc(t, h, 32)
	newRef, _, err := h.Realloc(ref, 0)
	require.NoError(t, err)
	assert.Equal(t, ref, newRef)
	assert.False(t, findInfo(t, h, ref).Free, "block must stay allocated")
}

// TestRealloc_NegativeSize verifies the validation on a live reference.
func TestRealloc_NegativeSize(t *testing.T) {
	h := newTestHeap(t)

	ref := mustAlloc(t, h, 32)
	_, _, err := h.Realloc(ref, -1)
	assert.ErrorIs(t, err, ErrInvalidSize)
	assert.False(t, findInfo(t, h, ref).Free, "failed realloc must not free")
}

// TestRealloc_FreedRef verifies that resizing an already released block is
// rejected as a bad reference.
func TestRealloc_FreedRef(t *testing.T) {
	h := newTestHeap(t)

	ref := mustAlloc(t, h, 32)
	_ = mustAlloc(t, h, 8) // keep the freed block from merging away
	require.NoError(t, h.Free(ref))

	_, _, err := h.Realloc(ref, 64)
	assert.ErrorIs(t, err, ErrBadRef)
}

// TestRealloc_FailureLeavesOriginalIntact verifies the no-move-on-failure
// guarantee: when the new allocation is denied, the original block and its
// data survive untouched.
func TestRealloc_FailureLeavesOriginalIntact(t *testing.T) {
	h := newTestHeapCfg(t, &Config{Limit: 256})

	ref, payload, err := h.Alloc(32)
	require.NoError(t, err)
	payload[0] = 0x7E

	_, _, err = h.Realloc(ref, 1024)
	require.ErrorIs(t, err, ErrNoSpace)

	assert.False(t, findInfo(t, h, ref).Free, "original must stay allocated")
	got, err := h.Payload(ref)
	require.NoError(t, err)
	assert.Equal(t, byte(0x7E), got[0], "original data must be untouched")
}
