package heap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heapkit/heapkit/internal/format"
)

// ============================================================================
// Test Helpers
// ============================================================================

// newTestHeap creates a heap with the default config, released on cleanup.
func newTestHeap(t testing.TB) *Heap {
	t.Helper()
	return newTestHeapCfg(t, nil)
}

// newTestHeapCfg creates a heap with the given config, released on cleanup.
func newTestHeapCfg(t testing.TB, cfg *Config) *Heap {
	t.Helper()
	h, err := New(cfg)
	require.NoError(t, err, "failed to create test heap")
	t.Cleanup(func() { _ = h.Release() })
	return h
}

// mustAlloc allocates or fails the test.
func mustAlloc(t testing.TB, h *Heap, size int) Ref {
	t.Helper()
	ref, _, err := h.Alloc(size)
	require.NoError(t, err, "Alloc(%d)", size)
	return ref
}

// buildLayout allocates the given payload sizes in order and returns the refs.
// Sizes must already be word-aligned so the refs line up with later searches.
func buildLayout(t testing.TB, h *Heap, sizes ...int) []Ref {
	t.Helper()
	refs := make([]Ref, len(sizes))
	for i, sz := range sizes {
		refs[i] = mustAlloc(t, h, sz)
	}
	return refs
}

// assertInvariants walks the heap and checks the structural invariants that
// must hold after every public operation: blocks contiguous in address order,
// sizes word-aligned, no two adjacent free blocks, chain covering the whole
// region, and prev/next links agreeing with the arithmetic layout.
func assertInvariants(t testing.TB, h *Heap) {
	t.Helper()

	blocks := h.Describe()
	if len(blocks) == 0 {
		require.Equal(t, format.InvalidOffset, h.start, "empty heap must have no start")
		require.Equal(t, format.InvalidOffset, h.top, "empty heap must have no top")
		require.EqualValues(t, 0, h.Size(), "empty heap must have no region")
		return
	}

	require.EqualValues(t, format.HeaderSize, blocks[0].Ref, "first payload follows first header")

	end := int32(0)
	prevFree := false
	for i, b := range blocks {
		assert.Equal(t, format.AlignI32(b.Size), b.Size, "block %d size must be word-aligned", i)
		assert.Positive(t, b.Size, "block %d size must be positive", i)
		assert.Equal(t, end+format.HeaderSize, b.Ref, "block %d must start where block %d ended", i, i-1)
		if i > 0 {
			assert.False(t, prevFree && b.Free, "blocks %d and %d are both free", i-1, i)
		}
		prevFree = b.Free
		end = b.Ref + b.Size
	}
	require.Equal(t, h.Size(), end, "block chain must cover the whole region")
	require.Equal(t, headerOf(blocks[len(blocks)-1].Ref), h.top, "top must be the last block")

	// Link symmetry: walking next from start and prev from top must agree.
	prev := format.InvalidOffset
	for b := h.start; b != format.InvalidOffset; b = h.nextOf(b) {
		require.Equal(t, prev, h.prevOf(b), "prev link of header %#x", b)
		prev = b
	}
	require.Equal(t, h.top, prev, "next chain must end at top")
}

// findInfo returns the BlockInfo for a ref, failing if it is not present.
func findInfo(t testing.TB, h *Heap, ref Ref) BlockInfo {
	t.Helper()
	for _, b := range h.Describe() {
		if b.Ref == ref {
			return b
		}
	}
	t.Fatalf("ref %#x not found in heap layout", ref)
	return BlockInfo{}
}
