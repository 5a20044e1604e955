// Package heap implements a didactic dynamic-memory allocator over a single
// linear, growable memory region.
//
// # Overview
//
// A Heap hands out payloads carved from one contiguous arena, the way a
// classic sbrk-based malloc does. Every payload is preceded by an in-band
// header carrying the block size, a free/used flag, explicit prev/next links
// to the neighboring blocks, and a check word used to detect caller misuse.
// Freed blocks are recycled by a configurable search strategy; oversized
// matches are split, and adjacent free blocks are coalesced so fragmentation
// stays bounded.
//
// # Operations
//
//   - Alloc(size): allocate a word-aligned payload
//   - Free(ref): return a payload for reuse, coalescing with free neighbors
//   - Calloc(count, size): allocate and zero-fill, with overflow checking
//   - Realloc(ref, size): grow a payload, preserving its contents
//   - SetStrategy(s): choose first-fit, next-fit, or best-fit searching
//   - Describe(): ordered snapshot of every block for introspection
//
// # Usage Example
//
//	h, err := heap.New(nil)
//	if err != nil {
//	    return err
//	}
//	defer h.Release()
//
//	ref, buf, err := h.Alloc(64)
//	if err != nil {
//	    return err
//	}
//	copy(buf, payload)
//
//	// Later, return the block for reuse
//	err = h.Free(ref)
//
// # References
//
// References (Ref) are int32 offsets of the payload within the arena. The
// header sits at ref-16. NilRef plays the role of the C NULL pointer: Free
// accepts it as a no-op and Realloc treats it as a plain Alloc.
//
// # Search Strategies
//
// FirstFit scans from the lowest address and takes the first fit; it is the
// default. NextFit resumes where the previous search left off, wrapping once,
// which spreads allocations across the heap. BestFit scans everything and
// takes the smallest fit, trading a full traversal for less wasted space.
// Changing the strategy affects only future searches.
//
// # Growth
//
// When no free block fits, the heap asks its arena for align(size)+16 more
// bytes and formats the new space as a single used block after the old top.
// The arena is capped (1 MiB by default); a denied growth surfaces as
// ErrNoSpace with no state change. Memory is never returned to the OS.
//
// # Thread Safety
//
// Heap instances are not thread-safe. Callers must synchronize access
// externally; every operation runs to completion before the next begins.
//
// # Related Packages
//
//   - github.com/heapkit/heapkit/internal/arena: the growable backing region
//   - github.com/heapkit/heapkit/internal/format: header layout and encoding
package heap
