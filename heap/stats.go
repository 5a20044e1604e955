package heap

// Stats holds the heap's operation counters, for instrumentation and tests.
type Stats struct {
	AllocCalls   int // Total Alloc() calls, including via Calloc/Realloc
	CallocCalls  int // Total Calloc() calls
	ReallocCalls int // Total Realloc() calls
	FreeCalls    int // Total Free() calls, including Free(NilRef)

	GrowCalls int   // Number of arena growth requests that succeeded
	GrowBytes int64 // Total bytes added to the region, headers included

	BytesAllocated int64 // Total payload bytes handed out
	BytesFreed     int64 // Total payload bytes returned

	SplitCount       int // Oversized matches cut down to size
	CoalesceForward  int // Merges of a freed block with its successor
	CoalesceBackward int // Merges of a freed block into its predecessor

	CursorWraps int // Next-fit scans that wrapped past the top
}
