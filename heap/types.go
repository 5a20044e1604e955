package heap

import "github.com/heapkit/heapkit/internal/arena"

// Ref is a payload reference: the int32 offset of the payload within the
// arena. The block header occupies the format.HeaderSize bytes before it.
type Ref = int32

// NilRef is the null reference. Free(NilRef) is a no-op and
// Realloc(NilRef, n) behaves as Alloc(n).
const NilRef = Ref(-1)

// Strategy selects how a free block is searched for.
type Strategy uint8

const (
	// FirstFit scans from the lowest address and returns the first free
	// block that fits. Default.
	FirstFit Strategy = iota

	// NextFit scans like FirstFit but resumes from the cursor left by the
	// previous successful search, wrapping around once.
	NextFit

	// BestFit scans the whole chain and returns the smallest free block
	// that fits, preferring the lowest address on ties.
	BestFit
)

// String returns the strategy name used in logs and the CLI.
func (s Strategy) String() string {
	switch s {
	case NextFit:
		return "next-fit"
	case BestFit:
		return "best-fit"
	default:
		return "first-fit"
	}
}

// BlockInfo describes one block in a Describe() snapshot.
type BlockInfo struct {
	Ref  Ref   `json:"ref"`  // payload offset within the arena
	Size int32 `json:"size"` // payload size in bytes, word-aligned
	Free bool  `json:"free"`
}

// Config carries the tunables accepted by New.
type Config struct {
	// Limit caps arena growth in bytes. Zero means arena.DefaultLimit.
	Limit int64

	// Strategy is the initial search strategy. Zero value is FirstFit.
	Strategy Strategy

	// DisableChecks skips check-word validation on Free and Realloc.
	// Leave false outside of benchmarks.
	DisableChecks bool
}

// DefaultConfig is used when New receives a nil config.
var DefaultConfig = Config{Limit: arena.DefaultLimit}
