package format

// Layout constants for the in-band block header.
//
// A block is a header followed immediately by its payload. Blocks are laid
// out back to back in the arena with no gaps, so the whole region is covered
// by the chain of headers.

const (
	// WordSize is the allocation granularity. Payload sizes and payload
	// offsets are always multiples of WordSize.
	WordSize = 8

	// WordAlignmentMask is used by Align/AlignI32.
	WordAlignmentMask = WordSize - 1

	// HeaderSize is the number of bytes occupied by a block header.
	// Must be a multiple of WordSize so payloads stay word-aligned.
	HeaderSize = 16

	// MinBlockSize is the smallest payload a block may carry. A split is
	// only performed when the remainder can host a header plus this much.
	MinBlockSize = WordSize

	// InvalidOffset marks an absent prev/next link (first/last block).
	InvalidOffset = int32(-1)

	// CheckMagic is stored in every header's check word. Free and Realloc
	// validate it before touching the chain.
	CheckMagic = uint32(0xB10CA110)
)

// Header field offsets, relative to the block header start.
const (
	// BlockSizeOffset holds the payload size as an int32. The sign bit is
	// the state flag: negative means Used, positive means Free. A size of
	// zero never occurs in a well-formed chain.
	BlockSizeOffset = 0

	// BlockPrevOffset holds the arena offset of the previous block's
	// header, or InvalidOffset for the first block.
	BlockPrevOffset = 4

	// BlockNextOffset holds the arena offset of the next block's header,
	// or InvalidOffset for the top block.
	BlockNextOffset = 8

	// BlockCheckOffset holds CheckMagic.
	BlockCheckOffset = 12
)
