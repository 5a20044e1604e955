package format

// Alignment utilities for the heap block layout.
// Every block payload size is aligned to the word size so that payload
// addresses stay word-aligned given the fixed header size.

// Align returns n aligned up to the next word (8-byte) boundary.
// Align is idempotent and Align(0) == 0.
//
// Example:
//
//	Align(1)  = 8
//	Align(8)  = 8
//	Align(9)  = 16
//	Align(16) = 16
func Align(n int) int {
	return (n + WordAlignmentMask) & ^WordAlignmentMask
}

// AlignI32 returns n aligned up to the next word (8-byte) boundary.
// int32 version for use in block arithmetic to avoid G115 warnings.
func AlignI32(n int32) int32 {
	return (n + WordAlignmentMask) & ^WordAlignmentMask
}
