package format

// Block header field accessors.
//
// The size field doubles as the state flag, following the usual in-band
// header trick: the stored value is negative while the block is Used and
// positive while it is Free. Callers always see the absolute payload size
// plus a boolean.

// ReadBlockSize returns the payload size and used flag of the header at off.
func ReadBlockSize(b []byte, off int32) (size int32, used bool) {
	raw := ReadI32(b, int(off)+BlockSizeOffset)
	if raw < 0 {
		return -raw, true
	}
	return raw, false
}

// PutBlockSize encodes the payload size and used flag into the header at off.
func PutBlockSize(b []byte, off, size int32, used bool) {
	if used {
		size = -size
	}
	PutI32(b, int(off)+BlockSizeOffset, size)
}

// ReadBlockPrev returns the previous-block link of the header at off.
func ReadBlockPrev(b []byte, off int32) int32 {
	return ReadI32(b, int(off)+BlockPrevOffset)
}

// PutBlockPrev sets the previous-block link of the header at off.
func PutBlockPrev(b []byte, off, prev int32) {
	PutI32(b, int(off)+BlockPrevOffset, prev)
}

// ReadBlockNext returns the next-block link of the header at off.
func ReadBlockNext(b []byte, off int32) int32 {
	return ReadI32(b, int(off)+BlockNextOffset)
}

// PutBlockNext sets the next-block link of the header at off.
func PutBlockNext(b []byte, off, next int32) {
	PutI32(b, int(off)+BlockNextOffset, next)
}

// ReadBlockCheck returns the check word of the header at off.
func ReadBlockCheck(b []byte, off int32) uint32 {
	return ReadU32(b, int(off)+BlockCheckOffset)
}

// PutBlockCheck stamps the check word of the header at off.
func PutBlockCheck(b []byte, off int32) {
	PutU32(b, int(off)+BlockCheckOffset, CheckMagic)
}

// WriteHeader formats a complete header at off in one call.
func WriteHeader(b []byte, off, size int32, used bool, prev, next int32) {
	PutBlockSize(b, off, size, used)
	PutBlockPrev(b, off, prev)
	PutBlockNext(b, off, next)
	PutBlockCheck(b, off)
}
