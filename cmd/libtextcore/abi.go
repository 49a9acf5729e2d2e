package main

import (
	"unsafe"

	"github.com/tome-editor/textcore/codec"
)

// bytesAt views n bytes at p as a slice. A nil pointer is an empty span.
func bytesAt(p unsafe.Pointer, n uint) []byte {
	if p == nil || n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}

// readCodepointAt decodes the code-point at *offset and advances *offset.
// Offsets at or beyond the end of b, as well as a nil offset, yield the
// replacement character.
func readCodepointAt(b []byte, offset *uint) uint32 {
	if offset == nil || *offset >= uint(len(b)) {
		return codec.ReplacementChar
	}
	off := int(*offset)
	cp := codec.ReadCodepoint(b, &off)
	*offset = uint(off)
	return uint32(cp)
}

// encodeAt writes the encoding of cp to the 4-byte buffer at out.
// A nil buffer receives nothing.
func encodeAt(cp uint32, out unsafe.Pointer) uint8 {
	if out == nil {
		return 0
	}
	buf := unsafe.Slice((*byte)(out), codec.UTFMax)
	return uint8(codec.EncodeCodepoint(rune(cp), buf))
}
