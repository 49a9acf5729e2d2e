package codec

import (
	"errors"
	"fmt"
)

// Limits and special values of the encoding.
const (
	UTFMax          = 4        // maximum number of bytes of a UTF-8 encoded code-point
	MaxCodepoint    = 0x10FFFF // maximum valid Unicode scalar value
	ReplacementChar = 0xFFFD   // returned when reading beyond the end of a span
)

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// ErrInvalidCodepoint flags a value outside the Unicode scalar range or a surrogate.
// ErrShortBuffer flags an output buffer with room for less than UTFMax bytes.
var (
	ErrInvalidCodepoint = errors.New("invalid Unicode scalar value")
	ErrShortBuffer      = errors.New("buffer too small for UTF-8 encoding")
)

// IsCharacterStart is true for every byte which is not a UTF-8 continuation
// byte (10xxxxxx), i.e. for ASCII bytes and leading bytes of multi-byte
// sequences.
func IsCharacterStart(b byte) bool {
	return b&0xC0 != 0x80
}

// CodepointSizeFromByte returns the length of a UTF-8 sequence as announced
// by its leading byte. Continuation bytes and invalid leading bytes report 1.
func CodepointSizeFromByte(b byte) int {
	switch {
	case b&0x80 == 0: // 0xxxxxxx
		return 1
	case b&0xE0 == 0xC0: // 110xxxxx
		return 2
	case b&0xF0 == 0xE0: // 1110xxxx
		return 3
	case b&0xF8 == 0xF0: // 11110xxx
		return 4
	}
	return 1
}

// CodepointSizeFromCodepoint returns the minimal number of bytes needed to
// encode cp in UTF-8. Values above 0xFFFF report 4, without checking validity.
func CodepointSizeFromCodepoint(cp rune) int {
	switch u := uint32(cp); {
	case u <= 0x7F:
		return 1
	case u <= 0x7FF:
		return 2
	case u <= 0xFFFF:
		return 3
	}
	return 4
}

// ValidCodepoint is true if cp is a Unicode scalar value, i.e. in 0…0x10FFFF
// and not a surrogate.
func ValidCodepoint(cp rune) bool {
	if cp < 0 || cp > MaxCodepoint {
		return false
	}
	return cp < surrogateMin || cp > surrogateMax
}

// ReadCodepoint decodes the code-point starting at b[*offset] and advances
// *offset by the number of bytes consumed.
//
// The number of bytes is determined by the leading byte and clamped to the end
// of b. A sequence truncated by the end of b yields the partially decoded
// value. A byte which cannot start a sequence is returned as is, consuming one
// byte. If *offset is already at or beyond the end of b, ReplacementChar is
// returned and *offset stays unchanged.
//
// ReadCodepoint panics if *offset is negative.
func ReadCodepoint(b []byte, offset *int) rune {
	off := *offset
	if off < 0 {
		panic(fmt.Sprintf("codec.ReadCodepoint: negative offset %d", off))
	}
	if off >= len(b) {
		return ReplacementChar
	}
	lead := b[off]
	size := CodepointSizeFromByte(lead)
	if size == 1 {
		*offset = off + 1
		return rune(lead)
	}
	end := off + size
	if end > len(b) {
		tracer().Debugf("truncated UTF-8 sequence at offset %d: have %d of %d bytes",
			off, len(b)-off, size)
		end = len(b)
	}
	cp := rune(lead & (0x7F >> size))
	for _, c := range b[off+1 : end] {
		cp = cp<<6 | rune(c&0x3F)
	}
	*offset = end
	return cp
}

// EncodeCodepoint writes the UTF-8 encoding of cp into out and returns the
// number of bytes written. Nothing past this length is written.
//
// cp must be a valid Unicode scalar value and out must have room for UTFMax
// bytes. EncodeCodepoint will panic otherwise, as emitting malformed bytes
// would silently corrupt the byte offsets of any text built from them.
// The panic value is an error wrapping ErrInvalidCodepoint or ErrShortBuffer.
func EncodeCodepoint(cp rune, out []byte) int {
	if !ValidCodepoint(cp) {
		tracer().Errorf("codec: cannot encode %#x", cp)
		panic(fmt.Errorf("codec.EncodeCodepoint: %w: %#x", ErrInvalidCodepoint, cp))
	}
	if len(out) < UTFMax {
		tracer().Errorf("codec: output buffer has %d bytes, need %d", len(out), UTFMax)
		panic(fmt.Errorf("codec.EncodeCodepoint: %w: have %d bytes", ErrShortBuffer, len(out)))
	}
	return encode(cp, out)
}

// AppendCodepoint appends the UTF-8 encoding of cp to dst. Other than
// EncodeCodepoint it returns an error for invalid scalar values, leaving dst
// untouched.
func AppendCodepoint(dst []byte, cp rune) ([]byte, error) {
	if !ValidCodepoint(cp) {
		return dst, fmt.Errorf("cannot append %#x: %w", cp, ErrInvalidCodepoint)
	}
	var buf [UTFMax]byte
	n := encode(cp, buf[:])
	return append(dst, buf[:n]...), nil
}

// encode expects a valid code-point and a large enough buffer.
func encode(cp rune, out []byte) int {
	switch CodepointSizeFromCodepoint(cp) {
	case 1:
		out[0] = byte(cp)
		return 1
	case 2:
		out[0] = 0xC0 | byte(cp>>6)
		out[1] = 0x80 | byte(cp)&0x3F
		return 2
	case 3:
		out[0] = 0xE0 | byte(cp>>12)
		out[1] = 0x80 | byte(cp>>6)&0x3F
		out[2] = 0x80 | byte(cp)&0x3F
		return 3
	}
	out[0] = 0xF0 | byte(cp>>18)
	out[1] = 0x80 | byte(cp>>12)&0x3F
	out[2] = 0x80 | byte(cp>>6)&0x3F
	out[3] = 0x80 | byte(cp)&0x3F
	return 4
}

// CharCount returns the number of code-points in b, as ReadCodepoint would
// step through them. This is an O(n) scan.
func CharCount(b []byte) int {
	n := 0
	for i := 0; i < len(b); n++ {
		i += CodepointSizeFromByte(b[i])
	}
	return n
}
