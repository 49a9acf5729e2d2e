package codec

import "io"

// Reader reads code-points from a byte span. It implements io.RuneReader,
// with the lenient decoding rules of ReadCodepoint: it never returns an error
// other than io.EOF.
//
// A Reader does not copy its input; the span must not be modified while the
// Reader is in use.
type Reader struct {
	input []byte
	pos   int
}

// NewReader creates a Reader for b.
func NewReader(b []byte) *Reader {
	return &Reader{input: b}
}

// Reset re-initializes the Reader to read from b.
func (reader *Reader) Reset(b []byte) {
	reader.input = b
	reader.pos = 0
}

// ReadRune is part of interface io.RuneReader.
// size is the number of bytes consumed, which for malformed input may differ
// from the encoded size of r.
func (reader *Reader) ReadRune() (r rune, size int, err error) {
	if reader.pos >= len(reader.input) {
		return 0, 0, io.EOF
	}
	start := reader.pos
	r = ReadCodepoint(reader.input, &reader.pos)
	return r, reader.pos - start, nil
}

// Offset is the byte position of the next code-point to read.
func (reader *Reader) Offset() int {
	return reader.pos
}

// Len is the number of bytes not yet read.
func (reader *Reader) Len() int {
	return len(reader.input) - reader.pos
}
