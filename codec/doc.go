/*
Package codec decodes and encodes UTF-8 on the level of byte spans.

Reading Code-Points

ReadCodepoint decodes the code-point starting at an offset into a span and
advances the offset past it. Clients iterate a span like this:

	offset := 0
	for offset < len(text) {
	    cp := codec.ReadCodepoint(text, &offset)
	    …
	}

The offset never moves backwards, and every call with offset < len(text)
moves it forward by at least one byte.

Malformed Input

Decoding never fails. Editor buffers frequently contain invalid UTF-8 for a
moment, e.g. while a multi-byte character is being typed, and the cursor must
still be able to pass over it. Therefore:

(1) A stray continuation byte or an invalid leading byte (0xF8…0xFF) is
read as a one-byte code-point with the raw byte value.

(2) A multi-byte sequence truncated by the end of the span consumes the
bytes available and yields the partial value decoded so far.

Continuation bytes are not verified; a leading byte determines how many
bytes are consumed. CharCount follows the same rule, so it always agrees with
the number of ReadCodepoint steps over a span.

Encoding

EncodeCodepoint requires a valid Unicode scalar value and a buffer of at least
UTFMax bytes. Both are contract violations and will panic. Clients which
cannot validate beforehand use AppendCodepoint, which reports errors instead.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.
*/
package codec

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/tome-editor/textcore"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return textcore.CT()
}
