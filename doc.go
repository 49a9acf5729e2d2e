/*
Package textcore holds the Unicode text primitives a text editor needs below
the level of its buffer: decoding and encoding UTF-8, classifying single
code-points for editor motions, and hashing byte spans into stable keys.

Description

An editor walks its text byte by byte far more often than it looks at whole
strings. Moving the cursor a word forward, counting the columns of a line or
finding a fingerprint for a fragment all start from a raw byte span and an
offset into it. The sub-packages of textcore operate on exactly this level:
they take byte slices and code-points, never strings or ropes, and they keep
no state between calls.

Contents

Sub-package codec decodes and encodes UTF-8. Decoding is lenient: truncated
sequences at the end of a span and stray continuation bytes still advance the
offset, as text which is being edited is frequently invalid for a moment.

Sub-package classify maps a single code-point to the classes an editor motion
needs. The central function is Categorize, which puts every code-point into
exactly one of four categories:

   EndOfLine  >  Blank  >  Word  >  Punctuation

The precedence is fixed; the first class matching wins, Punctuation is the
default bucket. CategorizeWord is the variant for whitespace-delimited WORDs,
folding Punctuation into Word.

Sub-package uax11 estimates the display width of code-points in a fixed pitch
font, following UAX#11 “East Asian Width”.

Sub-package hashing provides murmur3, FNV-1a and a hash combiner. Their
output is bit-exact with the hashes of the C++ editor host, as hash values
may be compared across the language boundary.

Sub-package runs groups code-points of a span into runs of equal category.

C ABI

Command libtextcore builds a C shared library exporting all of the above
under the symbol names the editor host links against (murmur3, utf8_read_codepoint,
unicode_categorize, …).

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.
*/
package textcore

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
