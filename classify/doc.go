/*
Package classify maps single code-points to the character classes of editor
motions.

Content

Word motions in an editor need to know, for every code-point, whether it
ends a line, is blank, belongs to a word or is punctuation. This is a
simplified, editor-specific model and not the word breaking of UAX#29: a
word is a run of ASCII letters, digits and underscores (extended to Unicode
letters and digits), and everything visible which is not part of a word is
punctuation.

Categories

Categorize is total: every rune, including invalid ones, is put into exactly
one Category. The rules are tried in a fixed order and the first one matching
wins:

   1. IsEOL              => EndOfLine
   2. IsHorizontalBlank  => Blank
   3. IsWord             => Word
   4. (anything else)    => Punctuation

CategorizeWord is used for WORD motions, where only blanks delimit WORDs.
It follows the same chain, but Punctuation is folded into Word.

Only a line feed ends a line. The Unicode line and paragraph separators are
horizontal blanks. Carriage return and vertical tab are neither: IsBlank is
true for them, but they categorize as Punctuation (Word in WORD mode), so the
CR of a CR-LF pair forms a run of its own in front of the line end. For every
other code-point, Categorize(r) == Punctuation exactly when IsPunctuation(r)
holds.

ASCII and Beyond

All predicates are exact for ASCII. For code-points outside ASCII, word
membership and case follow the Unicode general categories of package unicode,
and CodepointWidth follows UAX#11 (see package uax11) in a narrow (Latin)
context.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.
*/
package classify
