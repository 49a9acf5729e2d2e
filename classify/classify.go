package classify

import (
	"unicode"

	"github.com/tome-editor/textcore/uax11"
	"golang.org/x/text/unicode/rangetable"
)

// Whitespace as defined by ECMA-262, minus vertical tab.
// https://262.ecma-international.org/11.0/#sec-white-space
var horizontalBlanks = rangetable.New(
	'\t',   // tab
	'\f',   // form feed
	' ',    // space
	0x00A0, // no-break space
	0x1680, // ogham space mark
	0x2000, 0x2001, 0x2002, 0x2003, 0x2004, 0x2005, // en quad … four-per-em space
	0x2006, 0x2007, 0x2008, 0x2009, 0x200A, // six-per-em space … hair space
	0x2028, // line separator
	0x2029, // paragraph separator
	0x202F, // narrow no-break space
	0x205F, // medium mathematical space
	0x3000, // ideographic space
	0xFEFF, // zero width no-break space
)

// Line terminators as defined by ECMA-262, plus vertical tab.
// https://262.ecma-international.org/11.0/#sec-line-terminators
var lineTerminators = rangetable.New(
	'\n',   // line feed
	'\v',   // vertical tab
	'\r',   // carriage return
	0x2028, // line separator
	0x2029, // paragraph separator
)

// IsEOL is true for a line feed only. A carriage return does not end a line.
func IsEOL(r rune) bool {
	return r == '\n'
}

// IsHorizontalBlank is true for tab, space, no-break space and the other
// Unicode spaces which do not terminate a line.
func IsHorizontalBlank(r rune) bool {
	if r < 0x80 {
		return r == ' ' || r == '\t' || r == '\f'
	}
	return unicode.Is(horizontalBlanks, r)
}

// IsBlank is true for horizontal blanks and line terminators, including
// carriage return.
func IsBlank(r rune) bool {
	return unicode.Is(lineTerminators, r) || IsHorizontalBlank(r)
}

// IsBasicAlpha is true for ASCII letters a-z and A-Z.
func IsBasicAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// IsBasicDigit is true for ASCII digits 0-9.
func IsBasicDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsAlnum is true for ASCII letters and digits, and for Unicode letters and
// decimal digits outside of ASCII.
func IsAlnum(r rune) bool {
	if r < 0x80 {
		return IsBasicAlpha(r) || IsBasicDigit(r)
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsWord is true for code-points which are part of a word: letters, digits
// and underscore. Hyphen and period are not word characters.
func IsWord(r rune) bool {
	return r == '_' || IsAlnum(r)
}

// IsWordBig is true for code-points which are part of a WORD, i.e. for
// everything which is not blank.
func IsWordBig(r rune) bool {
	return !IsBlank(r)
}

// IsPunctuation is true for code-points which are neither part of a word nor
// blank.
func IsPunctuation(r rune) bool {
	return !IsWord(r) && !IsBlank(r)
}

// IsIdentifier is true for ASCII letters, digits, underscore and hyphen,
// i.e. the characters of identifiers and file names like "lime-tree_2".
func IsIdentifier(r rune) bool {
	return IsBasicAlpha(r) || IsBasicDigit(r) || r == '_' || r == '-'
}

// CodepointWidth returns the number of display columns of r in a narrow
// (Latin) context: 1 for ASCII, including newline and control characters,
// 2 for East Asian wide and fullwidth characters, 0 for combining marks and
// zero-width format characters.
func CodepointWidth(r rune) int {
	if r < 0x80 {
		return 1
	}
	return uax11.RuneWidth(r, uax11.LatinContext)
}
