package classify

// Category is the class of a code-point as seen by word motions.
// The numeric values are part of the C ABI and must not change.
type Category int8

// Categories of code-points for word and WORD motions.
const (
	Blank       Category = 0
	EndOfLine   Category = 1
	Word        Category = 2
	Punctuation Category = 3
)

func (c Category) String() string {
	switch c {
	case Blank:
		return "Blank"
	case EndOfLine:
		return "EndOfLine"
	case Word:
		return "Word"
	case Punctuation:
		return "Punctuation"
	}
	return "Category(?)"
}

// Mode selects between word and WORD categorization.
type Mode int8

const (
	WordMode    Mode = iota // punctuation separates words
	BigWordMode             // only blanks separate WORDs
)

// Categorize returns the category of r for word motions. Rules are tried in
// order EndOfLine, Blank, Word; everything else is Punctuation.
// Only horizontal blanks are Blank: a carriage return or vertical tab is
// Punctuation.
func Categorize(r rune) Category {
	if IsEOL(r) {
		return EndOfLine
	} else if IsHorizontalBlank(r) {
		return Blank
	} else if IsWord(r) {
		return Word
	}
	return Punctuation
}

// CategorizeWord returns the category of r for WORD motions. It differs from
// Categorize only in that Punctuation is folded into Word.
func CategorizeWord(r rune) Category {
	if IsEOL(r) {
		return EndOfLine
	} else if IsHorizontalBlank(r) {
		return Blank
	}
	return Word
}

// CategorizeIn dispatches to Categorize or CategorizeWord.
func CategorizeIn(mode Mode, r rune) Category {
	if mode == BigWordMode {
		return CategorizeWord(r)
	}
	return Categorize(r)
}
