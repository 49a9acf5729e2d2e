package uax11

import (
	"io"
	"unicode"

	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
	"golang.org/x/text/width"
)

// Category is a value of the East_Asian_Width property.
type Category int8

// Values of East_Asian_Width.
const (
	N  Category = iota // Neutral (Not East Asian)
	A                  // East Asian Ambiguous
	W                  // East Asian Wide
	Na                 // East Asian Narrow
	H                  // East Asian Halfwidth
	F                  // East Asian Fullwidth
)

func (c Category) String() string {
	switch c {
	case N:
		return "N"
	case A:
		return "A"
	case W:
		return "W"
	case Na:
		return "Na"
	case H:
		return "H"
	case F:
		return "F"
	}
	return "?"
}

// WidthCategory returns the East_Asian_Width of r. Unlisted code-points in
// the CJK ideograph blocks and planes 2 and 3 are W, everything else not
// listed is N.
func WidthCategory(r rune) Category {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianAmbiguous:
		return A
	case width.EastAsianWide:
		return W
	case width.EastAsianNarrow:
		return Na
	case width.EastAsianHalfwidth:
		return H
	case width.EastAsianFullwidth:
		return F
	}
	if unicode.Is(cjkDefaultWide, r) {
		return W
	}
	return N
}

// Context carries what is known about the rendering environment: the
// script and locale of the text and whether East Asian conventions are in
// force. A Context decides the cell width of ambiguous characters.
type Context struct {
	ForceEastAsian bool            // render ambiguous characters wide
	Script         language.Script // ISO 15924 script identifier
	Locale         string          // IETF language tag the context was made for
	resolve        resolver
}

// EastAsianContext renders ambiguous characters wide.
var EastAsianContext = &Context{
	ForceEastAsian: true,
	Script:         language.MustParseScript("Hant"),
	Locale:         "zh-Hant",
	resolve:        resolveToWide,
}

// LatinContext renders ambiguous characters narrow. It is the default.
var LatinContext = &Context{
	Script:  language.MustParseScript("Latn"),
	Locale:  "en-US",
	resolve: resolveToNarrow,
}

// resolver decides the cell width of an ambiguous character.
type resolver func(Category) int

func resolveToNarrow(Category) int { return 1 }

func resolveToWide(Category) int { return 2 }

// Scripts of East and South East Asia, whose fonts render ambiguous
// characters wide.
var eastAsianScripts = map[string]bool{
	"Bopo": true, "Hanb": true, "Hani": true, "Hans": true, "Hant": true,
	"Hang": true, "Hira": true, "Kana": true, "Jpan": true, "Kore": true,
	"Lana": true, "Kitl": true, "Kits": true, "Nkdb": true, "Nkgb": true,
	"Plrd": true, "Batk": true, "Beng": true, "Bugi": true, "Mymr": true,
	"Cham": true, "Java": true, "Khmr": true, "Laoo": true, "Lisu": true,
	"Mtei": true, "Thai": true, "Yiii": true, "Bali": true, "Khar": true,
	"Rjng": true, "Roro": true, "Tglg": true, "Wole": true, "Buhd": true,
	"Tagb": true,
}

// Languages which default to wide ambiguous characters even when written
// in a script not listed above.
var eastAsianLanguages = language.NewMatcher([]language.Tag{
	language.Chinese, // fallback of the matcher
	language.Japanese,
	language.Korean,
	language.Vietnamese,
	language.Thai,
	language.Mongolian,
	language.Burmese,
	language.Khmer,
})

func resolverFor(script language.Script, lang language.Tag) resolver {
	if eastAsianScripts[script.String()] {
		return resolveToWide
	}
	if _, _, conf := eastAsianLanguages.Match(lang); conf != language.No {
		return resolveToWide
	}
	return resolveToNarrow
}

// ContextFromEnvironment creates a context from the locale of the user's
// environment, falling back to "en-US".
func ContextFromEnvironment() *Context {
	locale, err := jj.DetectIETF()
	if err != nil {
		T().Errorf("cannot detect user locale: %v", err)
		locale = "en-US"
	}
	T().Infof("width context for user locale %s", locale)
	return ContextForLocale(locale)
}

// ContextForLocale creates a context for an IETF language tag such as "ja-JP".
func ContextForLocale(locale string) *Context {
	lang := language.Make(locale)
	script, _ := lang.Script()
	return &Context{
		Script:  script,
		Locale:  locale,
		resolve: resolverFor(script, lang),
	}
}

// RuneWidth returns the number of terminal cells a single code-point occupies:
// 0, 1 (narrow character) or 2 (wide character).
//
// Newline and other control characters report 1, as editors render them as
// a single cell. Combining marks and zero-width format characters report 0.
// Ambiguous characters are resolved by ctx; if ctx is nil, LatinContext
// is assumed.
//
func RuneWidth(r rune, ctx *Context) int {
	if r < 0x20 || (r >= 0x7F && r < 0xA0) || r > unicode.MaxRune {
		return 1
	}
	if r < 0x7F { // printable ASCII
		return 1
	}
	if r == 0x00AD { // soft hyphen is rendered
		return 1
	}
	if unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf) || unicode.Is(hangulJamoMedial, r) {
		return 0
	}
	switch cat := WidthCategory(r); cat {
	case W, F:
		return 2
	case A:
		if ctx == nil {
			ctx = LatinContext
		}
		if ctx.ForceEastAsian {
			return 2
		}
		if ctx.resolve == nil {
			return 1
		}
		return ctx.resolve(cat)
	}
	return 1
}

// StringWidth returns the accumulated width of all code-points read from rr,
// stopping at the first error (usually io.EOF).
func StringWidth(rr io.RuneReader, ctx *Context) int {
	w := 0
	for {
		r, _, err := rr.ReadRune()
		if err != nil {
			if err != io.EOF {
				T().Errorf("UAX#11 string width: %v", err)
			}
			return w
		}
		w += RuneWidth(r, ctx)
	}
}

// ---------------------------------------------------------------------------

// Default W ranges of EastAsianWidth.txt: CJK Extension A, CJK Unified and
// Compatibility Ideographs, planes 2 and 3.
var cjkDefaultWide = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x3400, 0x4dbf, 1},
		{0x4e00, 0x9fff, 1},
		{0xf900, 0xfaff, 1},
	},
	R32: []unicode.Range32{
		{0x20000, 0x2fffd, 1},
		{0x30000, 0x3fffd, 1},
	},
}

// Hangul Jamo medial vowels and final consonants combine with a preceding
// initial consonant into a single wide cell.
var hangulJamoMedial = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x1160, 0x11ff, 1},
		{0xd7b0, 0xd7ff, 1},
	},
}
