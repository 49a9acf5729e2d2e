package uax11

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/tome-editor/textcore/codec"
)

func TestTables(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	chars := [...]rune{
		'A',    // LATIN CAPITAL LETTER A           => Na
		0x05BD, // HEBREW POINT METEG               => N
		0x2223, // DIVIDES                          => A
		0x3008, // LEFT ANGLE BRACKET               => W
		0xFF41, // FULLWIDTH LATIN SMALL LETTER A   => F
		0xFF61, // HALFWIDTH IDEOGRAPHIC FULL STOP  => H
	}
	cats := [...]Category{Na, N, A, W, F, H}
	for i, c := range chars {
		cat := WidthCategory(c)
		if cat != cats[i] {
			t.Errorf("expected width category of %#U to be %s, is %s", c, cats[i], cat)
		}
	}
}

func TestEnvLocale(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	ctx := ContextFromEnvironment()
	if ctx == nil {
		t.Fatalf("context from environment is nil, should not")
	}
	t.Logf("user environment has locale '%s'", ctx.Locale)
}

func TestRuneWidth(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	chars := [...]rune{
		'A',    // LATIN CAPITAL LETTER A           => Na
		0x05BD, // HEBREW POINT METEG               => N, combining
		0x2223, // DIVIDES                          => A
		0x3008, // LEFT ANGLE BRACKET               => W
		0xFF41, // FULLWIDTH LATIN SMALL LETTER A   => F
	}
	ctx := LatinContext
	ww := 0
	for i, r := range chars {
		w := RuneWidth(r, ctx)
		t.Logf("%d: %#U (%s) => %d", i, r, WidthCategory(r), w)
		ww += w
	}
	if ww != 6 {
		t.Errorf("expected accumulated width of 5 runes to be 6, is %d", ww)
	}
}

func TestControlAndZeroWidth(t *testing.T) {
	for _, r := range []rune{'\n', '\t', 0x00, 0x1B, 0x7F, 0x85, 0x00AD, -1, 0x110000} {
		assert.Equal(t, 1, RuneWidth(r, nil), "width of %#x", r)
	}
	for _, r := range []rune{0x0301, 0x200B, 0x200D, 0x1160} {
		assert.Equal(t, 0, RuneWidth(r, nil), "width of %#U", r)
	}
	assert.Equal(t, 2, RuneWidth(0x4E2D, nil), "CJK ideograph is wide")
	assert.Equal(t, 2, RuneWidth(0x3400, nil), "CJK extension A is wide")
}

func TestContext(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tests := []struct {
		locale string
		width  int
	}{
		{"zh-HK", 2},
		{"ja-JP", 2},
		{"ko", 2},
		{"en-US", 1},
		{"de-AT", 1},
	}
	for _, tt := range tests {
		context := ContextForLocale(tt.locale)
		t.Logf("%s: script %v", tt.locale, context.Script)
		assert.Equal(t, tt.width, RuneWidth(0x2223, context), "ambiguous width for %s", tt.locale)
	}
	assert.Equal(t, 2, RuneWidth(0x2223, EastAsianContext))
	assert.Equal(t, 1, RuneWidth(0x2223, &Context{}), "empty context resolves to narrow")
}

func TestString(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	buf := make([]byte, codec.UTFMax)
	n := codec.EncodeCodepoint(0x1f600, buf)
	input := append([]byte("A (世). "), buf[:n]...)
	t.Logf("input string = '%s'", input)
	w := StringWidth(codec.NewReader(input), EastAsianContext)
	if w != 10 {
		t.Errorf("expected fixed width length of string to be 10, is %d", w)
	}
}
