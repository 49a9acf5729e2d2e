package runs

import (
	"bufio"
	"bytes"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"testing/iotest"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tome-editor/textcore/classify"
)

type token struct {
	text string
	cat  classify.Category
}

func collect(t *testing.T, input string, mode classify.Mode) []token {
	scanner := NewScanner(mode)
	scanner.Init([]byte(input))
	var tokens []token
	for scanner.Next() {
		t.Logf("run %s = %q", scanner.Run(), scanner.Text())
		tokens = append(tokens, token{scanner.Text(), scanner.Category()})
	}
	require.NoError(t, scanner.Err())
	return tokens
}

func TestScannerWordMode(t *testing.T) {
	defer redirectTracing(t)()
	//
	tokens := collect(t, "Hello, World!\n", classify.WordMode)
	assert.Equal(t, []token{
		{"Hello", classify.Word},
		{",", classify.Punctuation},
		{" ", classify.Blank},
		{"World", classify.Word},
		{"!", classify.Punctuation},
		{"\n", classify.EndOfLine},
	}, tokens)
}

func TestScannerBigWordMode(t *testing.T) {
	defer redirectTracing(t)()
	//
	tokens := collect(t, "Hello, World!\n", classify.BigWordMode)
	assert.Equal(t, []token{
		{"Hello,", classify.Word},
		{" ", classify.Blank},
		{"World!", classify.Word},
		{"\n", classify.EndOfLine},
	}, tokens)
	tokens = collect(t, "lime-tree", classify.BigWordMode)
	if len(tokens) != 1 {
		t.Errorf("expected 1 WORD for 'lime-tree', have %d", len(tokens))
	}
	tokens = collect(t, "lime-tree", classify.WordMode)
	if len(tokens) != 3 {
		t.Errorf("expected 3 words for 'lime-tree', have %d", len(tokens))
	}
}

func TestEveryLineFeedIsARun(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	tokens := collect(t, "a\r\n\n\nb", classify.WordMode)
	assert.Equal(t, []token{
		{"a", classify.Word},
		{"\r", classify.Punctuation},
		{"\n", classify.EndOfLine},
		{"\n", classify.EndOfLine},
		{"\n", classify.EndOfLine},
		{"b", classify.Word},
	}, tokens)
	tokens = collect(t, "a\r\nb", classify.BigWordMode)
	assert.Equal(t, []token{
		{"a\r", classify.Word},
		{"\n", classify.EndOfLine},
		{"b", classify.Word},
	}, tokens, "CR sticks to the WORD in front of it")
}

func TestScannerOffsets(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	scanner := NewScanner(classify.WordMode)
	scanner.Init([]byte("héllo wörld"))
	var offsets []int
	for scanner.Next() {
		offsets = append(offsets, scanner.Offset())
	}
	assert.Equal(t, []int{0, 6, 7}, offsets)
	assert.Empty(t, scanner.Text(), "no run after the end of input")
}

func TestScannerMalformedInput(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	tokens := collect(t, "a\x80b", classify.WordMode)
	assert.Equal(t, []token{
		{"a", classify.Word},
		{"\x80", classify.Punctuation},
		{"b", classify.Word},
	}, tokens)
	tokens = collect(t, "ab\xE2\x82", classify.WordMode) // truncated at end
	require.Len(t, tokens, 2)
	assert.Equal(t, "\xE2\x82", tokens[1].text)
}

func TestScannerNotInitialized(t *testing.T) {
	scanner := NewScanner(classify.WordMode)
	assert.False(t, scanner.Next())
	assert.Equal(t, ErrNotInitialized, scanner.Err())
	assert.Empty(t, scanner.Bytes())
	scanner.Init(nil)
	assert.False(t, scanner.Next())
	assert.NoError(t, scanner.Err())
}

func TestScannerReInit(t *testing.T) {
	scanner := NewScanner(classify.WordMode)
	scanner.Init([]byte("one two"))
	require.True(t, scanner.Next())
	scanner.Init([]byte("three"))
	require.True(t, scanner.Next())
	assert.Equal(t, "three", scanner.Text())
	assert.Equal(t, 0, scanner.Offset())
	assert.False(t, scanner.Next())
}

func TestRunsCoverSpan(t *testing.T) {
	rnd := rand.New(rand.NewSource(99))
	alphabet := []string{"a", "Z", "_", "7", ".", "-", " ", "\t", "\r", "\n", "é", "中", "😀", "　", "\x80", "\xF0"}
	for i := 0; i < 200; i++ {
		var sb strings.Builder
		for j := rnd.Intn(40); j > 0; j-- {
			sb.WriteString(alphabet[rnd.Intn(len(alphabet))])
		}
		input := []byte(sb.String())
		for _, mode := range []classify.Mode{classify.WordMode, classify.BigWordMode} {
			runs := Split(input, mode)
			pos := 0
			for k, r := range runs {
				require.Equal(t, pos, r.Offset, "gap before run %d of %q", k, input)
				require.True(t, r.Length > 0, "empty run in %q", input)
				if k > 0 && r.Category != classify.EndOfLine {
					require.NotEqual(t, runs[k-1].Category, r.Category, "adjacent runs of equal category in %q", input)
				}
				pos = r.End()
			}
			require.Equal(t, len(input), pos, "runs do not cover %q", input)
		}
	}
}

func TestSplitFunc(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	input := "for (i=0; i<5; i++)   count += i;\r\n\n// héllo wörld 中文 😀\n"
	for _, mode := range []classify.Mode{classify.WordMode, classify.BigWordMode} {
		var expected []string
		for _, r := range Split([]byte(input), mode) {
			expected = append(expected, string(r.text([]byte(input))))
		}
		scanner := bufio.NewScanner(iotest.OneByteReader(strings.NewReader(input)))
		scanner.Split(SplitFunc(mode))
		var tokens []string
		for scanner.Scan() {
			tokens = append(tokens, scanner.Text())
		}
		require.NoError(t, scanner.Err())
		assert.Equal(t, expected, tokens, "mode %d", mode)
	}
}

func TestCompletePrefix(t *testing.T) {
	assert.Equal(t, 0, completePrefix(nil))
	assert.Equal(t, 3, completePrefix([]byte("abc")))
	assert.Equal(t, 1, completePrefix([]byte("a\xE4\xB8")))
	assert.Equal(t, 4, completePrefix([]byte("a\xE4\xB8\xAD")))
	assert.Equal(t, 1, completePrefix([]byte("a\xF0")))
}

func TestScannerPool(t *testing.T) {
	defer redirectTracing(t)()
	//
	s := borrowScanner(classify.BigWordMode)
	s.Init([]byte("a b"))
	require.True(t, s.Next())
	assert.NoError(t, s.releaseIntoPool())
	assert.False(t, s.Next(), "released scanner must be cleared")
	assert.Equal(t, ErrNotInitialized, s.Err())
	foreign := NewScanner(classify.WordMode)
	assert.Error(t, foreign.releaseIntoPool(), "pool must reject a scanner it did not create")
}

func TestSplitConcurrently(t *testing.T) {
	input := bytes.Repeat([]byte("Hello, wörld!\n"), 50)
	expected := Split(input, classify.WordMode)
	var wg sync.WaitGroup
	results := make([][]Run, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Split(input, classify.WordMode)
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		assert.Equal(t, expected, r)
	}
}

// redirectTracing routes core tracing to t and returns a teardown which
// restores the previous core tracer.
func redirectTracing(t *testing.T) func() {
	saved := gtrace.CoreTracer
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	return func() {
		teardown()
		gtrace.CoreTracer = saved
	}
}

// text is a test helper to extract the bytes of a run.
func (r Run) text(b []byte) []byte {
	return b[r.Offset:r.End()]
}
