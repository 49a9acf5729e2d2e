package runs

import (
	"errors"
	"fmt"

	"github.com/tome-editor/textcore/classify"
	"github.com/tome-editor/textcore/codec"
)

// ErrNotInitialized is returned if a scanner's Next-function is called without
// first setting an input span.
var ErrNotInitialized = errors.New("runs scanner not initialized; must call Init(...) first")

// Run is a maximal sequence of code-points of equal category, located by its
// byte offset and byte length within the scanned span.
type Run struct {
	Offset   int
	Length   int
	Category classify.Category
}

// End returns the byte offset just behind r.
func (r Run) End() int {
	return r.Offset + r.Length
}

func (r Run) String() string {
	return fmt.Sprintf("[%d…%d %s]", r.Offset, r.End(), r.Category)
}

// A Scanner steps through the runs of a byte span.
// A Scanner is owned by a single goroutine.
type Scanner struct {
	mode        classify.Mode
	input       []byte
	pos         int // start of the next run
	run         Run // most recent run
	err         error
	initialized bool
}

// NewScanner creates a scanner categorizing code-points in word or WORD mode.
//
// Before using newly created scanners, clients will have to call Init(...)
// on them.
func NewScanner(mode classify.Mode) *Scanner {
	return &Scanner{mode: mode}
}

// Init initializes a Scanner with a span to read from. A nil span is
// treated as empty. Init may be called on a scanner already in use.
func (s *Scanner) Init(b []byte) {
	s.input = b
	s.pos = 0
	s.run = Run{}
	s.err = nil
	s.initialized = true
}

// Next advances the scanner to the next run, which will then be available
// through the Bytes(), Text() and Category() methods. It returns false at the
// end of the span or if the scanner has not been initialized.
func (s *Scanner) Next() bool {
	if !s.initialized {
		s.err = ErrNotInitialized
		return false
	}
	if s.pos >= len(s.input) {
		s.run = Run{Offset: s.pos}
		return false
	}
	end, cat := scanRun(s.input, s.pos, s.mode)
	s.run = Run{Offset: s.pos, Length: end - s.pos, Category: cat}
	s.pos = end
	tracer().Debugf("Next() = %s", s.run)
	return true
}

// Err returns the error that stopped the scanner, if any.
func (s *Scanner) Err() error {
	return s.err
}

// Bytes returns the most recent run generated by a call to Next().
// The slice aliases the input span, no allocation is performed.
func (s *Scanner) Bytes() []byte {
	return s.input[s.run.Offset:s.run.End()]
}

// Text returns the most recent run generated by a call to Next()
// as a newly allocated string holding its bytes.
func (s *Scanner) Text() string {
	return string(s.Bytes())
}

// Category returns the category of the most recent run.
func (s *Scanner) Category() classify.Category {
	return s.run.Category
}

// Offset returns the byte offset of the most recent run within the span.
func (s *Scanner) Offset() int {
	return s.run.Offset
}

// Run returns the most recent run.
func (s *Scanner) Run() Run {
	return s.run
}

// scanRun reads code-points starting at start as long as they share the
// category of the first one. It returns the end offset of the run and its
// category. A line feed always ends its run. start must be inside b.
func scanRun(b []byte, start int, mode classify.Mode) (int, classify.Category) {
	pos := start
	cat := classify.CategorizeIn(mode, codec.ReadCodepoint(b, &pos))
	if cat == classify.EndOfLine {
		return pos, cat
	}
	for pos < len(b) {
		next := pos
		if classify.CategorizeIn(mode, codec.ReadCodepoint(b, &next)) != cat {
			break
		}
		pos = next
	}
	return pos, cat
}
