package runs

import (
	"bufio"

	"github.com/tome-editor/textcore/classify"
	"github.com/tome-editor/textcore/codec"
)

// Split returns the runs of b in order. The runs cover b without gaps.
// Split is safe for concurrent use.
func Split(b []byte, mode classify.Mode) []Run {
	s := borrowScanner(mode)
	defer s.releaseIntoPool()
	s.Init(b)
	var runs []Run
	for s.Next() {
		runs = append(runs, s.Run())
	}
	return runs
}

// SplitFunc returns a split function for a bufio.Scanner which tokenizes its
// input into runs. A run reaching the end of the buffered data is not
// emitted until more data has been read, as it may continue.
func SplitFunc(mode classify.Mode) bufio.SplitFunc {
	return func(data []byte, atEOF bool) (int, []byte, error) {
		if !atEOF {
			data = data[:completePrefix(data)]
		}
		if len(data) == 0 {
			return 0, nil, nil
		}
		end, cat := scanRun(data, 0, mode)
		if end == len(data) && !atEOF && cat != classify.EndOfLine {
			return 0, nil, nil // request more data
		}
		return end, data[:end], nil
	}
}

// completePrefix returns the length of the longest prefix of data which does
// not end in a truncated multi-byte sequence.
func completePrefix(data []byte) int {
	for i := len(data) - 1; i >= 0 && i >= len(data)-codec.UTFMax; i-- {
		if codec.IsCharacterStart(data[i]) {
			if i+codec.CodepointSizeFromByte(data[i]) > len(data) {
				return i
			}
			return len(data)
		}
	}
	return len(data)
}
