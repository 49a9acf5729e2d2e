/*
Package runs groups the code-points of a UTF-8 span into runs of equal
category.

Word motions of the editor move between boundaries of runs: a run of word
characters, a run of punctuation, a run of blanks. Every line feed is a run
of its own, as motions treat line ends specially. Package runs exposes these
boundaries, it does not implement motions itself.

Typical Usage

Scanner provides an interface similar to bufio.Scanner:

  scanner := runs.NewScanner(classify.WordMode)
  scanner.Init(text)
  for scanner.Next() {
    // do something with scanner.Bytes() or scanner.Category()
  }

For one-shot use, Split returns all runs of a span, borrowing a scanner
from a pool. SplitFunc adapts run scanning to bufio.Scanner for input which
is read incrementally.

Malformed input is decoded leniently, following package codec: every byte
of a span belongs to exactly one run.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.
*/
package runs

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/tome-editor/textcore"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return textcore.CT()
}
