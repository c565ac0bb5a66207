/*
Package morse converts text between English and International Morse code.

The package is built around an immutable code table (Symbol <-> Pattern,
both directions hash-indexed) and a pair of pure translation functions.
Encoding is a straightforward per-symbol mapping. Decoding handles two
structurally different input regimes:

  - Delimited Morse, where single spaces separate letter patterns and "/"
    separates words. This form is unambiguous and decodes to at most one
    string.
  - Unspaced Morse, a bare run of dots and dashes. Such a run can usually
    be segmented into valid patterns in more than one way; Decode
    enumerates every segmentation by depth-first backtracking, pruned by a
    prefix index over the pattern set.

The default table covers A-Z, 0-9, the space pseudo-symbol and a small set
of punctuation marks. Alternative tables can be compiled from streaming
sources; see package alphabet for a plain-text format adapter.

Further Reading

	https://en.wikipedia.org/wiki/Morse_code
	ITU-R M.1677-1 (International Morse code recommendation)
*/
package morse

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'morse'
func tracer() tracing.Trace {
	return tracing.Select("morse")
}
