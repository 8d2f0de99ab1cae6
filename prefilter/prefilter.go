// Package prefilter finds candidate match positions before the backtracking
// matcher runs.
//
// A prefilter is built from the literal prefixes extracted from a pattern.
// Every match starts with one of them, so offsets where no prefix occurs can
// be skipped without attempting a match. The strategy depends on the
// prefixes:
//   - one, two or three distinct single bytes: Memchr, Memchr2, Memchr3
//   - up to 256 single bytes: a byte table scan
//   - longer prefixes: an Aho-Corasick automaton
//
// Example usage:
//
//	seq := literal.ExtractPrefixes(prog.MustCompile("[bc]at"), literal.DefaultConfig())
//	pf := prefilter.Build(seq)
//	pos := pf.Find([]byte("the cat"), 0) // 4
package prefilter

import (
	"github.com/coregx/globre/literal"
)

// Prefilter reports candidate start offsets.
type Prefilter interface {
	// Find returns the first candidate offset at or after start, or -1 if
	// there is none. start must be in [0, len(haystack)].
	Find(haystack []byte, start int) int

	// IsComplete reports whether a candidate is a full match of the pattern
	// and needs no verification.
	IsComplete() bool

	// LiteralLen returns the match length when IsComplete is true, 0 otherwise.
	LiteralLen() int

	// HeapBytes returns the heap memory held by the prefilter.
	HeapBytes() int
}

// Build selects a prefilter for the given prefixes. It returns nil when seq
// is empty.
func Build(seq *literal.Seq) Prefilter {
	if seq.IsEmpty() || seq.MinLen() == 0 {
		return nil
	}

	complete := seq.IsComplete()
	if seq.MinLen() == 1 {
		first := seq.FirstBytes()
		switch len(first) {
		case 1:
			return &Memchr{needle: first[0], complete: complete}
		case 2:
			return &Memchr2{needle1: first[0], needle2: first[1]}
		case 3:
			return &Memchr3{needle1: first[0], needle2: first[1], needle3: first[2]}
		default:
			return newByteTable(first)
		}
	}

	pf, err := newAhoCorasick(seq)
	if err != nil {
		// Fall back to the first bytes, which every prefix still starts with.
		return newByteTable(seq.FirstBytes())
	}
	return pf
}
