// Package literal extracts the literal prefixes that every match of a
// compiled pattern must start with.
//
// The prefixes feed the prefilters: instead of attempting a match at every
// input offset, the engine only attempts offsets where one of the prefixes
// occurs.
package literal

import (
	"bytes"
	"sort"
)

// Literal is a byte sequence that a match must start with. Complete is true
// when the literal is the entire match, so finding it is finding a match.
type Literal struct {
	Bytes    []byte
	Complete bool
}

// NewLiteral creates a Literal.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{Bytes: b, Complete: complete}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String returns a debugging representation: "literal{bytes, complete=bool}".
func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Bytes) + ", complete=" + complete + "}"
}

// Seq is a set of alternative literals, one of which starts every match.
//
// Literals in a Seq produced by ExtractPrefixes all have the same length.
type Seq struct {
	literals []Literal
}

// NewSeq creates a sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{literals: lits}
}

// Len returns the number of literals, 0 for a nil Seq.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the i-th literal.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty reports whether the sequence has no literals.
func (s *Seq) IsEmpty() bool {
	return s.Len() == 0
}

// IsComplete reports whether the sequence is a single complete literal.
func (s *Seq) IsComplete() bool {
	return s.Len() == 1 && s.literals[0].Complete
}

// MinLen returns the length of the shortest literal, 0 for an empty Seq.
func (s *Seq) MinLen() int {
	if s.IsEmpty() {
		return 0
	}
	n := s.literals[0].Len()
	for _, lit := range s.literals[1:] {
		n = min(n, lit.Len())
	}
	return n
}

// Dedup sorts the literals and removes duplicates.
func (s *Seq) Dedup() {
	if s.Len() < 2 {
		return
	}
	sort.Slice(s.literals, func(i, j int) bool {
		return bytes.Compare(s.literals[i].Bytes, s.literals[j].Bytes) < 0
	})
	out := s.literals[:1]
	for _, lit := range s.literals[1:] {
		if !bytes.Equal(lit.Bytes, out[len(out)-1].Bytes) {
			out = append(out, lit)
		}
	}
	s.literals = out
}

// FirstBytes returns the distinct first bytes of the literals, sorted.
func (s *Seq) FirstBytes() []byte {
	var seen [256]bool
	var out []byte
	for _, lit := range s.literals {
		if lit.Len() == 0 || seen[lit.Bytes[0]] {
			continue
		}
		seen[lit.Bytes[0]] = true
		out = append(out, lit.Bytes[0])
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// LongestCommonPrefix returns the longest prefix shared by all literals.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("hello"), false),
//	    literal.NewLiteral([]byte("help"), false),
//	)
//	seq.LongestCommonPrefix() // "hel"
func (s *Seq) LongestCommonPrefix() []byte {
	if s.IsEmpty() {
		return nil
	}
	prefix := s.literals[0].Bytes
	for _, lit := range s.literals[1:] {
		n := 0
		for n < len(prefix) && n < lit.Len() && prefix[n] == lit.Bytes[n] {
			n++
		}
		prefix = prefix[:n]
	}
	return prefix
}
