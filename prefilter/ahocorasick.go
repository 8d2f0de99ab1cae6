package prefilter

import (
	"github.com/coregx/ahocorasick"
	"github.com/coregx/globre/literal"
)

// AhoCorasick finds candidates starting with any of a set of multi-byte
// prefixes using an Aho-Corasick automaton.
//
// The prefixes extracted from a pattern all have the same length, so the
// match that ends first is also the one that starts first and the automaton's
// match start is the leftmost candidate regardless of its match semantics.
type AhoCorasick struct {
	automaton *ahocorasick.Automaton
	patterns  int
	heap      int
	complete  int
}

func newAhoCorasick(seq *literal.Seq) (*AhoCorasick, error) {
	builder := ahocorasick.NewBuilder()
	heap := 0
	for i := 0; i < seq.Len(); i++ {
		lit := seq.Get(i)
		builder.AddPattern(lit.Bytes)
		heap += lit.Len()
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}

	pf := &AhoCorasick{automaton: auto, patterns: seq.Len(), heap: heap}
	if seq.IsComplete() {
		pf.complete = seq.Get(0).Len()
	}
	return pf, nil
}

// Find implements Prefilter.
func (p *AhoCorasick) Find(haystack []byte, start int) int {
	if start >= len(haystack) {
		return -1
	}
	m := p.automaton.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

// IsComplete implements Prefilter.
func (p *AhoCorasick) IsComplete() bool { return p.complete > 0 }

// LiteralLen implements Prefilter.
func (p *AhoCorasick) LiteralLen() int { return p.complete }

// HeapBytes implements Prefilter. The automaton's own tables are not
// counted; the figure is the total prefix length.
func (p *AhoCorasick) HeapBytes() int { return p.heap }

// Patterns returns the number of prefixes in the automaton.
func (p *AhoCorasick) Patterns() int { return p.patterns }
