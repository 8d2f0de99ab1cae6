package backtrack

import (
	"github.com/coregx/globre/prog"
)

// DefaultMaxVisitedBits bounds the memo bit vector: 256KB = 2M bits.
const DefaultMaxVisitedBits = 256 * 1024 * 8

// Matcher runs match attempts over one compiled buffer.
//
// A Matcher is immutable and may be shared between goroutines; all per-search
// mutable data lives in a State.
//
// The result of an attempt depends only on the item it starts from and the
// input offset, so failed (item, offset) pairs are remembered in a bit
// vector and never retried. This bounds the total work of one search to
// O(items * len(input)). Memoisation is skipped when the bit vector would
// exceed maxVisitedBits; results are the same either way.
type Matcher struct {
	prog *prog.Prog

	// numItems is cached for index calculations
	numItems int

	// maxVisitedBits limits memo memory usage (in bits)
	maxVisitedBits int
}

// New creates a Matcher for p with the default memo bound.
func New(p *prog.Prog) *Matcher {
	return NewWithLimit(p, DefaultMaxVisitedBits)
}

// NewWithLimit creates a Matcher whose memo bit vector holds at most
// maxVisitedBits bits. A limit of 0 disables memoisation.
func NewWithLimit(p *prog.Prog, maxVisitedBits int) *Matcher {
	return &Matcher{
		prog:           p,
		numItems:       p.NumItems(),
		maxVisitedBits: maxVisitedBits,
	}
}

// Prog returns the buffer this matcher executes.
func (m *Matcher) Prog() *prog.Prog {
	return m.prog
}

// CanMemoize reports whether a haystack of the given length fits the memo bound.
func (m *Matcher) CanMemoize(haystackLen int) bool {
	bitsNeeded := m.numItems * (haystackLen + 1)
	return m.maxVisitedBits > 0 && bitsNeeded <= m.maxVisitedBits
}

// Reset prepares st for searches over a haystack of the given length.
// Memoised failures stay valid across start offsets and across searches of
// the same haystack, so callers reset once per haystack.
func (m *Matcher) Reset(st *State, haystackLen int) {
	st.offsets = st.offsets[:0]
	if !m.CanMemoize(haystackLen) {
		st.memo = false
		return
	}
	st.memo = true
	st.stride = haystackLen + 1
	st.clear(m.numItems * st.stride)
}

// MatchFrom attempts to satisfy the pattern from item to End with the input
// cursor starting at start. It returns the offset one past the end of the
// match, or -1.
//
// Pass item 0 to run the whole pattern. st must have been Reset for s.
func (m *Matcher) MatchFrom(st *State, s []byte, start, item int) int {
	return m.enter(st, s, start, item)
}

// enter is the memoised entry point for every attempt. Only failures stay
// marked, so a State can serve several searches over the same haystack.
func (m *Matcher) enter(st *State, s []byte, pos, item int) int {
	if !st.memo {
		return m.run(st, s, pos, item)
	}
	if !st.shouldVisit(item, pos) {
		return -1
	}
	end := m.run(st, s, pos, item)
	if end >= 0 {
		st.unmark(item, pos)
	}
	return end
}

// run consumes unquantified items one at a time. Any failure fails the whole
// attempt: each unquantified item has exactly one way to match.
func (m *Matcher) run(st *State, s []byte, pos, item int) int {
	p := m.prog
	for {
		switch op := p.Op(item); {
		case op == prog.OpBegin:
			item++
		case op == prog.OpEnd:
			return pos
		case op.IsQuantifier():
			return m.quantified(st, s, pos, item)
		default:
			if !MatchItem(s, &pos, p, item) {
				return -1
			}
			item++
		}
	}
}

// quantified handles a quantifier at item governing item+1, then matches the
// rest of the pattern from item+2.
//
// Greedy runs are collected in a loop rather than by recursion, so the call
// depth is bounded by the number of quantifiers in the pattern.
func (m *Matcher) quantified(st *State, s []byte, pos, item int) int {
	p := m.prog
	target, rest := item+1, item+2

	switch p.Op(item) {
	case prog.OpStar, prog.OpPlus:
		base := len(st.offsets)
		if p.Op(item) == prog.OpStar {
			st.offsets = append(st.offsets, pos)
		}
		for cur := pos; ; {
			next := cur
			if !MatchItem(s, &next, p, target) || next == cur {
				break
			}
			cur = next
			st.offsets = append(st.offsets, cur)
		}

		// Longest run first, down to the fewest repeats allowed.
		for k := len(st.offsets) - 1; k >= base; k-- {
			if end := m.enter(st, s, st.offsets[k], rest); end >= 0 {
				st.offsets = st.offsets[:base]
				return end
			}
		}
		st.offsets = st.offsets[:base]
		return -1

	case prog.OpQuest:
		next := pos
		if MatchItem(s, &next, p, target) {
			if end := m.enter(st, s, next, rest); end >= 0 {
				return end
			}
		}
		return m.enter(st, s, pos, rest)

	default:
		// Counted repetition is not implemented.
		return -1
	}
}
