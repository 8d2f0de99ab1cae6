// Package backtrack executes compiled pattern buffers with a greedy
// backtracking matcher.
//
// MatchItem tests a single item at a cursor. Matcher.MatchFrom drives a full
// attempt over the remainder of a buffer, retrying quantified items with
// fewer repeats when the rest of the pattern fails.
package backtrack

import (
	"fmt"

	"github.com/coregx/globre/internal/ascii"
	"github.com/coregx/globre/prog"
)

// MatchItem tries to satisfy exactly one non-quantifier item at s[*pos].
// On success it advances *pos past the consumed bytes and returns true; on
// failure *pos is left unchanged.
//
// EOL matches at the end of s, or before a final '\n' which it consumes.
// BOL matches only at offset 0. ANY matches every byte except '\n'.
// Quantifier opcodes never match here.
func MatchItem(s []byte, pos *int, p *prog.Prog, item int) bool {
	i := *pos
	op := p.Op(item)

	switch op {
	case prog.OpBOL:
		return i == 0
	case prog.OpEOL:
		if i == len(s) {
			return true
		}
		if i == len(s)-1 && s[i] == '\n' {
			*pos = i + 1
			return true
		}
		return false
	case prog.OpLiteral:
		n := p.Count(item)
		if n > len(s)-i {
			return false
		}
		for k := range n {
			if s[i+k] != p.Member(item, k) {
				return false
			}
		}
		*pos = i + n
		return true
	case prog.OpStar, prog.OpPlus, prog.OpQuest, prog.OpRepeat, prog.OpBegin, prog.OpEnd:
		return false
	}

	if i >= len(s) {
		return false
	}
	if !matchByte(s[i], p, item, op) {
		return false
	}
	*pos = i + 1
	return true
}

// matchByte tests the single-byte items.
func matchByte(b byte, p *prog.Prog, item int, op prog.Op) bool {
	switch op {
	case prog.OpAny:
		return b != '\n'
	case prog.OpDigit:
		return ascii.IsDigit(b)
	case prog.OpNotDigit:
		return !ascii.IsDigit(b)
	case prog.OpWord:
		return ascii.IsWord(b)
	case prog.OpNotWord:
		return !ascii.IsWord(b)
	case prog.OpSpace:
		return ascii.IsSpace(b)
	case prog.OpNotSpace:
		return !ascii.IsSpace(b)
	case prog.OpNewline:
		return b == '\n'
	case prog.OpTab:
		return b == '\t'
	case prog.OpFormFeed:
		return b == '\f'
	case prog.OpClass:
		return p.Contains(item, b)
	case prog.OpNotClass:
		return !p.Contains(item, b)
	default:
		panic(fmt.Errorf("%w: item %d has opcode %v", prog.ErrCorrupt, item, op))
	}
}
