package prog

import (
	"encoding/binary"

	"github.com/coregx/globre/internal/conv"
	"github.com/coregx/globre/syntax"
)

// tokenOps maps single-slot token kinds to their opcode.
var tokenOps = map[syntax.Kind]Op{
	syntax.KindBOL:      OpBOL,
	syntax.KindEOL:      OpEOL,
	syntax.KindAny:      OpAny,
	syntax.KindDigit:    OpDigit,
	syntax.KindNotDigit: OpNotDigit,
	syntax.KindWord:     OpWord,
	syntax.KindNotWord:  OpNotWord,
	syntax.KindSpace:    OpSpace,
	syntax.KindNotSpace: OpNotSpace,
	syntax.KindNewline:  OpNewline,
	syntax.KindTab:      OpTab,
	syntax.KindFormFeed: OpFormFeed,
	syntax.KindStar:     OpStar,
	syntax.KindPlus:     OpPlus,
	syntax.KindQuest:    OpQuest,
}

// Compile translates a pattern into a buffer.
//
// Steps:
//  1. Expand `a-z` ranges inside bracket groups
//  2. Lex the expanded text into tokens
//  3. Lay the tokens out in a scratch buffer, quantifiers trailing their item
//  4. Reorganize into the final buffer, quantifiers leading their item
//
// On failure no buffer is returned and the error is a *CompileError
// wrapping a *syntax.Error.
func Compile(raw string) (*Prog, error) {
	expanded, err := syntax.ExpandRanges(raw)
	if err != nil {
		return nil, &CompileError{Pattern: raw, Err: err}
	}

	toks, err := syntax.Lex(expanded)
	if err != nil {
		return nil, &CompileError{Pattern: raw, Err: err}
	}

	scratch := layout(raw, toks, len(expanded))
	return newProg(reorganize(scratch)), nil
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
func MustCompile(raw string) *Prog {
	p, err := Compile(raw)
	if err != nil {
		panic("prog: Compile(`" + raw + "`): " + err.Error())
	}
	return p
}

// scratchSize bounds the pass 1 buffer for a pattern whose expanded text is
// n bytes long. Every source byte yields at most four slots (a one-byte
// literal becomes op, count, byte, group end).
func scratchSize(raw string, n int) int {
	return beginWidth(raw) + 4*n + 2
}

func beginWidth(raw string) int {
	return 2 + conv.WordsFor(len(raw))
}

// appendBegin writes the Begin item embedding the raw source text.
func appendBegin(slots []uint32, raw string) []uint32 {
	slots = append(slots, uint32(OpBegin), conv.IntToSlot(len(raw)))
	var word [4]byte
	for i := 0; i < len(raw); i += 4 {
		word = [4]byte{}
		copy(word[:], raw[i:])
		slots = append(slots, binary.LittleEndian.Uint32(word[:]))
	}
	return slots
}

// layout is pass 1. It writes every token in source order, so quantifiers
// trail the item they repeat, and closes each class or literal with a
// GroupEnd marker.
func layout(raw string, toks []syntax.Token, expandedLen int) []uint32 {
	limit := scratchSize(raw, expandedLen)
	slots := make([]uint32, 0, limit)
	slots = appendBegin(slots, raw)

	for _, tok := range toks {
		switch tok.Kind {
		case syntax.KindLiteral:
			slots = append(slots, uint32(OpLiteral), 1, uint32(tok.Byte), uint32(OpGroupEnd))
		case syntax.KindClass, syntax.KindNotClass:
			op := OpClass
			if tok.Kind == syntax.KindNotClass {
				op = OpNotClass
			}
			slots = append(slots, uint32(op), conv.IntToSlot(len(tok.Members)))
			for _, m := range tok.Members {
				slots = append(slots, uint32(m))
			}
			slots = append(slots, uint32(OpGroupEnd))
		default:
			op, ok := tokenOps[tok.Kind]
			if !ok {
				corrupt(len(slots), "no opcode for token %v", tok.Kind)
			}
			slots = append(slots, uint32(op))
		}
	}
	slots = append(slots, uint32(OpEnd), 0)

	if len(slots) > limit {
		corrupt(limit, "pass 1 overran its %d-slot estimate", limit)
	}
	return slots
}

// reorganize is pass 2. It copies the scratch buffer item by item; when the
// item after the current one (skipping a GroupEnd marker) is a quantifier,
// the quantifier is written first. GroupEnd markers are dropped. The result
// is allocated at its exact size.
func reorganize(scratch []uint32) []uint32 {
	out := make([]uint32, 0, finalSize(scratch))

	at := Width(scratch, 0)
	out = append(out, scratch[:at]...)

	for {
		op := Op(scratch[at])
		w := Width(scratch, at)
		switch {
		case w == 0:
			corrupt(at, "invalid opcode %d", uint32(op))
		case op == OpEnd:
			return append(out, uint32(OpEnd), 0)
		case op == OpGroupEnd:
			at++
			continue
		case op.IsQuantifier():
			corrupt(at, "%v has no item to repeat", op)
		}

		next := at + w
		if Op(scratch[next]) == OpGroupEnd {
			next++
		}
		if q := Op(scratch[next]); q.IsQuantifier() {
			out = append(out, uint32(q))
			out = append(out, scratch[at:at+w]...)
			at = next + 1
			continue
		}
		out = append(out, scratch[at:at+w]...)
		at = next
	}
}

// finalSize counts the slots reorganize will keep.
func finalSize(scratch []uint32) int {
	n := 0
	for at := 0; at < len(scratch); {
		w := Width(scratch, at)
		if w == 0 {
			corrupt(at, "invalid opcode %d", scratch[at])
		}
		op := Op(scratch[at])
		if op != OpGroupEnd {
			n += w
		}
		at += w
		if op == OpEnd {
			return n + 1
		}
	}
	corrupt(len(scratch), "missing END")
	return 0
}
