// Package prog defines the compiled pattern buffer and the two-pass compiler
// that produces it.
//
// A buffer is a flat sequence of uint32 slots. Each item starts with an
// opcode slot; class and literal items follow it with a member count and the
// members themselves, and the Begin item embeds the source pattern. The width
// of every item can be computed from its first slots, so the buffer is walked
// without any side tables.
package prog

import "github.com/coregx/globre/internal/conv"

// Op is the opcode stored in the first slot of an item.
type Op uint32

// Opcodes. The zero value is reserved for the sentinel slot after End.
const (
	OpInvalid  Op = iota
	OpBegin       // [OpBegin, n, packed source...]
	OpEnd         // [OpEnd] followed by a zero sentinel
	OpBOL         // ^
	OpEOL         // $
	OpAny         // . (any byte but '\n')
	OpDigit       // \d
	OpNotDigit    // \D
	OpWord        // \w
	OpNotWord     // \W
	OpSpace       // \s
	OpNotSpace    // \S
	OpNewline     // \n
	OpTab         // \t
	OpFormFeed    // \f
	OpLiteral     // [OpLiteral, n, bytes...]
	OpClass       // [OpClass, n, members...]
	OpNotClass    // [OpNotClass, n, members...]
	OpStar        // *
	OpPlus        // +
	OpQuest       // ?
	OpRepeat      // {m,n}, never produced by the compiler
	OpGroupEnd    // closes a class or literal during pass 1 only
	numOps
)

var opNames = [...]string{
	OpInvalid:  "INVALID",
	OpBegin:    "BEGIN",
	OpEnd:      "END",
	OpBOL:      "BOL",
	OpEOL:      "EOL",
	OpAny:      "ANY",
	OpDigit:    "DIGIT",
	OpNotDigit: "NOT_DIGIT",
	OpWord:     "WORD",
	OpNotWord:  "NOT_WORD",
	OpSpace:    "SPACE",
	OpNotSpace: "NOT_SPACE",
	OpNewline:  "NEWLINE",
	OpTab:      "TAB",
	OpFormFeed: "FORM_FEED",
	OpLiteral:  "LITERAL",
	OpClass:    "CLASS",
	OpNotClass: "NOT_CLASS",
	OpStar:     "STAR",
	OpPlus:     "PLUS",
	OpQuest:    "QUEST",
	OpRepeat:   "REPEAT",
	OpGroupEnd: "GROUP_END",
}

func (op Op) String() string {
	if op < numOps {
		return opNames[op]
	}
	return "OP(?)"
}

// IsQuantifier reports whether op repeats the item that follows it.
func (op Op) IsQuantifier() bool {
	return op == OpStar || op == OpPlus || op == OpQuest || op == OpRepeat
}

// HasMembers reports whether op is followed by a count and member slots.
func (op Op) HasMembers() bool {
	return op == OpLiteral || op == OpClass || op == OpNotClass
}

// Width returns the number of slots occupied by the item starting at
// slots[at]. It returns 0 for an invalid opcode or a truncated item.
func Width(slots []uint32, at int) int {
	if at < 0 || at >= len(slots) {
		return 0
	}
	op := Op(slots[at])
	switch {
	case op == OpBegin:
		if at+1 >= len(slots) {
			return 0
		}
		return 2 + conv.WordsFor(int(slots[at+1]))
	case op.HasMembers():
		if at+1 >= len(slots) {
			return 0
		}
		return 2 + int(slots[at+1])
	case op == OpInvalid || op >= numOps:
		return 0
	default:
		return 1
	}
}
