package prog

import (
	"fmt"
	"strconv"
	"strings"
)

// Dump returns a human-readable listing of the buffer, one item per line.
// The format is meant for debugging and may change.
//
// Example:
//
//	p := prog.MustCompile(`^a+[xy]$`)
//	fmt.Print(p.Dump())
//	// BEGIN "^a+[xy]$" (16 slots)
//	//    0: BOL
//	//    1: PLUS
//	//    2: LITERAL "a"
//	//    3: CLASS [xy]
//	//    4: EOL
//	// END
func (p *Prog) Dump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "BEGIN %s (%d slots)\n", strconv.Quote(p.Source()), len(p.slots))
	for item := 1; item < p.NumItems()-1; item++ {
		fmt.Fprintf(&b, "%4d: %s\n", item-1, p.describe(item))
	}
	b.WriteString("END\n")
	return b.String()
}

// String returns the source pattern.
func (p *Prog) String() string {
	return p.Source()
}

func (p *Prog) describe(item int) string {
	op := p.Op(item)
	switch op {
	case OpLiteral:
		return op.String() + " " + strconv.Quote(string(p.Members(item)))
	case OpClass, OpNotClass:
		return op.String() + " [" + quoteMembers(p.Members(item)) + "]"
	default:
		return op.String()
	}
}

// quoteMembers renders class members, escaping bytes that are not printable.
func quoteMembers(members []byte) string {
	q := strconv.Quote(string(members))
	return q[1 : len(q)-1]
}
