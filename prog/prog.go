package prog

import (
	"encoding/binary"

	"github.com/coregx/globre/internal/conv"
)

// Prog is a compiled pattern buffer.
//
// A Prog is immutable once returned by Compile and safe for concurrent use.
// Items are addressed by their ordinal: item 0 is always Begin and item
// NumItems()-1 is always End.
type Prog struct {
	slots []uint32

	// items holds the slot offset of every item, in order.
	items []int
}

// newProg indexes a finished buffer. The buffer must start with Begin and
// end with End and the zero sentinel.
func newProg(slots []uint32) *Prog {
	p := &Prog{slots: slots}
	for at := 0; ; {
		w := Width(slots, at)
		if w == 0 || at+w > len(slots) {
			corrupt(at, "truncated item")
		}
		op := Op(slots[at])
		if op == OpGroupEnd {
			corrupt(at, "compile-time marker in finished buffer")
		}
		p.items = append(p.items, at)
		if op == OpEnd {
			if at+2 != len(slots) || slots[at+1] != 0 {
				corrupt(at, "missing sentinel after END")
			}
			break
		}
		at += w
	}
	if Op(slots[0]) != OpBegin {
		corrupt(0, "buffer does not start with BEGIN")
	}
	return p
}

// Source returns the pattern text the buffer was compiled from.
func (p *Prog) Source() string {
	n := int(p.slots[1])
	buf := make([]byte, conv.WordsFor(n)*4)
	for i := range conv.WordsFor(n) {
		binary.LittleEndian.PutUint32(buf[i*4:], p.slots[2+i])
	}
	return string(buf[:n])
}

// NumItems returns the number of items, Begin and End included.
func (p *Prog) NumItems() int {
	return len(p.items)
}

// NumSlots returns the size of the buffer in slots, sentinel included.
func (p *Prog) NumSlots() int {
	return len(p.slots)
}

// Op returns the opcode of the given item.
func (p *Prog) Op(item int) Op {
	return Op(p.slots[p.items[item]])
}

// Count returns the member count of a class or literal item, 0 otherwise.
func (p *Prog) Count(item int) int {
	at := p.items[item]
	if !Op(p.slots[at]).HasMembers() {
		return 0
	}
	return int(p.slots[at+1])
}

// Member returns the k-th member byte of a class or literal item.
func (p *Prog) Member(item, k int) byte {
	return conv.SlotToByte(p.slots[p.items[item]+2+k])
}

// Members returns a copy of the member bytes of a class or literal item.
func (p *Prog) Members(item int) []byte {
	n := p.Count(item)
	out := make([]byte, n)
	for k := range n {
		out[k] = p.Member(item, k)
	}
	return out
}

// Contains reports whether b is one of the members of a class item.
// Membership is a linear scan in source order.
func (p *Prog) Contains(item int, b byte) bool {
	at := p.items[item]
	members := p.slots[at+2 : at+2+int(p.slots[at+1])]
	for _, m := range members {
		if m == uint32(b) {
			return true
		}
	}
	return false
}

// Slots returns a copy of the raw buffer, sentinel included.
func (p *Prog) Slots() []uint32 {
	out := make([]uint32, len(p.slots))
	copy(out, p.slots)
	return out
}

// FirstRealItem returns the first item after Begin and an optional BOL.
func (p *Prog) FirstRealItem() int {
	item := 1
	if p.Op(item) == OpBOL {
		item++
	}
	return item
}

// Anchored reports whether the pattern starts with ^.
func (p *Prog) Anchored() bool {
	return p.Op(1) == OpBOL
}
