package prefilter

import "github.com/coregx/globre/simd"

// Memchr finds candidates starting with a single byte.
type Memchr struct {
	needle   byte
	complete bool
}

// Find implements Prefilter.
func (p *Memchr) Find(haystack []byte, start int) int {
	if start >= len(haystack) {
		return -1
	}
	if i := simd.Memchr(haystack[start:], p.needle); i >= 0 {
		return start + i
	}
	return -1
}

// IsComplete implements Prefilter.
func (p *Memchr) IsComplete() bool { return p.complete }

// LiteralLen implements Prefilter.
func (p *Memchr) LiteralLen() int {
	if p.complete {
		return 1
	}
	return 0
}

// HeapBytes implements Prefilter.
func (p *Memchr) HeapBytes() int { return 0 }

// Memchr2 finds candidates starting with either of two bytes.
type Memchr2 struct {
	needle1, needle2 byte
}

// Find implements Prefilter.
func (p *Memchr2) Find(haystack []byte, start int) int {
	if start >= len(haystack) {
		return -1
	}
	if i := simd.Memchr2(haystack[start:], p.needle1, p.needle2); i >= 0 {
		return start + i
	}
	return -1
}

// IsComplete implements Prefilter.
func (p *Memchr2) IsComplete() bool { return false }

// LiteralLen implements Prefilter.
func (p *Memchr2) LiteralLen() int { return 0 }

// HeapBytes implements Prefilter.
func (p *Memchr2) HeapBytes() int { return 0 }

// Memchr3 finds candidates starting with any of three bytes.
type Memchr3 struct {
	needle1, needle2, needle3 byte
}

// Find implements Prefilter.
func (p *Memchr3) Find(haystack []byte, start int) int {
	if start >= len(haystack) {
		return -1
	}
	if i := simd.Memchr3(haystack[start:], p.needle1, p.needle2, p.needle3); i >= 0 {
		return start + i
	}
	return -1
}

// IsComplete implements Prefilter.
func (p *Memchr3) IsComplete() bool { return false }

// LiteralLen implements Prefilter.
func (p *Memchr3) LiteralLen() int { return 0 }

// HeapBytes implements Prefilter.
func (p *Memchr3) HeapBytes() int { return 0 }

// ByteTable finds candidates starting with any byte of a set.
type ByteTable struct {
	table [256]bool
}

func newByteTable(set []byte) *ByteTable {
	t := &ByteTable{}
	for _, b := range set {
		t.table[b] = true
	}
	return t
}

// Find implements Prefilter.
func (p *ByteTable) Find(haystack []byte, start int) int {
	if start >= len(haystack) {
		return -1
	}
	if i := simd.MemchrInTable(haystack[start:], &p.table); i >= 0 {
		return start + i
	}
	return -1
}

// IsComplete implements Prefilter.
func (p *ByteTable) IsComplete() bool { return false }

// LiteralLen implements Prefilter.
func (p *ByteTable) LiteralLen() int { return 0 }

// HeapBytes implements Prefilter.
func (p *ByteTable) HeapBytes() int { return 256 }
