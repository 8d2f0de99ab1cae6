// Package ascii provides the byte classification predicates used by the
// pattern compiler and matcher.
//
// All predicates use ASCII semantics: bytes >= 0x80 are never digits, word
// characters or whitespace.
package ascii

// Class bits stored in the lookup table.
const (
	classDigit uint8 = 1 << iota
	classWord
	classSpace
)

// table maps every byte to its class bits.
var table = func() (t [256]uint8) {
	for b := '0'; b <= '9'; b++ {
		t[b] |= classDigit | classWord
	}
	for b := 'a'; b <= 'z'; b++ {
		t[b] |= classWord
	}
	for b := 'A'; b <= 'Z'; b++ {
		t[b] |= classWord
	}
	t['_'] |= classWord
	for _, b := range []byte{' ', '\t', '\n', '\v', '\f', '\r'} {
		t[b] |= classSpace
	}
	return t
}()

// IsDigit reports whether b is in [0-9].
func IsDigit(b byte) bool {
	return table[b]&classDigit != 0
}

// IsWord reports whether b is in [0-9A-Za-z_].
func IsWord(b byte) bool {
	return table[b]&classWord != 0
}

// IsSpace reports whether b is one of ' ', '\t', '\n', '\v', '\f', '\r'.
func IsSpace(b byte) bool {
	return table[b]&classSpace != 0
}
