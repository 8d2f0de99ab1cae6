// Package conv provides checked integer conversions for packing pattern data
// into buffer slots.
//
// These functions panic on overflow since that indicates a pattern too large
// for the buffer encoding, which callers bound before conversion.
package conv

import "math"

// IntToSlot converts a non-negative int to a uint32 slot value.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToSlot(n int) uint32 {
	// Compare as uint so 32-bit platforms do not overflow on MaxUint32.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of slot range")
	}
	return uint32(n)
}

// SlotToByte converts a slot holding a member or literal byte back to a byte.
// Panics if the slot does not fit in a byte.
//
//go:inline
func SlotToByte(s uint32) byte {
	if s > math.MaxUint8 {
		panic("integer overflow: slot value out of byte range")
	}
	return byte(s)
}

// WordsFor returns the number of 4-byte slots needed to hold n bytes.
func WordsFor(n int) int {
	return (n + 3) / 4
}
