// Package simd provides word-at-a-time (SWAR) byte search kernels used by
// the prefilters to skip to candidate match positions.
//
// The kernels load eight bytes per iteration in the host byte order and use
// an exact zero-byte test, so the first matching byte can be located from
// either end of the word.
package simd

import (
	"encoding/binary"
	"math/bits"

	"golang.org/x/sys/cpu"
)

const (
	lo7 = 0x7f7f7f7f7f7f7f7f
	lo8 = 0x0101010101010101
)

// bigEndian is the host byte order, read from x/sys/cpu next to the CPU
// feature flags that gate vector kernels.
var bigEndian = cpu.IsBigEndian

// load reads eight bytes at b[i:] in host byte order.
func load(b []byte, i int) uint64 {
	return binary.NativeEndian.Uint64(b[i:])
}

// zeroBytes returns a word with the high bit set in every byte of v that is
// zero, and no other bits set. Unlike the shorter (v-lo8)&^v&hi8 form it
// has no carries between bytes, so it is exact in both byte orders.
func zeroBytes(v uint64) uint64 {
	t := (v & lo7) + lo7
	return ^(t | v | lo7)
}

// firstByte returns the index within the word of the first flagged byte.
func firstByte(mask uint64) int {
	if bigEndian {
		return bits.LeadingZeros64(mask) / 8
	}
	return bits.TrailingZeros64(mask) / 8
}

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present.
//
// Example:
//
//	pos := simd.Memchr([]byte("hello world"), 'o') // 4
func Memchr(haystack []byte, needle byte) int {
	n := len(haystack)
	mask := uint64(needle) * lo8

	i := 0
	for ; i+8 <= n; i += 8 {
		if z := zeroBytes(load(haystack, i) ^ mask); z != 0 {
			return i + firstByte(z)
		}
	}
	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

// Memchr2 returns the index of the first instance of either needle in
// haystack, or -1 if neither is present.
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	n := len(haystack)
	mask1 := uint64(needle1) * lo8
	mask2 := uint64(needle2) * lo8

	i := 0
	for ; i+8 <= n; i += 8 {
		chunk := load(haystack, i)
		if z := zeroBytes(chunk^mask1) | zeroBytes(chunk^mask2); z != 0 {
			return i + firstByte(z)
		}
	}
	for ; i < n; i++ {
		if c := haystack[i]; c == needle1 || c == needle2 {
			return i
		}
	}
	return -1
}

// Memchr3 returns the index of the first instance of any of the three
// needles in haystack, or -1 if none is present.
func Memchr3(haystack []byte, needle1, needle2, needle3 byte) int {
	n := len(haystack)
	mask1 := uint64(needle1) * lo8
	mask2 := uint64(needle2) * lo8
	mask3 := uint64(needle3) * lo8

	i := 0
	for ; i+8 <= n; i += 8 {
		chunk := load(haystack, i)
		z := zeroBytes(chunk^mask1) | zeroBytes(chunk^mask2) | zeroBytes(chunk^mask3)
		if z != 0 {
			return i + firstByte(z)
		}
	}
	for ; i < n; i++ {
		if c := haystack[i]; c == needle1 || c == needle2 || c == needle3 {
			return i
		}
	}
	return -1
}

// MemchrInTable returns the index of the first byte b in haystack for which
// table[b] is true, or -1.
func MemchrInTable(haystack []byte, table *[256]bool) int {
	for i, b := range haystack {
		if table[b] {
			return i
		}
	}
	return -1
}
