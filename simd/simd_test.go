package simd

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestZeroBytesExact(t *testing.T) {
	// 0x01 above a 0x00 byte is a false positive for the short formula.
	buf := []byte{0x00, 0x01, 0x01, 0x00, 0xff, 0x80, 0x7f, 0x01}
	z := zeroBytes(load(buf, 0))
	var got []int
	for k := 0; k < 8; k++ {
		var bit uint64
		if bigEndian {
			bit = uint64(0x80) << (8 * (7 - k))
		} else {
			bit = uint64(0x80) << (8 * k)
		}
		if z&bit != 0 {
			got = append(got, k)
		}
	}
	if len(got) != 2 || got[0] != 0 || got[1] != 3 {
		t.Errorf("zero bytes at %v, want [0 3]", got)
	}
}

func TestMemchr(t *testing.T) {
	tests := []struct {
		haystack string
		needle   byte
		want     int
	}{
		{"", 'a', -1},
		{"a", 'a', 0},
		{"hello world", 'o', 4},
		{"hello world", 'x', -1},
		{"0123456789abcdef", 'f', 15},
		{"0123456789abcdef", '8', 8},
		{"\x01\x00", 0, 1},
	}
	for _, tt := range tests {
		if got := Memchr([]byte(tt.haystack), tt.needle); got != tt.want {
			t.Errorf("Memchr(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
		}
	}
}

// TestKernelsAgainstBytes compares every kernel with a scalar reference over
// random inputs of many lengths and alignments.
func TestKernelsAgainstBytes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	alphabet := []byte{0x00, 0x01, 'a', 'b', 'c', 0x7f, 0x80, 0xff}

	for n := 0; n < 70; n++ {
		for trial := 0; trial < 20; trial++ {
			buf := make([]byte, n)
			for i := range buf {
				buf[i] = alphabet[rng.Intn(len(alphabet))]
			}
			a, b, c := alphabet[rng.Intn(8)], alphabet[rng.Intn(8)], alphabet[rng.Intn(8)]

			if got, want := Memchr(buf, a), bytes.IndexByte(buf, a); got != want {
				t.Fatalf("Memchr(%x, %x) = %d, want %d", buf, a, got, want)
			}
			if got, want := Memchr2(buf, a, b), scalarIndex(buf, a, b); got != want {
				t.Fatalf("Memchr2(%x, %x, %x) = %d, want %d", buf, a, b, got, want)
			}
			if got, want := Memchr3(buf, a, b, c), scalarIndex(buf, a, b, c); got != want {
				t.Fatalf("Memchr3(%x, %x, %x, %x) = %d, want %d", buf, a, b, c, got, want)
			}
			var table [256]bool
			table[a], table[c] = true, true
			if got, want := MemchrInTable(buf, &table), scalarIndex(buf, a, c); got != want {
				t.Fatalf("MemchrInTable(%x) = %d, want %d", buf, got, want)
			}
		}
	}
}

func scalarIndex(buf []byte, needles ...byte) int {
	for i, x := range buf {
		for _, n := range needles {
			if x == n {
				return i
			}
		}
	}
	return -1
}

func BenchmarkMemchr(b *testing.B) {
	buf := bytes.Repeat([]byte("abcdefgh"), 512)
	buf = append(buf, 'z')
	b.SetBytes(int64(len(buf)))
	for i := 0; i < b.N; i++ {
		if Memchr(buf, 'z') != len(buf)-1 {
			b.Fatal("wrong index")
		}
	}
}
