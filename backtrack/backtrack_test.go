package backtrack

import (
	"strings"
	"testing"

	"github.com/coregx/globre/prog"
)

// matchFrom runs a single attempt of pattern against input at start.
func matchFrom(t *testing.T, pattern, input string, start int) int {
	t.Helper()
	p := prog.MustCompile(pattern)
	m := New(p)
	st := NewState()
	m.Reset(st, len(input))
	return m.MatchFrom(st, []byte(input), start, 0)
}

func TestMatchItem(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		pos     int
		want    bool
		wantPos int
	}{
		{"a", "a", 0, true, 1},
		{"a", "b", 0, false, 0},
		{"a", "", 0, false, 0},
		{".", "x", 0, true, 1},
		{".", "\n", 0, false, 0},
		{`\d`, "7", 0, true, 1},
		{`\D`, "7", 0, false, 0},
		{`\w`, "_", 0, true, 1},
		{`\W`, "-", 0, true, 1},
		{`\s`, "\t", 0, true, 1},
		{`\S`, " ", 0, false, 0},
		{`\n`, "\n", 0, true, 1},
		{`\t`, "\t", 0, true, 1},
		{`\f`, "\f", 0, true, 1},
		{"[abc]", "b", 0, true, 1},
		{"[abc]", "d", 0, false, 0},
		{"[^abc]", "d", 0, true, 1},
		{"[^abc]", "a", 0, false, 0},
		{"[^abc]", "", 0, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			p := prog.MustCompile(tt.pattern)
			pos := tt.pos
			got := MatchItem([]byte(tt.input), &pos, p, 1)
			if got != tt.want || pos != tt.wantPos {
				t.Errorf("MatchItem = %v, pos %d; want %v, pos %d", got, pos, tt.want, tt.wantPos)
			}
		})
	}
}

func TestMatchItemAnchors(t *testing.T) {
	bol := prog.MustCompile("^")
	pos := 0
	if !MatchItem([]byte("ab"), &pos, bol, 1) || pos != 0 {
		t.Errorf("BOL at 0: pos %d", pos)
	}
	pos = 1
	if MatchItem([]byte("ab"), &pos, bol, 1) {
		t.Error("BOL matched at 1")
	}

	eol := prog.MustCompile("$")
	tests := []struct {
		input   string
		pos     int
		want    bool
		wantPos int
	}{
		{"ab", 2, true, 2},
		{"ab\n", 2, true, 3},
		{"ab\n\n", 2, false, 2},
		{"ab", 1, false, 1},
		{"", 0, true, 0},
	}
	for _, tt := range tests {
		pos := tt.pos
		got := MatchItem([]byte(tt.input), &pos, eol, 1)
		if got != tt.want || pos != tt.wantPos {
			t.Errorf("EOL on %q at %d = %v, pos %d; want %v, pos %d",
				tt.input, tt.pos, got, pos, tt.want, tt.wantPos)
		}
	}
}

func TestMatchItemQuantifierNeverMatches(t *testing.T) {
	p := prog.MustCompile("a*")
	pos := 0
	if MatchItem([]byte("a"), &pos, p, 1) {
		t.Error("quantifier item matched")
	}
}

func TestMatchFrom(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		start   int
		want    int
	}{
		{"", "abc", 0, 0},
		{"abc", "abc", 0, 3},
		{"abc", "abd", 0, -1},
		{"a*b", "aaab", 0, 4},
		{"a*b", "b", 0, 1},
		{"a*", "aaa", 0, 3},
		{"a+b", "ab", 0, 2},
		{"a+b", "b", 0, -1},
		{"ab?c", "ac", 0, 2},
		{"ab?c", "abc", 0, 3},
		{"ab?c", "abbc", 0, -1},
		{"a.*c", "abcbc", 0, 5},
		{"a.*c", "abcbd", 0, 3},
		{".*a", "bbab", 0, 3},
		{"[ab]+b", "abab", 0, 4},
		{`\d+\.\d*`, "12.5x", 0, 4},
		{"c$", "abc", 2, 3},
		{"c$", "abc\n", 2, 4},
		{"c$", "abcd", 2, -1},
		{"^a", "ba", 1, -1},
		{"^a", "ab", 0, 1},
		{"x?$", "", 0, 0},
		{".*", "ab\ncd", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			if got := matchFrom(t, tt.pattern, tt.input, tt.start); got != tt.want {
				t.Errorf("MatchFrom(%q, %q, %d) = %d, want %d",
					tt.pattern, tt.input, tt.start, got, tt.want)
			}
		})
	}
}

// TestMemoDoesNotChangeResults runs every attempt with and without the
// memo bit vector.
func TestMemoDoesNotChangeResults(t *testing.T) {
	patterns := []string{"a*a*b", "a+a?a*c", ".*x.*y", "[ab]*b?a+", `\w*\d$`}
	inputs := []string{"", "aaab", "aaaa", "axbyc", "abba", "word9", "word9\n", "aaac"}

	for _, pattern := range patterns {
		p := prog.MustCompile(pattern)
		memo := New(p)
		plain := NewWithLimit(p, 0)
		for _, input := range inputs {
			st1, st2 := NewState(), NewState()
			memo.Reset(st1, len(input))
			plain.Reset(st2, len(input))
			for start := 0; start <= len(input); start++ {
				a := memo.MatchFrom(st1, []byte(input), start, 0)
				b := plain.MatchFrom(st2, []byte(input), start, 0)
				if a != b {
					t.Errorf("%q on %q at %d: memo %d, plain %d", pattern, input, start, a, b)
				}
			}
		}
	}
}

// TestStateReuseAfterSuccess checks that a success leaves no stale marks.
func TestStateReuseAfterSuccess(t *testing.T) {
	p := prog.MustCompile("a*b")
	m := New(p)
	st := NewState()
	in := []byte("aab")
	m.Reset(st, len(in))
	for i := 0; i < 3; i++ {
		if end := m.MatchFrom(st, in, 0, 0); end != 3 {
			t.Fatalf("run %d: end = %d, want 3", i, end)
		}
	}
}

// TestPathologicalInputIsBounded would take exponential time without the
// memo bit vector.
func TestPathologicalInputIsBounded(t *testing.T) {
	pattern := strings.Repeat("a*", 20) + "b"
	input := []byte(strings.Repeat("a", 200))
	p := prog.MustCompile(pattern)
	m := New(p)
	st := NewState()
	m.Reset(st, len(input))
	if !m.CanMemoize(len(input)) {
		t.Fatal("expected memoisation for a small input")
	}
	for start := 0; start <= len(input); start++ {
		if end := m.MatchFrom(st, input, start, 0); end != -1 {
			t.Fatalf("unexpected match at %d", start)
		}
	}
}

// TestLongGreedyRunDoesNotRecurse exercises a greedy run far longer than any
// recursion budget, with memoisation disabled.
func TestLongGreedyRunDoesNotRecurse(t *testing.T) {
	input := []byte(strings.Repeat("x", 1<<20) + "y")
	p := prog.MustCompile(".*y")
	m := NewWithLimit(p, 0)
	st := NewState()
	m.Reset(st, len(input))
	if end := m.MatchFrom(st, input, 0, 0); end != len(input) {
		t.Errorf("end = %d, want %d", end, len(input))
	}
}

func TestCanMemoize(t *testing.T) {
	m := NewWithLimit(prog.MustCompile("ab"), 40)
	// 4 items * (len+1)
	if !m.CanMemoize(9) {
		t.Error("40 bits should fit 4 items over 9 bytes")
	}
	if m.CanMemoize(10) {
		t.Error("44 bits should not fit in 40")
	}
}
