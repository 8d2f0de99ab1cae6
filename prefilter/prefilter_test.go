package prefilter

import (
	"strings"
	"testing"

	"github.com/coregx/globre/literal"
	"github.com/coregx/globre/prog"
)

func build(t *testing.T, pattern string) Prefilter {
	t.Helper()
	return Build(literal.ExtractPrefixes(prog.MustCompile(pattern), literal.DefaultConfig()))
}

func TestBuildSelectsStrategy(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"a", "*prefilter.Memchr"},
		{"a*b", ""},
		{"[ab]x*", "*prefilter.Memchr2"},
		{"[abc]+", "*prefilter.Memchr3"},
		{`\d+`, "*prefilter.ByteTable"},
		{"hello", "*prefilter.AhoCorasick"},
		{"[bc]at", "*prefilter.AhoCorasick"},
		{"^abc", ""},
		{".x", ""},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			pf := build(t, tt.pattern)
			got := ""
			if pf != nil {
				got = typeName(pf)
			}
			if got != tt.want {
				t.Errorf("Build(%q) = %s, want %s", tt.pattern, got, tt.want)
			}
		})
	}
}

func typeName(pf Prefilter) string {
	switch pf.(type) {
	case *Memchr:
		return "*prefilter.Memchr"
	case *Memchr2:
		return "*prefilter.Memchr2"
	case *Memchr3:
		return "*prefilter.Memchr3"
	case *ByteTable:
		return "*prefilter.ByteTable"
	case *AhoCorasick:
		return "*prefilter.AhoCorasick"
	default:
		return "unknown"
	}
}

func TestFind(t *testing.T) {
	tests := []struct {
		pattern  string
		haystack string
		start    int
		want     int
	}{
		{"a", "xxa", 0, 2},
		{"a", "xxa", 3, -1},
		{"[ab]x*", "zzbza", 0, 2},
		{"[ab]x*", "zzbza", 3, 4},
		{"[abc]+", "zzzc", 0, 3},
		{`\d+`, "abc7", 0, 3},
		{"hello", "say hello", 0, 4},
		{"hello", "say hello", 5, -1},
		{"[bc]at", "a bat and a cat", 3, 12},
		{"[bc]at", "", 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.haystack, func(t *testing.T) {
			pf := build(t, tt.pattern)
			if got := pf.Find([]byte(tt.haystack), tt.start); got != tt.want {
				t.Errorf("Find(%q, %d) = %d, want %d", tt.haystack, tt.start, got, tt.want)
			}
		})
	}
}

func TestCompleteness(t *testing.T) {
	if pf := build(t, "a"); !pf.IsComplete() || pf.LiteralLen() != 1 {
		t.Errorf("a: complete %v len %d", pf.IsComplete(), pf.LiteralLen())
	}
	if pf := build(t, "hello"); !pf.IsComplete() || pf.LiteralLen() != 5 {
		t.Errorf("hello: complete %v len %d", pf.IsComplete(), pf.LiteralLen())
	}
	for _, pattern := range []string{"a+", "[bc]at", "hello$", `\d`} {
		if pf := build(t, pattern); pf.IsComplete() || pf.LiteralLen() != 0 {
			t.Errorf("%s: complete %v len %d", pattern, pf.IsComplete(), pf.LiteralLen())
		}
	}
}

func TestTrackerDisablesIneffectivePrefilter(t *testing.T) {
	pf := build(t, "a")
	tr := NewTrackerWithConfig(pf, TrackerConfig{CheckInterval: 4, MinEfficiency: 0.5, WarmupPeriod: 8})
	haystack := []byte(strings.Repeat("a", 100))

	pos := 0
	for i := 0; i < 12 && tr.IsActive(); i++ {
		pos = tr.Find(haystack, pos) + 1
	}
	if tr.IsActive() {
		t.Fatal("tracker still active with zero confirms")
	}
	if got := tr.Find(haystack, 0); got != -1 {
		t.Errorf("disabled tracker Find = %d, want -1", got)
	}
	candidates, confirms, eff, active := tr.Stats()
	if candidates != 8 || confirms != 0 || eff != 0 || active {
		t.Errorf("Stats = %d %d %v %v", candidates, confirms, eff, active)
	}

	tr.Reset()
	if !tr.IsActive() || tr.Find(haystack, 0) != 0 {
		t.Error("Reset did not re-enable the tracker")
	}
}

func TestTrackerStaysActiveWhenConfirmed(t *testing.T) {
	tr := NewTrackerWithConfig(build(t, "a"), TrackerConfig{CheckInterval: 1, MinEfficiency: 0.5, WarmupPeriod: 2})
	haystack := []byte("aaaa")
	for pos := 0; pos < len(haystack); pos++ {
		if tr.Find(haystack, pos) < 0 {
			t.Fatal("unexpected miss")
		}
		tr.ConfirmMatch()
	}
	if !tr.IsActive() {
		t.Error("tracker disabled despite full efficiency")
	}
}

func TestNewTrackerNil(t *testing.T) {
	if NewTracker(nil) != nil {
		t.Error("NewTracker(nil) != nil")
	}
}
