package prog

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/coregx/globre/syntax"
)

func ops(p *Prog) []Op {
	out := make([]Op, p.NumItems())
	for i := range out {
		out[i] = p.Op(i)
	}
	return out
}

// TestSourcePreserved verifies the Begin item reproduces the pattern verbatim.
func TestSourcePreserved(t *testing.T) {
	patterns := []string{
		"", "a", "ab", "abc", "abcd", "abcde",
		`^[a-z]+\.txt$`, `\d\D\w\W\s\S`, "x?y*z+", `[^\]]`, "a.b.c.d.e.f.g",
	}
	for _, pattern := range patterns {
		p, err := Compile(pattern)
		if err != nil {
			t.Fatalf("Compile(%q): %v", pattern, err)
		}
		if got := p.Source(); got != pattern {
			t.Errorf("Source() = %q, want %q", got, pattern)
		}
		if got := p.String(); got != pattern {
			t.Errorf("String() = %q, want %q", got, pattern)
		}
	}
}

// TestQuantifierPrecedesItem checks the pass 2 ordering.
func TestQuantifierPrecedesItem(t *testing.T) {
	tests := []struct {
		pattern string
		want    []Op
	}{
		{"", []Op{OpBegin, OpEnd}},
		{"a", []Op{OpBegin, OpLiteral, OpEnd}},
		{"a*b", []Op{OpBegin, OpStar, OpLiteral, OpLiteral, OpEnd}},
		{"ab+c", []Op{OpBegin, OpLiteral, OpPlus, OpLiteral, OpLiteral, OpEnd}},
		{"[xy]?z", []Op{OpBegin, OpQuest, OpClass, OpLiteral, OpEnd}},
		{`^\d+$`, []Op{OpBegin, OpBOL, OpPlus, OpDigit, OpEOL, OpEnd}},
		{".*", []Op{OpBegin, OpStar, OpAny, OpEnd}},
		{`[^a]*\n?`, []Op{OpBegin, OpStar, OpNotClass, OpQuest, OpNewline, OpEnd}},
		{`\t\f`, []Op{OpBegin, OpTab, OpFormFeed, OpEnd}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			p := MustCompile(tt.pattern)
			if got := ops(p); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ops = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestPass1Layout checks that pass 1 keeps quantifiers trailing and closes
// groups with GroupEnd markers.
func TestPass1Layout(t *testing.T) {
	toks, err := syntax.Lex("a*[bc]")
	if err != nil {
		t.Fatal(err)
	}
	scratch := layout("a*[bc]", toks, 6)

	var got []Op
	for at := beginWidth("a*[bc]"); ; {
		op := Op(scratch[at])
		got = append(got, op)
		if op == OpEnd {
			break
		}
		at += Width(scratch, at)
	}
	want := []Op{OpLiteral, OpGroupEnd, OpStar, OpClass, OpGroupEnd, OpEnd}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("pass 1 ops = %v, want %v", got, want)
	}
	if len(scratch) > scratchSize("a*[bc]", 6) {
		t.Errorf("scratch has %d slots, estimate %d", len(scratch), scratchSize("a*[bc]", 6))
	}
}

// TestFinalBufferExactSize checks that pass 2 allocates exactly what it uses.
func TestFinalBufferExactSize(t *testing.T) {
	for _, pattern := range []string{"", "a*b", "[a-z]+x?", `^\w+\.go$`} {
		expanded, _ := syntax.ExpandRanges(pattern)
		toks, _ := syntax.Lex(expanded)
		final := reorganize(layout(pattern, toks, len(expanded)))
		if len(final) != cap(final) {
			t.Errorf("%q: len %d, cap %d", pattern, len(final), cap(final))
		}
		if final[len(final)-1] != 0 || Op(final[len(final)-2]) != OpEnd {
			t.Errorf("%q: buffer does not end with END and sentinel", pattern)
		}
	}
}

// TestCountMatchesMembers checks that every item's count equals its members.
func TestCountMatchesMembers(t *testing.T) {
	p := MustCompile("[a-e]x[^0-9_]")
	tests := []struct {
		item    int
		op      Op
		members string
	}{
		{1, OpClass, "abcde"},
		{2, OpLiteral, "x"},
		{3, OpNotClass, "0123456789_"},
	}
	for _, tt := range tests {
		if p.Op(tt.item) != tt.op {
			t.Errorf("item %d op = %v, want %v", tt.item, p.Op(tt.item), tt.op)
		}
		if p.Count(tt.item) != len(tt.members) {
			t.Errorf("item %d count = %d, want %d", tt.item, p.Count(tt.item), len(tt.members))
		}
		if got := string(p.Members(tt.item)); got != tt.members {
			t.Errorf("item %d members = %q, want %q", tt.item, got, tt.members)
		}
	}
	if !p.Contains(3, '5') || p.Contains(3, 'a') {
		t.Error("Contains disagrees with members")
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		pattern string
		code    syntax.ErrorCode
	}{
		{"[", syntax.ErrMissingBracket},
		{"[]", syntax.ErrEmptyClass},
		{`ab\`, syntax.ErrTrailingBackslash},
		{"(ab)", syntax.ErrUnsupported},
		{"a|b", syntax.ErrUnsupported},
		{"a{1,2}", syntax.ErrUnsupported},
		{"[b-a]", syntax.ErrInvalidRange},
		{"+", syntax.ErrMissingRepeatArgument},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			p, err := Compile(tt.pattern)
			if p != nil {
				t.Fatalf("Compile(%q) returned a buffer", tt.pattern)
			}
			if !errors.Is(err, tt.code) {
				t.Fatalf("Compile(%q) error = %v, want %v", tt.pattern, err, tt.code)
			}
			var cerr *CompileError
			if !errors.As(err, &cerr) || cerr.Pattern != tt.pattern {
				t.Errorf("Compile(%q) error %v is not a CompileError for the pattern", tt.pattern, err)
			}
		})
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustCompile did not panic")
		}
		if msg, ok := r.(string); !ok || !strings.HasPrefix(msg, "prog: Compile(`[`)") {
			t.Errorf("panic = %v", r)
		}
	}()
	MustCompile("[")
}

func TestWidth(t *testing.T) {
	slots := []uint32{uint32(OpClass), 3, 'a', 'b', 'c', uint32(OpStar), uint32(OpEnd), 0}
	if w := Width(slots, 0); w != 5 {
		t.Errorf("class width = %d, want 5", w)
	}
	if w := Width(slots, 5); w != 1 {
		t.Errorf("star width = %d, want 1", w)
	}
	if w := Width(slots, 7); w != 0 {
		t.Errorf("sentinel width = %d, want 0", w)
	}
	if w := Width([]uint32{uint32(OpBegin), 5}, 0); w != 4 {
		t.Errorf("begin width = %d, want 4", w)
	}
	if w := Width([]uint32{uint32(OpRepeat)}, 0); w != 1 {
		t.Errorf("repeat width = %d, want 1", w)
	}
}

func TestNewProgRejectsCorruptBuffers(t *testing.T) {
	bad := map[string][]uint32{
		"no sentinel":   {uint32(OpBegin), 0, uint32(OpEnd)},
		"group end":     {uint32(OpBegin), 0, uint32(OpGroupEnd), uint32(OpEnd), 0},
		"bad opcode":    {uint32(OpBegin), 0, 99, uint32(OpEnd), 0},
		"no begin":      {uint32(OpAny), uint32(OpEnd), 0},
		"truncated run": {uint32(OpBegin), 0, uint32(OpClass), 9, uint32(OpEnd), 0},
	}
	for name, slots := range bad {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, ErrCorrupt) {
					t.Errorf("panic = %v, want ErrCorrupt", r)
				}
			}()
			newProg(slots)
		})
	}
}

func TestFirstRealItem(t *testing.T) {
	if p := MustCompile("^.a"); p.FirstRealItem() != 2 || !p.Anchored() {
		t.Errorf("^.a: first real item %d, anchored %v", p.FirstRealItem(), p.Anchored())
	}
	if p := MustCompile(".a"); p.FirstRealItem() != 1 || p.Anchored() {
		t.Errorf(".a: first real item %d, anchored %v", p.FirstRealItem(), p.Anchored())
	}
}

func TestDump(t *testing.T) {
	got := MustCompile(`^a+[xy]$`).Dump()
	want := "BEGIN \"^a+[xy]$\" (16 slots)\n" +
		"   0: BOL\n" +
		"   1: PLUS\n" +
		"   2: LITERAL \"a\"\n" +
		"   3: CLASS [xy]\n" +
		"   4: EOL\n" +
		"END\n"
	if got != want {
		t.Errorf("Dump() =\n%s\nwant\n%s", got, want)
	}
}

func TestSlotsIsCopy(t *testing.T) {
	p := MustCompile("abc")
	s := p.Slots()
	s[len(s)-5] = uint32(OpAny)
	if p.Op(p.NumItems()-2) != OpLiteral {
		t.Error("mutating Slots() changed the Prog")
	}
}
