package literal

import (
	"github.com/coregx/globre/internal/ascii"
	"github.com/coregx/globre/prog"
)

// Config bounds prefix extraction.
type Config struct {
	// MaxLiterals limits the number of alternative prefixes.
	// Default: 256
	MaxLiterals int

	// MaxLiteralLen limits the length of each prefix.
	// Default: 64
	MaxLiteralLen int
}

// DefaultConfig returns the default extraction limits.
func DefaultConfig() Config {
	return Config{
		MaxLiterals:   256,
		MaxLiteralLen: 64,
	}
}

// ExtractPrefixes returns the set of byte strings one of which every match
// of p starts with. The set is empty when no useful prefix exists: the
// pattern starts with ^ (only offset 0 is ever tried), or its first item
// can match the empty string or too many bytes.
//
// Items are walked from the start. A literal or a small class extends every
// prefix; an item under + contributes its first repetition and stops the
// walk; anything else stops it. When extending would exceed the limits the
// walk stops with the prefixes found so far, which remain valid.
//
// Example:
//
//	seq := literal.ExtractPrefixes(prog.MustCompile("[bc]at"), literal.DefaultConfig())
//	// seq = {"bat", "cat"}, both complete
func ExtractPrefixes(p *prog.Prog, config Config) *Seq {
	if p.Anchored() {
		return NewSeq()
	}

	prefixes := [][]byte{nil}
	complete := false

walk:
	for item := 1; ; item++ {
		op := p.Op(item)
		switch {
		case op == prog.OpEnd:
			complete = true
			break walk
		case op == prog.OpPlus:
			if set := byteSet(p, item+1); set != nil {
				prefixes, _ = extend(prefixes, set, config)
			}
			break walk
		case op == prog.OpLiteral:
			for k := range p.Count(item) {
				var ok bool
				if prefixes, ok = extend(prefixes, []byte{p.Member(item, k)}, config); !ok {
					break walk
				}
			}
		default:
			set := byteSet(p, item)
			if set == nil {
				break walk
			}
			var ok bool
			if prefixes, ok = extend(prefixes, set, config); !ok {
				break walk
			}
		}
	}

	if len(prefixes[0]) == 0 {
		return NewSeq()
	}
	lits := make([]Literal, len(prefixes))
	for i, b := range prefixes {
		lits[i] = NewLiteral(b, complete)
	}
	seq := NewSeq(lits...)
	seq.Dedup()
	return seq
}

// extend appends every byte of set to every prefix. It returns the input
// unchanged and false when the result would exceed the limits.
func extend(prefixes [][]byte, set []byte, config Config) ([][]byte, bool) {
	if len(prefixes)*len(set) > config.MaxLiterals || len(prefixes[0])+1 > config.MaxLiteralLen {
		return prefixes, false
	}
	out := make([][]byte, 0, len(prefixes)*len(set))
	for _, prefix := range prefixes {
		for _, b := range set {
			next := make([]byte, len(prefix)+1)
			copy(next, prefix)
			next[len(prefix)] = b
			out = append(out, next)
		}
	}
	return out, true
}

// byteSet returns the distinct bytes the item can start with, or nil when
// the item is not a small positive set.
func byteSet(p *prog.Prog, item int) []byte {
	switch p.Op(item) {
	case prog.OpLiteral:
		return []byte{p.Member(item, 0)}
	case prog.OpClass:
		return distinct(p.Members(item))
	case prog.OpNewline:
		return []byte{'\n'}
	case prog.OpTab:
		return []byte{'\t'}
	case prog.OpFormFeed:
		return []byte{'\f'}
	case prog.OpDigit:
		return classBytes(ascii.IsDigit)
	case prog.OpWord:
		return classBytes(ascii.IsWord)
	case prog.OpSpace:
		return classBytes(ascii.IsSpace)
	default:
		return nil
	}
}

func distinct(members []byte) []byte {
	var seen [256]bool
	out := members[:0]
	for _, b := range members {
		if !seen[b] {
			seen[b] = true
			out = append(out, b)
		}
	}
	return out
}

func classBytes(pred func(byte) bool) []byte {
	var out []byte
	for c := 0; c < 256; c++ {
		if pred(byte(c)) {
			out = append(out, byte(c))
		}
	}
	return out
}
