// Package glob translates shell-style filename wildcards into the pattern
// language understood by package prog.
//
// The translation is:
//
//	*      .*
//	?      .
//	.      \.
//	[...]  copied unchanged
//	\x     the byte x, escaped if it is pattern syntax
//
// Bytes that would otherwise be pattern syntax are escaped, and the result
// is anchored with ^ and $. Hidden-file handling is not part of the
// translation; it is applied when matching (see meta.Engine.GlobMatch).
package glob

import (
	"strings"

	"github.com/coregx/globre/prog"
)

// EmptyPattern is the translation of the empty glob. It matches any name
// that does not start with a dot.
const EmptyPattern = `^[^.]*$`

// Convert translates a glob into a pattern.
//
// A bracket group is copied through when it is closed and has at least one
// member; an escaped ] inside it does not close it. An unterminated or empty
// group is taken literally, so "[" becomes `\[`.
//
// Example:
//
//	glob.Convert("*.go")    // `^.*\.go$`
//	glob.Convert("[ab]?.c") // `^[ab].\.c$`
func Convert(g string) string {
	if g == "" {
		return EmptyPattern
	}

	var b strings.Builder
	b.Grow(2*len(g) + 2)
	b.WriteByte('^')

	for i := 0; i < len(g); i++ {
		c := g[i]
		switch c {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteByte('.')
		case '\\':
			if i+1 < len(g) {
				i++
				writeLiteral(&b, g[i])
			} else {
				b.WriteString(`\\`)
			}
		case '[':
			if end := groupEnd(g, i); end > 0 {
				b.WriteString(g[i : end+1])
				i = end
			} else {
				b.WriteString(`\[`)
			}
		default:
			writeLiteral(&b, c)
		}
	}

	b.WriteByte('$')
	return b.String()
}

// Compile translates g and compiles the result.
func Compile(g string) (*prog.Prog, error) {
	return prog.Compile(Convert(g))
}

// groupEnd returns the index of the ] closing the group opened at g[start],
// or -1 if the group is unterminated or has no members.
func groupEnd(g string, start int) int {
	i := start + 1
	if i < len(g) && g[i] == '^' {
		i++
	}
	first := i
	for ; i < len(g); i++ {
		switch g[i] {
		case '\\':
			i++
		case ']':
			if i == first {
				return -1
			}
			return i
		}
	}
	return -1
}

// writeLiteral writes c so that it matches only itself.
func writeLiteral(b *strings.Builder, c byte) {
	switch c {
	case '*', '?', '[', '\\':
		b.WriteByte('\\')
	default:
		if isSpecial(c) {
			b.WriteByte('\\')
		}
	}
	b.WriteByte(c)
}

// isSpecial reports whether c has a meaning in the pattern language outside
// bracket groups, other than the wildcards handled by Convert.
func isSpecial(c byte) bool {
	switch c {
	case '.', '+', '^', '$', '(', ')', '|', '{', '}', ']':
		return true
	}
	return false
}
