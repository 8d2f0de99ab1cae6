package syntax

import "strings"

// member is one byte of a bracket group as written in the source.
// Escaped members keep their backslash so the lexer sees them unchanged.
type member struct {
	raw     string
	escaped bool
}

// ExpandRanges rewrites every `lo-hi` range inside a bracket group into the
// explicit list of bytes it covers. Text outside bracket groups is copied
// unchanged, as are escaped members inside groups. A '-' that is first or
// last in a group, or adjacent to an escaped member, is an ordinary member.
//
// Expanded backslash and ']' members are written escaped so that the result
// lexes back to the same member set.
func ExpandRanges(s string) (string, error) {
	if strings.IndexByte(s, '[') < 0 {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == '\\':
			if i+1 < len(s) {
				b.WriteString(s[i : i+2])
				i += 2
				continue
			}
			// Lex reports the dangling escape.
			b.WriteByte(c)
			i++
		case c == '[':
			next, err := expandGroup(&b, s, i)
			if err != nil {
				return "", err
			}
			i = next
		default:
			b.WriteByte(c)
			i++
		}
	}

	return b.String(), nil
}

// expandGroup expands the group opening at s[start] and returns the index
// just past its closing bracket.
func expandGroup(b *strings.Builder, s string, start int) (int, error) {
	i := start + 1
	b.WriteByte('[')
	if i < len(s) && s[i] == '^' {
		b.WriteByte('^')
		i++
	}

	var members []member
	closed := false
	for i < len(s) {
		c := s[i]
		if c == ']' {
			closed = true
			i++
			break
		}
		if c == '\\' {
			if i+1 >= len(s) {
				return 0, &Error{Code: ErrTrailingBackslash, Expr: s[start:]}
			}
			members = append(members, member{raw: s[i : i+2], escaped: true})
			i += 2
			continue
		}
		members = append(members, member{raw: s[i : i+1]})
		i++
	}

	if !closed {
		return 0, &Error{Code: ErrMissingBracket, Expr: s[start:]}
	}
	if len(members) == 0 {
		return 0, &Error{Code: ErrEmptyClass, Expr: s[start:i]}
	}

	for j := 0; j < len(members); j++ {
		m := members[j]
		if isRange(members, j) {
			lo, hi := m.raw[0], members[j+2].raw[0]
			if lo > hi {
				return 0, &Error{Code: ErrInvalidRange, Expr: string([]byte{lo, '-', hi})}
			}
			for c := int(lo); c <= int(hi); c++ {
				writeMember(b, byte(c))
			}
			j += 2
			continue
		}
		b.WriteString(m.raw)
	}
	b.WriteByte(']')

	return i, nil
}

// isRange reports whether members[j:j+3] spells an unescaped lo-hi range.
func isRange(members []member, j int) bool {
	if j+2 >= len(members) {
		return false
	}
	lo, dash, hi := members[j], members[j+1], members[j+2]
	return !lo.escaped && !dash.escaped && dash.raw == "-" && !hi.escaped
}

func writeMember(b *strings.Builder, c byte) {
	if c == '\\' || c == ']' {
		b.WriteByte('\\')
	}
	b.WriteByte(c)
}
