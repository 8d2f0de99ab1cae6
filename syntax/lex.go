package syntax

// Kind identifies a token.
type Kind uint8

// Token kinds.
const (
	KindLiteral  Kind = iota // one literal byte
	KindBOL                  // ^ at offset 0
	KindEOL                  // $ at end of pattern
	KindAny                  // .
	KindDigit                // \d
	KindNotDigit             // \D
	KindWord                 // \w
	KindNotWord              // \W
	KindSpace                // \s
	KindNotSpace             // \S
	KindNewline              // \n
	KindTab                  // \t
	KindFormFeed             // \f
	KindClass                // [...]
	KindNotClass             // [^...]
	KindStar                 // *
	KindPlus                 // +
	KindQuest                // ?
)

var kindNames = [...]string{
	KindLiteral:  "Literal",
	KindBOL:      "BOL",
	KindEOL:      "EOL",
	KindAny:      "Any",
	KindDigit:    "Digit",
	KindNotDigit: "NotDigit",
	KindWord:     "Word",
	KindNotWord:  "NotWord",
	KindSpace:    "Space",
	KindNotSpace: "NotSpace",
	KindNewline:  "Newline",
	KindTab:      "Tab",
	KindFormFeed: "FormFeed",
	KindClass:    "Class",
	KindNotClass: "NotClass",
	KindStar:     "Star",
	KindPlus:     "Plus",
	KindQuest:    "Quest",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsQuantifier reports whether k repeats the token before it.
func (k Kind) IsQuantifier() bool {
	return k == KindStar || k == KindPlus || k == KindQuest
}

// Token is one lexical element of an expanded pattern.
type Token struct {
	Kind Kind

	// Byte holds the literal byte for KindLiteral.
	Byte byte

	// Members holds the class members for KindClass and KindNotClass,
	// in source order, duplicates included.
	Members []byte
}

// escapeKinds maps the byte after a backslash to its dedicated token.
var escapeKinds = map[byte]Kind{
	'd': KindDigit,
	'D': KindNotDigit,
	'w': KindWord,
	'W': KindNotWord,
	's': KindSpace,
	'S': KindNotSpace,
	'n': KindNewline,
	't': KindTab,
	'f': KindFormFeed,
}

// Lex splits a range-expanded pattern into tokens. Quantifiers are emitted
// as their own tokens, trailing the token they repeat.
func Lex(s string) ([]Token, error) {
	toks := make([]Token, 0, len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '^':
			if i == 0 {
				toks = append(toks, Token{Kind: KindBOL})
				continue
			}
		case '$':
			if i == len(s)-1 {
				toks = append(toks, Token{Kind: KindEOL})
				continue
			}
		case '.':
			toks = append(toks, Token{Kind: KindAny})
			continue
		case '*', '+', '?':
			if !repeatable(toks) {
				return nil, &Error{Code: ErrMissingRepeatArgument, Expr: s[:i+1]}
			}
			toks = append(toks, Token{Kind: quantifierKind(c)})
			continue
		case '(', ')', '|', '{', '}':
			return nil, &Error{Code: ErrUnsupported, Expr: unsupportedName(c) + " " + string(c)}
		case '[':
			tok, end, err := lexClass(s, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			i = end
			continue
		case '\\':
			if i+1 >= len(s) {
				return nil, &Error{Code: ErrTrailingBackslash, Expr: `\`}
			}
			i++
			if k, ok := escapeKinds[s[i]]; ok {
				toks = append(toks, Token{Kind: k})
			} else {
				toks = append(toks, Token{Kind: KindLiteral, Byte: s[i]})
			}
			continue
		}
		toks = append(toks, Token{Kind: KindLiteral, Byte: c})
	}

	return toks, nil
}

// repeatable reports whether a quantifier may follow toks.
func repeatable(toks []Token) bool {
	if len(toks) == 0 {
		return false
	}
	last := toks[len(toks)-1].Kind
	return last != KindBOL && !last.IsQuantifier()
}

func quantifierKind(c byte) Kind {
	switch c {
	case '*':
		return KindStar
	case '+':
		return KindPlus
	default:
		return KindQuest
	}
}

// lexClass reads the bracket group opening at s[start] and returns the
// token and the index of its closing bracket.
func lexClass(s string, start int) (Token, int, error) {
	tok := Token{Kind: KindClass}
	i := start + 1
	if i < len(s) && s[i] == '^' {
		tok.Kind = KindNotClass
		i++
	}

	for ; i < len(s); i++ {
		c := s[i]
		switch c {
		case ']':
			if len(tok.Members) == 0 {
				return Token{}, 0, &Error{Code: ErrEmptyClass, Expr: s[start : i+1]}
			}
			return tok, i, nil
		case '\\':
			if i+1 >= len(s) {
				return Token{}, 0, &Error{Code: ErrTrailingBackslash, Expr: s[start:]}
			}
			i++
			tok.Members = append(tok.Members, classEscape(s[i]))
		default:
			tok.Members = append(tok.Members, c)
		}
	}

	return Token{}, 0, &Error{Code: ErrMissingBracket, Expr: s[start:]}
}

// classEscape returns the member byte for an escape inside a bracket group.
func classEscape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'f':
		return '\f'
	default:
		return c
	}
}
