// Package syntax turns pattern text into tokens for the compiler.
//
// It performs two steps: ExpandRanges rewrites `a-z` style ranges inside
// bracket groups into explicit member lists, and Lex splits the expanded
// text into a flat token list. Both report malformed input as *Error.
package syntax

// ErrorCode describes a failure to lex a pattern.
type ErrorCode string

// Compile-time error codes.
const (
	ErrMissingBracket        ErrorCode = "missing closing ]"
	ErrEmptyClass            ErrorCode = "empty character class"
	ErrTrailingBackslash     ErrorCode = "trailing backslash at end of expression"
	ErrUnsupported           ErrorCode = "unsupported construct"
	ErrInvalidRange          ErrorCode = "invalid character class range"
	ErrMissingRepeatArgument ErrorCode = "missing argument to repetition operator"
)

func (e ErrorCode) Error() string {
	return string(e)
}

func (e ErrorCode) String() string {
	return string(e)
}

// Error describes a failure to lex a pattern and names the offending text.
type Error struct {
	Code ErrorCode
	Expr string
}

func (e *Error) Error() string {
	return "error parsing pattern: " + e.Code.String() + ": `" + e.Expr + "`"
}

// Unwrap returns the error code so callers can use errors.Is.
func (e *Error) Unwrap() error {
	return e.Code
}

// unsupportedName names the feature a reserved byte would introduce.
func unsupportedName(c byte) string {
	switch c {
	case '(', ')':
		return "grouping"
	case '|':
		return "alternation"
	default:
		return "counted repetition"
	}
}
