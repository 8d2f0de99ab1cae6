// Package globre provides a small backtracking pattern matcher for Go and a
// translator from shell globs to its pattern language.
//
// The pattern language is a deliberately small regular-expression dialect:
//
//	.          any byte except newline
//	* + ?      greedy zero-or-more, one-or-more, zero-or-one of the previous item
//	^  $       start of input (first byte only), end of input or final newline (last byte only)
//	[abc] [^a-z]  byte classes with ranges
//	\d \D \w \W \s \S  digit, word and space classes and their complements
//	\n \t \f   newline, tab, form feed
//	\x         any other escaped byte is literal
//
// Grouping, alternation and counted repetition ( ( ) | { } ) are rejected at
// compile time. Matching is byte-oriented and case-sensitive.
//
// Basic usage:
//
//	p, err := globre.Compile(`[bc]at\d+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(p.FindString("the cat42 sat")) // "cat42"
//
// Glob usage:
//
//	g := globre.MustCompileGlob("*.go")
//	g.GlobMatchString("main.go")  // true
//	g.GlobMatchString(".hidden")  // false: "*" never matches a leading dot
//
// Searches never recurse on input length and remember failed attempts, so
// the work per search is bounded by the pattern size times the input length.
// A compiled *Pattern is immutable and safe for concurrent use.
package globre

import (
	"github.com/coregx/globre/glob"
	"github.com/coregx/globre/meta"
)

// Pattern is a compiled pattern.
//
// A Pattern is safe to use concurrently from multiple goroutines.
//
// Example:
//
//	p := globre.MustCompile(`hello`)
//	if p.Match([]byte("hello world")) {
//	    println("matched!")
//	}
type Pattern struct {
	engine  *meta.Engine
	pattern string
}

// Compile compiles a pattern.
//
// Returns a *prog.CompileError wrapping a *syntax.Error if the pattern is
// invalid; the syntax error codes can be checked with errors.Is.
//
// Example:
//
//	p, err := globre.Compile(`\d+-\d+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Pattern, error) {
	return CompileWithConfig(pattern, meta.DefaultConfig())
}

// MustCompile compiles a pattern and panics if it fails.
//
// Example:
//
//	var version = globre.MustCompile(`v\d+\.\d+`)
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic("regexp: Compile(`" + pattern + "`): " + err.Error())
	}
	return p
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Example:
//
//	config := globre.DefaultConfig()
//	config.EnablePrefilter = false
//	p, err := globre.CompileWithConfig(`[bc]at`, config)
func CompileWithConfig(pattern string, config meta.Config) (*Pattern, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}

	return &Pattern{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// CompileGlob translates a shell glob with ConvertGlob and compiles the
// result.
//
// Example:
//
//	g, err := globre.CompileGlob("report-??.[ct]sv")
func CompileGlob(g string) (*Pattern, error) {
	return Compile(glob.Convert(g))
}

// MustCompileGlob is like CompileGlob but panics if the glob cannot be
// compiled.
func MustCompileGlob(g string) *Pattern {
	p, err := CompileGlob(g)
	if err != nil {
		panic("regexp: CompileGlob(`" + g + "`): " + err.Error())
	}
	return p
}

// DefaultConfig returns the default configuration for compilation.
//
// Example:
//
//	config := globre.DefaultConfig()
//	config.MaxVisitedBits = 0 // no memoisation
//	p, _ := globre.CompileWithConfig("a*a*b", config)
func DefaultConfig() meta.Config {
	return meta.DefaultConfig()
}

// ConvertGlob translates a shell glob into an anchored pattern.
//
// Example:
//
//	globre.ConvertGlob("*.txt") // `^.*\.txt$`
//	globre.ConvertGlob("")      // `^[^.]*$`
func ConvertGlob(g string) string {
	return glob.Convert(g)
}

// MatchString reports whether s contains any match of pattern. More
// complicated queries need to use Compile and the full Pattern interface.
func MatchString(pattern, s string) (bool, error) {
	p, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return p.MatchString(s), nil
}

// QuoteMeta returns a string that escapes all pattern metacharacters
// inside the argument text; the returned string is a pattern matching the
// literal text.
//
// Example:
//
//	escaped := globre.QuoteMeta("a.b*c")
//	// escaped = `a\.b\*c`
func QuoteMeta(s string) string {
	const special = `\.+*?()|[]{}^$`

	n := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, len(s)+n)
	j := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			buf[j] = '\\'
			j++
		}
		buf[j] = s[i]
		j++
	}
	return string(buf)
}

// isSpecial returns true if c is in the special characters string.
func isSpecial(c byte, special string) bool {
	for i := 0; i < len(special); i++ {
		if c == special[i] {
			return true
		}
	}
	return false
}

// String returns the source text used to compile the pattern.
func (p *Pattern) String() string {
	return p.pattern
}

// Source returns the pattern text as recorded in the compiled buffer. It is
// always equal to String.
func (p *Pattern) Source() string {
	return p.engine.Prog().Source()
}

// Dump returns a human-readable listing of the compiled buffer, one item
// per line, for debugging. The format may change between versions.
//
// Example:
//
//	fmt.Print(globre.MustCompile(`^a+$`).Dump())
//	// BEGIN "^a+$" (11 slots)
//	//    0: BOL
//	//    1: PLUS
//	//    2: LITERAL "a"
//	//    3: EOL
//	// END
func (p *Pattern) Dump() string {
	return p.engine.Prog().Dump()
}

// Stats returns execution statistics of the underlying engine.
func (p *Pattern) Stats() meta.Stats {
	return p.engine.Stats()
}

// ResetStats resets execution statistics to zero.
func (p *Pattern) ResetStats() {
	p.engine.ResetStats()
}
