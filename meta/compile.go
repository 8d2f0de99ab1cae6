package meta

import (
	"github.com/coregx/globre/backtrack"
	"github.com/coregx/globre/literal"
	"github.com/coregx/globre/prefilter"
	"github.com/coregx/globre/prog"
)

// Compile compiles a pattern string into an executable Engine.
//
// Steps:
//  1. Expand ranges, lex and lay out the buffer (prog.Compile)
//  2. Extract literal prefixes
//  3. Build a prefilter (if prefixes exist)
//
// Errors from step 1 are *prog.CompileError values wrapping a
// *syntax.Error.
//
// Example:
//
//	engine, err := meta.Compile(`[bc]at\d+`)
//	if err != nil {
//	    return err
//	}
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles a pattern with custom configuration.
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	p, err := prog.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return NewEngine(p, config)
}

// NewEngine builds an Engine over an already compiled buffer.
func NewEngine(p *prog.Prog, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		prog:     p,
		matcher:  backtrack.NewWithLimit(p, config.MaxVisitedBits),
		config:   config,
		anchored: p.Anchored(),
	}

	first := p.FirstRealItem()
	e.dotFirst = p.Op(first) == prog.OpLiteral && p.Member(first, 0) == '.'

	if config.EnablePrefilter {
		e.prefixes = literal.ExtractPrefixes(p, literal.Config{
			MaxLiterals:   config.MaxPrefixLiterals,
			MaxLiteralLen: config.MaxPrefixLen,
		})
		e.prefilter = prefilter.Build(e.prefixes)
	}

	e.statePool = newSearchStatePool(e.prefilter)
	return e, nil
}
