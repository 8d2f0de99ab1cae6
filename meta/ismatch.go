package meta

import (
	"sync/atomic"
)

// IsMatch reports whether the pattern matches anywhere in haystack.
//
// Example:
//
//	engine, _ := meta.Compile(`\d+`)
//	engine.IsMatch([]byte("abc123")) // true
func (e *Engine) IsMatch(haystack []byte) bool {
	_, _, found := e.FindIndicesAt(haystack, 0)
	return found
}

// GlobMatch reports whether the pattern matches at offset 0 of name. Only
// that one offset is tried.
//
// A name starting with '.' is a hidden file in shell convention: it
// matches only if the pattern's first real item (after ^) is a literal
// '.'. Thus the glob "*" rejects ".profile" while ".*" accepts it.
//
// Example:
//
//	engine, _ := meta.Compile(glob.Convert("*.go"))
//	engine.GlobMatch([]byte("main.go")) // true
//	engine.GlobMatch([]byte(".go"))     // false
func (e *Engine) GlobMatch(name []byte) bool {
	atomic.AddUint64(&e.stats.Searches, 1)

	if len(name) > 0 && name[0] == '.' && !e.dotFirst {
		return false
	}

	state := e.getSearchState(name)
	defer e.putSearchState(state)

	atomic.AddUint64(&e.stats.Attempts, 1)
	return e.matcher.MatchFrom(state.backtrack, name, 0, 0) >= 0
}
