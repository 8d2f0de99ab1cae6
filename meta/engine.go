package meta

import (
	"sync/atomic"

	"github.com/coregx/globre/backtrack"
	"github.com/coregx/globre/literal"
	"github.com/coregx/globre/prefilter"
	"github.com/coregx/globre/prog"
)

// Engine searches input with one compiled pattern.
//
// Thread safety: the buffer, matcher and prefilter are immutable after
// construction. Per-search mutable state comes from a sync.Pool, so any
// number of goroutines may search with the same Engine concurrently.
//
// Example:
//
//	engine, err := meta.Compile(`\d+`)
//	if err != nil {
//	    return err
//	}
//	match := engine.Find([]byte("order 66"))
//	if match != nil {
//	    println(match.String()) // "66"
//	}
type Engine struct {
	// IMPORTANT: stats MUST be first field for 8-byte alignment of the
	// atomically updated uint64 counters on 32-bit platforms.
	stats Stats

	prog      *prog.Prog
	matcher   *backtrack.Matcher
	prefixes  *literal.Seq
	prefilter prefilter.Prefilter
	config    Config
	statePool *searchStatePool

	// anchored is true if the pattern starts with ^; only offset 0 is tried.
	anchored bool

	// dotFirst is true if the first real item is a literal '.', which
	// lets GlobMatch accept hidden names.
	dotFirst bool
}

// Stats tracks execution statistics for performance analysis.
type Stats struct {
	// Searches counts search calls (IsMatch, Find*, GlobMatch, and each
	// step of FindAll and Count)
	Searches uint64

	// Attempts counts match attempts at a single start offset
	Attempts uint64

	// PrefilterCandidates counts start offsets reported by the prefilter
	PrefilterCandidates uint64

	// PrefilterHits counts candidates that turned out to be matches
	PrefilterHits uint64

	// PrefilterAbandoned counts how often a search switched the prefilter
	// off for producing too many false candidates. A FindAll or Count call
	// switches it off at most once.
	PrefilterAbandoned uint64

	// MemoizedSearches counts haystacks searched with the memo bit vector
	MemoizedSearches uint64
}

// Prog returns the compiled buffer.
func (e *Engine) Prog() *prog.Prog {
	return e.prog
}

// Prefilter returns the prefilter, or nil if the pattern has none.
func (e *Engine) Prefilter() prefilter.Prefilter {
	return e.prefilter
}

// Prefixes returns the literal prefixes the prefilter was built from.
// It is nil when prefiltering is disabled.
func (e *Engine) Prefixes() *literal.Seq {
	return e.prefixes
}

// IsStartAnchored returns true if the pattern is anchored at the start (^).
func (e *Engine) IsStartAnchored() bool {
	return e.anchored
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.config
}

// HeapBytes returns the heap memory held by the compiled buffer and the
// prefilter. Pooled search state is not included.
func (e *Engine) HeapBytes() int {
	n := e.prog.NumSlots() * 4
	if e.prefilter != nil {
		n += e.prefilter.HeapBytes()
	}
	return n
}

// Stats returns a snapshot of the execution statistics.
func (e *Engine) Stats() Stats {
	return Stats{
		Searches:            atomic.LoadUint64(&e.stats.Searches),
		Attempts:            atomic.LoadUint64(&e.stats.Attempts),
		PrefilterCandidates: atomic.LoadUint64(&e.stats.PrefilterCandidates),
		PrefilterHits:       atomic.LoadUint64(&e.stats.PrefilterHits),
		PrefilterAbandoned:  atomic.LoadUint64(&e.stats.PrefilterAbandoned),
		MemoizedSearches:    atomic.LoadUint64(&e.stats.MemoizedSearches),
	}
}

// ResetStats resets execution statistics to zero.
func (e *Engine) ResetStats() {
	atomic.StoreUint64(&e.stats.Searches, 0)
	atomic.StoreUint64(&e.stats.Attempts, 0)
	atomic.StoreUint64(&e.stats.PrefilterCandidates, 0)
	atomic.StoreUint64(&e.stats.PrefilterHits, 0)
	atomic.StoreUint64(&e.stats.PrefilterAbandoned, 0)
	atomic.StoreUint64(&e.stats.MemoizedSearches, 0)
}

// getSearchState retrieves a SearchState from the pool and prepares it for
// haystack. Caller must call putSearchState when done.
func (e *Engine) getSearchState(haystack []byte) *SearchState {
	state := e.statePool.get()
	e.matcher.Reset(state.backtrack, len(haystack))
	if e.matcher.CanMemoize(len(haystack)) {
		atomic.AddUint64(&e.stats.MemoizedSearches, 1)
	}
	return state
}

// putSearchState returns a SearchState to the pool.
func (e *Engine) putSearchState(state *SearchState) {
	e.statePool.put(state)
}
