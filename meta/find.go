package meta

import (
	"sync/atomic"
)

// Find returns the leftmost match in haystack, or nil if there is none.
//
// For every start offset the longest match the greedy backtracking rules
// produce is reported, so `a+` finds "aaa" in "baaa" and `a*` finds the
// empty match at offset 0.
func (e *Engine) Find(haystack []byte) *Match {
	return e.FindAt(haystack, 0)
}

// FindAt returns the leftmost match starting at or after offset at.
//
// Offsets are absolute: ^ is satisfied only at offset 0 of haystack, never
// at at > 0, so scanning a haystack with successive FindAt calls does not
// produce spurious anchored matches.
func (e *Engine) FindAt(haystack []byte, at int) *Match {
	start, end, found := e.FindIndicesAt(haystack, at)
	if !found {
		return nil
	}
	return NewMatch(start, end, haystack)
}

// FindIndices returns the bounds of the leftmost match without allocating
// a Match.
func (e *Engine) FindIndices(haystack []byte) (start, end int, found bool) {
	return e.FindIndicesAt(haystack, 0)
}

// FindIndicesAt returns the bounds of the leftmost match starting at or
// after offset at.
func (e *Engine) FindIndicesAt(haystack []byte, at int) (start, end int, found bool) {
	if e.prefilter != nil && e.prefilter.IsComplete() {
		atomic.AddUint64(&e.stats.Searches, 1)
		return e.findIndicesComplete(haystack, at)
	}

	state := e.getSearchState(haystack)
	defer e.putSearchState(state)
	return e.findIndicesAtWithState(haystack, at, state)
}

// findIndicesAtWithState is FindIndicesAt with caller-provided state. The
// state must have been prepared for haystack by getSearchState; FindAll and
// Count prepare it once and reuse it for every step.
func (e *Engine) findIndicesAtWithState(haystack []byte, at int, state *SearchState) (int, int, bool) {
	atomic.AddUint64(&e.stats.Searches, 1)

	if at < 0 || at > len(haystack) {
		return -1, -1, false
	}

	if e.anchored {
		if at > 0 {
			return -1, -1, false
		}
		atomic.AddUint64(&e.stats.Attempts, 1)
		if end := e.matcher.MatchFrom(state.backtrack, haystack, 0, 0); end >= 0 {
			return 0, end, true
		}
		return -1, -1, false
	}

	if e.prefilter == nil {
		return e.findIndicesScan(haystack, at, state)
	}
	if e.prefilter.IsComplete() {
		return e.findIndicesComplete(haystack, at)
	}
	return e.findIndicesPrefilter(haystack, at, state)
}

// findIndicesComplete answers a plain literal pattern from the prefilter:
// every candidate is a match of known length.
func (e *Engine) findIndicesComplete(haystack []byte, at int) (int, int, bool) {
	if at < 0 || at > len(haystack) {
		return -1, -1, false
	}
	pos := e.prefilter.Find(haystack, at)
	if pos < 0 {
		return -1, -1, false
	}
	atomic.AddUint64(&e.stats.PrefilterCandidates, 1)
	atomic.AddUint64(&e.stats.PrefilterHits, 1)
	return pos, pos + e.prefilter.LiteralLen(), true
}

// findIndicesPrefilter tries only the offsets the prefilter reports. Every
// match starts with one of the prefixes, so skipped offsets cannot match.
// If the tracker switches the prefilter off the search continues with a
// plain scan from the next untried offset.
func (e *Engine) findIndicesPrefilter(haystack []byte, at int, state *SearchState) (int, int, bool) {
	tracker := state.tracker
	var candidates, hits uint64
	defer func() {
		atomic.AddUint64(&e.stats.PrefilterCandidates, candidates)
		atomic.AddUint64(&e.stats.PrefilterHits, hits)
		atomic.AddUint64(&e.stats.Attempts, candidates)
	}()

	if !tracker.IsActive() {
		return e.findIndicesScan(haystack, at, state)
	}
	for pos := at; pos <= len(haystack); {
		cand := tracker.Find(haystack, pos)
		if cand < 0 {
			return -1, -1, false
		}
		candidates++
		if !tracker.IsActive() {
			atomic.AddUint64(&e.stats.PrefilterAbandoned, 1)
		}

		if end := e.matcher.MatchFrom(state.backtrack, haystack, cand, 0); end >= 0 {
			tracker.ConfirmMatch()
			hits++
			return cand, end, true
		}
		pos = cand + 1
		if !tracker.IsActive() {
			return e.findIndicesScan(haystack, pos, state)
		}
	}
	return -1, -1, false
}

// findIndicesScan tries every offset from at to len(haystack).
func (e *Engine) findIndicesScan(haystack []byte, at int, state *SearchState) (int, int, bool) {
	var attempts uint64
	defer func() {
		atomic.AddUint64(&e.stats.Attempts, attempts)
	}()

	for pos := at; pos <= len(haystack); pos++ {
		attempts++
		if end := e.matcher.MatchFrom(state.backtrack, haystack, pos, 0); end >= 0 {
			return pos, end, true
		}
	}
	return -1, -1, false
}
