package meta

import (
	"sync"

	"github.com/coregx/globre/backtrack"
	"github.com/coregx/globre/prefilter"
)

// SearchState holds per-search mutable state. It is obtained from a
// sync.Pool so the same Engine can serve concurrent searches.
//
// A SearchState is NOT thread-safe and must not be shared between goroutines.
type SearchState struct {
	// backtrack holds the memo bit vector and the greedy offset stack.
	backtrack *backtrack.State

	// tracker follows prefilter effectiveness over one search, or over all
	// steps of one FindAll/Count. nil when the engine has no prefilter.
	tracker *prefilter.Tracker
}

func newSearchState(pf prefilter.Prefilter) *SearchState {
	return &SearchState{
		backtrack: backtrack.NewState(),
		tracker:   prefilter.NewTracker(pf),
	}
}

// reset prepares the SearchState for reuse.
// Called when returning state to the pool.
func (s *SearchState) reset() {
	if s.tracker != nil {
		s.tracker.Reset()
	}
}

// searchStatePool manages a pool of SearchState instances for thread-safe reuse.
// This follows the stdlib regexp pattern of using sync.Pool for concurrent safety.
type searchStatePool struct {
	pool sync.Pool

	prefilter prefilter.Prefilter
}

func newSearchStatePool(pf prefilter.Prefilter) *searchStatePool {
	p := &searchStatePool{prefilter: pf}
	p.pool = sync.Pool{
		New: func() any {
			return newSearchState(p.prefilter)
		},
	}
	return p
}

// get retrieves a SearchState from the pool, creating one if necessary.
func (p *searchStatePool) get() *SearchState {
	return p.pool.Get().(*SearchState)
}

// put returns a SearchState to the pool for reuse.
func (p *searchStatePool) put(state *SearchState) {
	if state == nil {
		return
	}
	state.reset()
	p.pool.Put(state)
}
