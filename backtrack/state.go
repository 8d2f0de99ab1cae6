package backtrack

// State holds the mutable data of one search: the memo bit vector and the
// stack of greedy run offsets. A State must not be shared between goroutines.
type State struct {
	// visited is a bit vector tracking failed (item, offset) pairs.
	// Layout: bit at index (item * stride + offset).
	visited []uint64

	// stride is haystackLen + 1
	stride int

	// memo is false when the haystack is too large to memoise
	memo bool

	// offsets stacks the end offsets of greedy runs, one segment per
	// active quantifier.
	offsets []int
}

// NewState creates an empty State.
func NewState() *State {
	return &State{offsets: make([]int, 0, 64)}
}

// clear sizes the bit vector for n bits and zeroes it.
func (st *State) clear(n int) {
	words := (n + 63) / 64
	if cap(st.visited) >= words {
		st.visited = st.visited[:words]
		clear(st.visited)
		return
	}
	st.visited = make([]uint64, words)
}

// shouldVisit checks if (item, pos) has been visited and marks it if not.
// Returns true if the pair has not been tried yet.
func (st *State) shouldVisit(item, pos int) bool {
	idx := item*st.stride + pos
	word := idx / 64
	bit := uint64(1) << (idx % 64)

	if st.visited[word]&bit != 0 {
		return false
	}
	st.visited[word] |= bit
	return true
}

// unmark forgets (item, pos) after it produced a match.
func (st *State) unmark(item, pos int) {
	idx := item*st.stride + pos
	st.visited[idx/64] &^= uint64(1) << (idx % 64)
}
