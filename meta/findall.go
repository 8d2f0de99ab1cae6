package meta

// FindAllIndices returns the bounds of all successive non-overlapping
// matches. If n >= 0 at most n matches are returned; n < 0 means all. The
// results slice is reused if provided (pass nil for fresh allocation).
//
// An empty match immediately after the previous non-empty match is skipped,
// as in the standard library: `a*` on "ab" yields [0 1] and [2 2].
//
// The SearchState is acquired once for the whole loop, so memoised
// failures carry over from one step to the next.
func (e *Engine) FindAllIndices(haystack []byte, n int, results [][2]int) [][2]int {
	results = results[:0]
	if n == 0 {
		return results
	}

	e.forEachMatch(haystack, n, func(start, end int) {
		results = append(results, [2]int{start, end})
	})
	return results
}

// Count returns the number of non-overlapping matches in the haystack,
// following the same rules as FindAllIndices. If n >= 0, counts at most n
// matches.
//
// Example:
//
//	engine, _ := meta.Compile(`\d+`)
//	count := engine.Count([]byte("1 2 3 4 5"), -1)
//	// count == 5
func (e *Engine) Count(haystack []byte, n int) int {
	if n == 0 {
		return 0
	}

	count := 0
	e.forEachMatch(haystack, n, func(int, int) {
		count++
	})
	return count
}

// forEachMatch calls yield for up to n (all if n < 0) successive matches.
func (e *Engine) forEachMatch(haystack []byte, n int, yield func(start, end int)) {
	state := e.getSearchState(haystack)
	defer e.putSearchState(state)

	pos := 0
	lastNonEmptyEnd := -1
	for found := 0; (n < 0 || found < n) && pos <= len(haystack); {
		start, end, ok := e.findIndicesAtWithState(haystack, pos, state)
		if !ok {
			return
		}

		if start == end && start == lastNonEmptyEnd {
			pos = start + 1
			continue
		}

		yield(start, end)
		found++

		if start != end {
			lastNonEmptyEnd = end
			pos = end
		} else {
			pos = end + 1
		}
	}
}
