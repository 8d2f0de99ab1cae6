package globre

// ReplaceAllLiteral returns a copy of src, replacing matches of the pattern
// with the replacement bytes repl. The replacement is substituted directly.
//
// Example:
//
//	p := globre.MustCompile(`\d+`)
//	result := p.ReplaceAllLiteral([]byte("age: 42"), []byte("XX"))
//	// result = []byte("age: XX")
func (p *Pattern) ReplaceAllLiteral(src, repl []byte) []byte {
	indices := p.engine.FindAllIndices(src, -1, nil)
	if len(indices) == 0 {
		result := make([]byte, len(src))
		copy(result, src)
		return result
	}

	// Estimate: len(src) + (len(repl)-avgMatchLen)*numMatches
	totalMatchLen := 0
	for _, idx := range indices {
		totalMatchLen += idx[1] - idx[0]
	}
	estimatedLen := len(src) - totalMatchLen + len(repl)*len(indices)

	result := make([]byte, 0, estimatedLen)
	lastEnd := 0
	for _, idx := range indices {
		result = append(result, src[lastEnd:idx[0]]...)
		result = append(result, repl...)
		lastEnd = idx[1]
	}
	return append(result, src[lastEnd:]...)
}

// ReplaceAllLiteralString is like ReplaceAllLiteral but takes and returns
// strings.
func (p *Pattern) ReplaceAllLiteralString(src, repl string) string {
	return string(p.ReplaceAllLiteral([]byte(src), []byte(repl)))
}

// Split slices s into substrings separated by the pattern and returns a
// slice of the substrings between those matches.
//
// The count determines the number of substrings to return:
//
//	n > 0: at most n substrings; the last substring will be the unsplit remainder.
//	n == 0: the result is nil (zero substrings)
//	n < 0: all substrings
//
// Example:
//
//	p := globre.MustCompile(`,\s*`)
//	parts := p.Split("a, b,c", -1)
//	// parts = ["a", "b", "c"]
func (p *Pattern) Split(s string, n int) []string {
	if n == 0 {
		return nil
	}

	indices := p.engine.FindAllIndices([]byte(s), -1, nil)
	if len(indices) == 0 {
		return []string{s}
	}

	numSplits := len(indices) + 1
	if n > 0 && n < numSplits {
		numSplits = n
	}
	result := make([]string, 0, numSplits)

	lastEnd := 0
	for _, idx := range indices {
		if n > 0 && len(result) == n-1 {
			break
		}
		result = append(result, s[lastEnd:idx[0]])
		lastEnd = idx[1]
	}
	return append(result, s[lastEnd:])
}
