package globre

// Match reports whether the byte slice b contains any match of the pattern.
//
// Example:
//
//	p := globre.MustCompile(`\d+`)
//	if p.Match([]byte("hello 123")) {
//	    println("contains digits")
//	}
func (p *Pattern) Match(b []byte) bool {
	return p.engine.IsMatch(b)
}

// MatchString reports whether the string s contains any match of the pattern.
func (p *Pattern) MatchString(s string) bool {
	return p.engine.IsMatch([]byte(s))
}

// GlobMatch reports whether the pattern matches name starting at its first
// byte. Names beginning with '.' match only when the pattern itself starts
// with a literal '.' (after an optional ^).
//
// Unlike Match, GlobMatch does not scan for a match further into name, so it
// is meant for patterns anchored at both ends such as those produced by
// CompileGlob.
//
// Example:
//
//	g := globre.MustCompileGlob("*.go")
//	g.GlobMatch([]byte("main.go"))    // true
//	g.GlobMatch([]byte(".main.go"))   // false
func (p *Pattern) GlobMatch(name []byte) bool {
	return p.engine.GlobMatch(name)
}

// GlobMatchString is like GlobMatch but takes a string.
func (p *Pattern) GlobMatchString(name string) bool {
	return p.engine.GlobMatch([]byte(name))
}

// Find returns a slice holding the text of the leftmost match in b.
// A return value of nil indicates no match.
//
// Example:
//
//	p := globre.MustCompile(`\d+`)
//	match := p.Find([]byte("age: 42"))
//	println(string(match)) // "42"
func (p *Pattern) Find(b []byte) []byte {
	start, end, found := p.engine.FindIndices(b)
	if !found {
		return nil
	}
	return b[start:end:end]
}

// FindString returns a string holding the text of the leftmost match in s.
// If there is no match, the return value is an empty string, but it will
// also be empty if the pattern successfully matches an empty string. Use
// FindStringIndex if it is necessary to distinguish these cases.
func (p *Pattern) FindString(s string) string {
	start, end, found := p.engine.FindIndices([]byte(s))
	if !found {
		return ""
	}
	return s[start:end]
}

// FindIndex returns a two-element slice of integers defining the location
// of the leftmost match in b. The match itself is at b[loc[0]:loc[1]].
// A return value of nil indicates no match.
func (p *Pattern) FindIndex(b []byte) []int {
	start, end, found := p.engine.FindIndices(b)
	if !found {
		return nil
	}
	return []int{start, end}
}

// FindStringIndex is like FindIndex but takes a string.
func (p *Pattern) FindStringIndex(s string) []int {
	return p.FindIndex([]byte(s))
}

// FindAll returns a slice of all successive non-overlapping matches of the
// pattern in b. If n >= 0, returns at most n matches. A return value of nil
// indicates no match.
//
// Example:
//
//	p := globre.MustCompile(`\d`)
//	matches := p.FindAll([]byte("a1b2c3"), -1)
//	// matches = [[]byte("1"), []byte("2"), []byte("3")]
func (p *Pattern) FindAll(b []byte, n int) [][]byte {
	indices := p.engine.FindAllIndices(b, n, nil)
	if len(indices) == 0 {
		return nil
	}

	matches := make([][]byte, len(indices))
	for i, idx := range indices {
		matches[i] = b[idx[0]:idx[1]:idx[1]]
	}
	return matches
}

// FindAllString is like FindAll but takes and returns strings.
func (p *Pattern) FindAllString(s string, n int) []string {
	indices := p.engine.FindAllIndices([]byte(s), n, nil)
	if len(indices) == 0 {
		return nil
	}

	matches := make([]string, len(indices))
	for i, idx := range indices {
		matches[i] = s[idx[0]:idx[1]]
	}
	return matches
}

// FindAllIndex returns the locations of all successive non-overlapping
// matches of the pattern in b. If n >= 0, returns at most n matches.
// A return value of nil indicates no match.
func (p *Pattern) FindAllIndex(b []byte, n int) [][]int {
	indices := p.engine.FindAllIndices(b, n, nil)
	if len(indices) == 0 {
		return nil
	}

	result := make([][]int, len(indices))
	for i, idx := range indices {
		result[i] = []int{idx[0], idx[1]}
	}
	return result
}

// FindAllStringIndex is like FindAllIndex but takes a string.
func (p *Pattern) FindAllStringIndex(s string, n int) [][]int {
	return p.FindAllIndex([]byte(s), n)
}

// Count returns the number of non-overlapping matches of the pattern in b.
// If n >= 0, counts at most n matches.
//
// Example:
//
//	p := globre.MustCompile(`\d+`)
//	count := p.Count([]byte("1 2 3 4 5"), -1)
//	// count == 5
func (p *Pattern) Count(b []byte, n int) int {
	return p.engine.Count(b, n)
}

// CountString is like Count but takes a string.
func (p *Pattern) CountString(s string, n int) int {
	return p.engine.Count([]byte(s), n)
}
