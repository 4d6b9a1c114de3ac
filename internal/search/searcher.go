// Package search implements the multi-row key locator: a Boyer-Moore-Horspool
// substring searcher and a forward-only scanner over a concatenated row buffer.
package search

// Searcher finds a fixed pattern using the Horspool bad-character rule.
//
// The shift table is built once per pattern; a Searcher is immutable and can be
// shared between goroutines.
type Searcher struct {
	pattern []byte
	shift   [256]int
}

// NewSearcher prepares pattern for searching. The pattern is copied.
func NewSearcher(pattern []byte) *Searcher {
	s := &Searcher{pattern: append([]byte(nil), pattern...)}

	m := len(s.pattern)
	for i := range s.shift {
		s.shift[i] = m
	}
	// The last pattern byte keeps the full shift so that a mismatch on it
	// never stalls the window.
	for i := 0; i < m-1; i++ {
		s.shift[s.pattern[i]] = m - 1 - i
	}

	return s
}

// Pattern returns the pattern being searched for.
func (s *Searcher) Pattern() []byte {
	return s.pattern
}

// Len returns the pattern length.
func (s *Searcher) Len() int {
	return len(s.pattern)
}

// Index returns the position of the first occurrence of the pattern in
// hay[from:], as an index into hay, or -1 if there is none.
func (s *Searcher) Index(hay []byte, from int) int {
	m := len(s.pattern)
	if from < 0 {
		from = 0
	}
	if m == 0 {
		if from <= len(hay) {
			return from
		}

		return -1
	}

	last := m - 1
	tail := s.pattern[last]
	for pos := from; pos+m <= len(hay); {
		c := hay[pos+last]
		if c == tail && s.matchesAt(hay, pos) {
			return pos
		}
		pos += s.shift[c]
	}

	return -1
}

func (s *Searcher) matchesAt(hay []byte, pos int) bool {
	window := hay[pos : pos+len(s.pattern)]
	for i := len(s.pattern) - 2; i >= 0; i-- {
		if window[i] != s.pattern[i] {
			return false
		}
	}

	return true
}
