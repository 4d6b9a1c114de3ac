package search

// Scanner yields the start positions of pattern occurrences in one buffer,
// strictly left to right.
//
// A Scanner only moves forward: Seek can skip ahead but never back, and once
// exhausted it stays exhausted. Scanning the buffer again needs a new Scanner.
type Scanner struct {
	searcher *Searcher
	data     []byte
	pos      int
}

// NewScanner creates a scanner over data starting at position 0.
func NewScanner(searcher *Searcher, data []byte) *Scanner {
	return &Scanner{searcher: searcher, data: data}
}

// Next returns the next match at or after the current position and moves the
// position just past the match start. It returns false when no match remains.
func (sc *Scanner) Next() (int, bool) {
	if sc.pos >= len(sc.data) {
		return -1, false
	}

	found := sc.searcher.Index(sc.data, sc.pos)
	if found < 0 {
		sc.pos = len(sc.data)
		return -1, false
	}
	sc.pos = found + 1

	return found, true
}

// Seek moves the scan position forward to pos. Positions behind the current
// one are ignored.
func (sc *Scanner) Seek(pos int) {
	if pos > sc.pos {
		sc.pos = pos
	}
}

// Pos returns the position the next search starts from.
func (sc *Scanner) Pos() int {
	return sc.pos
}
