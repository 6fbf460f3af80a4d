package core

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// search holds the active search pattern. Navigation scans lines starting
// at the cursor and wraps around the buffer, so repeated jumps cycle
// through every match.
type search struct {
	pat *regexp.Regexp
	src string

	// landed is the start of the match the last jump stopped on. It is
	// cleared whenever the pattern changes.
	landed *Position
}

// setPattern compiles and installs a new pattern. An empty string clears
// the search. An invalid pattern is rejected and the previous pattern, if
// any, stays active.
func (s *search) setPattern(query string) error {
	if query == s.src {
		return nil
	}
	if query == "" {
		s.pat = nil
		s.src = ""
		s.landed = nil
		return nil
	}
	pat, err := regexp.Compile(query)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidPattern, query, err)
	}
	s.pat = pat
	s.src = query
	s.landed = nil
	return nil
}

func (s search) clone() search {
	c := s
	if s.landed != nil {
		landed := *s.landed
		c.landed = &landed
	}
	return c
}

func (s *search) active() bool {
	return s.pat != nil
}

// matchesInLine reports the [start, end) rune column ranges of all pattern
// matches within the line.
func (s *search) matchesInLine(line []rune) [][2]int {
	if s.pat == nil || len(line) == 0 {
		return nil
	}
	text := string(line)
	idx := s.pat.FindAllStringIndex(text, -1)
	if len(idx) == 0 {
		return nil
	}
	ranges := make([][2]int, 0, len(idx))
	byteCol := 0
	runeCol := 0
	toRuneCol := func(byteOff int) int {
		for byteCol < byteOff {
			_, size := utf8.DecodeRuneInString(text[byteCol:])
			byteCol += size
			runeCol++
		}
		return runeCol
	}
	for _, m := range idx {
		start := toRuneCol(m[0])
		end := toRuneCol(m[1])
		ranges = append(ranges, [2]int{start, end})
	}
	return ranges
}

// forward finds the next match at or after the cursor, wrapping past the
// end of the buffer. When matchCursor is true a match starting exactly at
// the cursor counts, otherwise the scan starts one column later.
func (s *search) forward(b *Buffer, cur Position, matchCursor bool) (Position, bool) {
	if s.pat == nil {
		return Position{}, false
	}
	n := b.LineCount()
	// The cursor row is visited twice so matches behind the cursor are
	// reached after a full wrap.
	for i := 0; i <= n; i++ {
		row := (cur.Row + i) % n
		for _, m := range s.matchesInLine(b.LineRunes(row)) {
			if i == 0 {
				if matchCursor && m[0] < cur.Col {
					continue
				}
				if !matchCursor && m[0] <= cur.Col {
					continue
				}
			}
			return Position{Row: row, Col: m[0]}, true
		}
	}
	return Position{}, false
}

// back finds the previous match before the cursor, wrapping past the start
// of the buffer.
func (s *search) back(b *Buffer, cur Position, matchCursor bool) (Position, bool) {
	if s.pat == nil {
		return Position{}, false
	}
	n := b.LineCount()
	for i := 0; i <= n; i++ {
		row := ((cur.Row-i)%n + n) % n
		ranges := s.matchesInLine(b.LineRunes(row))
		for j := len(ranges) - 1; j >= 0; j-- {
			m := ranges[j]
			if i == 0 {
				if matchCursor && m[0] > cur.Col {
					continue
				}
				if !matchCursor && m[0] >= cur.Col {
					continue
				}
			}
			return Position{Row: row, Col: m[0]}, true
		}
	}
	return Position{}, false
}
