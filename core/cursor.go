package core

import "unicode"

// Cursor is the current editing position plus the preferred column kept for
// vertical movement, so moving through short lines does not lose the column
// the user was on.
type Cursor struct {
	Position  Position
	Preferred int
}

// Move identifies a cursor motion. Motions compute a target position from
// the current cursor and the buffer contents; they never mutate text.
type Move int

const (
	// MoveForward moves one character right, wrapping to the next line.
	MoveForward Move = iota
	// MoveBack moves one character left, wrapping to the previous line end.
	MoveBack
	// MoveUp moves one line up, keeping the preferred column where possible.
	MoveUp
	// MoveDown moves one line down, keeping the preferred column.
	MoveDown
	// MoveHead moves to column 0 of the current line.
	MoveHead
	// MoveEnd moves past the last character of the current line.
	MoveEnd
	// MoveFirstNonBlank moves to the first non-whitespace character of the
	// current line, or column 0 when the line is blank.
	MoveFirstNonBlank
	// MoveTop moves to the first line, keeping the column where possible.
	MoveTop
	// MoveBottom moves to the last line, keeping the column where possible.
	MoveBottom
	// MoveWordForward moves to the start of the next word. Word boundaries
	// are punctuation-aware.
	MoveWordForward
	// MoveWordEnd moves onto the last character of the next word.
	MoveWordEnd
	// MoveWordBack moves to the start of the current or previous word.
	MoveWordBack
	// MoveBigWordForward, MoveBigWordEnd and MoveBigWordBack are the
	// whitespace-delimited variants: punctuation is part of the token.
	MoveBigWordForward
	MoveBigWordEnd
	MoveBigWordBack
	// MoveParagraphForward moves to the start of the next paragraph, where
	// paragraphs are separated by blank lines.
	MoveParagraphForward
	// MoveParagraphBack moves to the blank line above the current paragraph.
	MoveParagraphBack
	// MoveInViewport clamps the cursor into the visible viewport rectangle.
	MoveInViewport
)

// fitCol clamps a remembered column onto a possibly shorter line.
func fitCol(col int, line []rune) int {
	if col > len(line) {
		return len(line)
	}
	return col
}

func firstNonBlank(line []rune) int {
	for i, r := range line {
		if !unicode.IsSpace(r) {
			return i
		}
	}
	return 0
}

// nextCursor computes the target of a motion, or ok=false when the motion
// cannot move (cursor at a buffer boundary). Vertical motions use the
// preferred column; every other motion resets it to the target column.
// MoveInViewport is not handled here; it needs display widths and lives on
// Viewport (clampCursor).
func nextCursor(m Move, c Cursor, b *Buffer) (Cursor, bool) {
	row, col := c.Position.Row, c.Position.Col
	line := b.LineRunes(row)

	at := func(row, col int) (Cursor, bool) {
		return Cursor{Position: Position{Row: row, Col: col}, Preferred: col}, true
	}

	switch m {
	case MoveForward:
		if col < len(line) {
			return at(row, col+1)
		}
		if row+1 < b.LineCount() {
			return at(row+1, 0)
		}
	case MoveBack:
		if col > 0 {
			return at(row, col-1)
		}
		if row > 0 {
			return at(row-1, b.LineLen(row-1))
		}
	case MoveUp:
		if row > 0 {
			target := fitCol(c.Preferred, b.LineRunes(row-1))
			return Cursor{Position: Position{Row: row - 1, Col: target}, Preferred: c.Preferred}, true
		}
	case MoveDown:
		if row+1 < b.LineCount() {
			target := fitCol(c.Preferred, b.LineRunes(row+1))
			return Cursor{Position: Position{Row: row + 1, Col: target}, Preferred: c.Preferred}, true
		}
	case MoveHead:
		return at(row, 0)
	case MoveEnd:
		return at(row, len(line))
	case MoveFirstNonBlank:
		return at(row, firstNonBlank(line))
	case MoveTop:
		target := fitCol(c.Preferred, b.LineRunes(0))
		return Cursor{Position: Position{Row: 0, Col: target}, Preferred: c.Preferred}, true
	case MoveBottom:
		last := b.LineCount() - 1
		target := fitCol(c.Preferred, b.LineRunes(last))
		return Cursor{Position: Position{Row: last, Col: target}, Preferred: c.Preferred}, true
	case MoveWordForward:
		return wordForward(c, b, kindOf)
	case MoveBigWordForward:
		return wordForward(c, b, kindOfBig)
	case MoveWordEnd:
		return wordEnd(c, b, kindOf)
	case MoveBigWordEnd:
		return wordEnd(c, b, kindOfBig)
	case MoveWordBack:
		return wordBack(c, b, kindOf)
	case MoveBigWordBack:
		return wordBack(c, b, kindOfBig)
	case MoveParagraphForward:
		return paragraphForward(c, b)
	case MoveParagraphBack:
		return paragraphBack(c, b)
	}
	return c, false
}

func wordForward(c Cursor, b *Buffer, kind classifier) (Cursor, bool) {
	row, col := c.Position.Row, c.Position.Col
	if target, ok := findWordStartForward(b.LineRunes(row), col, kind); ok {
		return Cursor{Position: Position{Row: row, Col: target}, Preferred: target}, true
	}
	if row+1 < b.LineCount() {
		return Cursor{Position: Position{Row: row + 1, Col: 0}}, true
	}
	end := b.LineLen(row)
	return Cursor{Position: Position{Row: row, Col: end}, Preferred: end}, true
}

func wordEnd(c Cursor, b *Buffer, kind classifier) (Cursor, bool) {
	row, col := c.Position.Row, c.Position.Col
	if target, ok := findWordEndNext(b.LineRunes(row), col, kind); ok {
		return Cursor{Position: Position{Row: row, Col: target}, Preferred: target}, true
	}
	// Continue on the following line, scanning from its head so a word at
	// column 0 is found too.
	if row+1 < b.LineCount() {
		if target, ok := findFirstWordEnd(b.LineRunes(row+1), kind); ok {
			return Cursor{Position: Position{Row: row + 1, Col: target}, Preferred: target}, true
		}
		return Cursor{Position: Position{Row: row + 1, Col: 0}}, true
	}
	end := b.LineLen(row)
	return Cursor{Position: Position{Row: row, Col: end}, Preferred: end}, true
}

func wordBack(c Cursor, b *Buffer, kind classifier) (Cursor, bool) {
	row, col := c.Position.Row, c.Position.Col
	if target, ok := findWordStartBackward(b.LineRunes(row), col, kind); ok {
		return Cursor{Position: Position{Row: row, Col: target}, Preferred: target}, true
	}
	if col > 0 {
		return Cursor{Position: Position{Row: row, Col: 0}}, true
	}
	if row > 0 {
		end := b.LineLen(row - 1)
		return Cursor{Position: Position{Row: row - 1, Col: end}, Preferred: end}, true
	}
	return c, false
}

func paragraphForward(c Cursor, b *Buffer) (Cursor, bool) {
	row := c.Position.Row
	prevBlank := b.LineLen(row) == 0
	for r := row + 1; r < b.LineCount(); r++ {
		blank := b.LineLen(r) == 0
		if !blank && prevBlank {
			target := fitCol(c.Preferred, b.LineRunes(r))
			return Cursor{Position: Position{Row: r, Col: target}, Preferred: c.Preferred}, true
		}
		prevBlank = blank
	}
	last := b.LineCount() - 1
	if last == row {
		return c, false
	}
	target := fitCol(c.Preferred, b.LineRunes(last))
	return Cursor{Position: Position{Row: last, Col: target}, Preferred: c.Preferred}, true
}

func paragraphBack(c Cursor, b *Buffer) (Cursor, bool) {
	row := c.Position.Row
	if row == 0 {
		return c, false
	}
	prevBlank := b.LineLen(row) == 0
	for r := row - 1; r >= 0; r-- {
		blank := b.LineLen(r) == 0
		if blank && !prevBlank {
			target := fitCol(c.Preferred, b.LineRunes(r))
			return Cursor{Position: Position{Row: r, Col: target}, Preferred: c.Preferred}, true
		}
		prevBlank = blank
	}
	target := fitCol(c.Preferred, b.LineRunes(0))
	return Cursor{Position: Position{Row: 0, Col: target}, Preferred: c.Preferred}, true
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
