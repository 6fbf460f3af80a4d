package core

type scrollKind int

const (
	scrollDelta scrollKind = iota
	scrollPage
	scrollHalfPage
)

// Scrolling describes a viewport scroll request. Construct values with
// ScrollDelta or use the page constants.
type Scrolling struct {
	kind scrollKind
	rows int
	cols int
}

// ScrollDelta scrolls by a fixed number of rows and columns. Negative
// values scroll up and left.
func ScrollDelta(rows, cols int) Scrolling {
	return Scrolling{kind: scrollDelta, rows: rows, cols: cols}
}

var (
	ScrollPageDown     = Scrolling{kind: scrollPage, rows: 1}
	ScrollPageUp       = Scrolling{kind: scrollPage, rows: -1}
	ScrollHalfPageDown = Scrolling{kind: scrollHalfPage, rows: 1}
	ScrollHalfPageUp   = Scrolling{kind: scrollHalfPage, rows: -1}
)

// Viewport tracks the visible window over the buffer. The offset is owned
// here so scrolling works the same regardless of which host renders the
// text. Rows are counted in lines and columns in display cells.
type Viewport struct {
	topRow int
	topCol int
	width  int
	height int
}

// SetSize records the render area in cells. A zero size disables
// follow-cursor clamping for that axis.
func (v *Viewport) SetSize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	v.width = width
	v.height = height
}

// Offset returns the first visible row and the leftmost visible display
// column.
func (v *Viewport) Offset() (row, col int) {
	return v.topRow, v.topCol
}

func (v *Viewport) Width() int {
	return v.width
}

func (v *Viewport) Height() int {
	return v.height
}

// scroll applies the request, clamping the offset to the buffer. Page
// distances come from the current viewport height.
func (v *Viewport) scroll(s Scrolling, b *Buffer) {
	rows, cols := s.rows, s.cols
	switch s.kind {
	case scrollPage:
		rows *= v.height
	case scrollHalfPage:
		rows *= v.height / 2
	}
	v.topRow += rows
	v.topCol += cols
	if max := b.LineCount() - 1; v.topRow > max {
		v.topRow = max
	}
	if v.topRow < 0 {
		v.topRow = 0
	}
	if v.topCol < 0 {
		v.topCol = 0
	}
}

// clampCursor pulls the cursor inside the visible rectangle after a scroll.
// The horizontal bound is in display cells, so the rune column is moved
// until its display position falls inside the window.
func (v *Viewport) clampCursor(c Cursor, b *Buffer, tabWidth int, mask rune) Cursor {
	row := c.Position.Row
	if v.height > 0 {
		row = clamp(row, v.topRow, v.topRow+v.height-1)
	}
	row = clamp(row, 0, b.LineCount()-1)
	line := b.LineRunes(row)
	col := fitCol(c.Position.Col, line)
	if v.width > 0 {
		for col > 0 && DisplayWidth(line, col, tabWidth, mask) >= v.topCol+v.width {
			col--
		}
		for col < len(line) && DisplayWidth(line, col, tabWidth, mask) < v.topCol {
			col++
		}
	}
	return Cursor{Position: Position{Row: row, Col: col}, Preferred: col}
}

// follow moves the offset the minimum distance needed to keep the cursor
// visible. The horizontal check uses display columns so tabs and wide
// runes scroll correctly.
func (v *Viewport) follow(c Cursor, b *Buffer, tabWidth int, mask rune) {
	if v.height > 0 {
		if c.Position.Row < v.topRow {
			v.topRow = c.Position.Row
		} else if c.Position.Row >= v.topRow+v.height {
			v.topRow = c.Position.Row - v.height + 1
		}
	}
	if v.width > 0 {
		col := DisplayWidth(b.LineRunes(c.Position.Row), c.Position.Col, tabWidth, mask)
		if col < v.topCol {
			v.topCol = col
		} else if col >= v.topCol+v.width {
			v.topCol = col - v.width + 1
		}
	}
}
