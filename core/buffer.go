package core

import (
	"fmt"
	"strings"
)

// Position is a location in the buffer. Col counts runes from the start of
// the line, not display columns; the valid range is [0, line length], where
// line length means the cursor may sit one past the last character.
type Position struct {
	Row int
	Col int
}

// Less orders positions row-major, then by column.
func (p Position) Less(q Position) bool {
	return p.Row < q.Row || (p.Row == q.Row && p.Col < q.Col)
}

func minPos(p, q Position) Position {
	if q.Less(p) {
		return q
	}
	return p
}

func maxPos(p, q Position) Position {
	if p.Less(q) {
		return q
	}
	return p
}

// Buffer holds the text being edited as lines of runes. It always contains
// at least one line: an empty document is a single empty line, never zero
// lines. All mutation goes through SplitLine, MergeLine, Splice and the two
// range helpers built on them, which preserve that invariant.
type Buffer struct {
	lines [][]rune
}

// NewBuffer creates an empty buffer containing one empty line.
func NewBuffer() *Buffer {
	return &Buffer{lines: [][]rune{{}}}
}

// NewBufferFromString splits content on newlines. A trailing newline yields a
// trailing empty line, so String round-trips exactly.
func NewBufferFromString(content string) *Buffer {
	parts := strings.Split(content, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}
	return &Buffer{lines: lines}
}

// NewBufferFromLines builds a buffer from pre-split lines. Lines must not
// contain newline characters.
func NewBufferFromLines(lines []string) *Buffer {
	if len(lines) == 0 {
		return NewBuffer()
	}
	ls := make([][]rune, len(lines))
	for i, l := range lines {
		ls[i] = []rune(l)
	}
	return &Buffer{lines: ls}
}

// Lines returns the buffer content as strings, one per line.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = string(l)
	}
	return out
}

// Line returns the line at row as a string, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return string(b.lines[row])
}

// LineRunes returns the rune slice backing the line at row. The slice is
// owned by the buffer; callers must not modify it.
func (b *Buffer) LineRunes(row int) []rune {
	if row < 0 || row >= len(b.lines) {
		return nil
	}
	return b.lines[row]
}

// LineLen returns the rune count of the line at row, 0 when out of range.
func (b *Buffer) LineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

// LineCount returns the number of lines; always at least 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// String returns the whole content joined with newlines.
func (b *Buffer) String() string {
	var sb strings.Builder
	for i, l := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(l))
	}
	return sb.String()
}

// IsEmpty reports whether the buffer is a single empty line.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 1 && len(b.lines[0]) == 0
}

// Clone returns a deep copy sharing no storage with the receiver.
func (b *Buffer) Clone() *Buffer {
	lines := make([][]rune, len(b.lines))
	for i, l := range b.lines {
		lines[i] = append([]rune(nil), l...)
	}
	return &Buffer{lines: lines}
}

func (b *Buffer) validate(row, col int) error {
	if row < 0 || row >= len(b.lines) {
		return fmt.Errorf("%w: row %d not in [0, %d)", ErrOutOfRange, row, len(b.lines))
	}
	if col < 0 || col > len(b.lines[row]) {
		return fmt.Errorf("%w: col %d not in [0, %d]", ErrOutOfRange, col, len(b.lines[row]))
	}
	return nil
}

// SplitLine splits the line at row into two lines at rune offset col. The
// tail becomes a new line inserted immediately after row.
func (b *Buffer) SplitLine(row, col int) error {
	if err := b.validate(row, col); err != nil {
		return fmt.Errorf("SplitLine: %w", err)
	}
	line := b.lines[row]
	tail := append([]rune(nil), line[col:]...)
	b.lines[row] = line[:col:col]
	b.lines = append(b.lines, nil)
	copy(b.lines[row+2:], b.lines[row+1:])
	b.lines[row+1] = tail
	return nil
}

// MergeLine appends the line at row+1 onto the line at row and removes it.
func (b *Buffer) MergeLine(row int) error {
	if row < 0 || row+1 >= len(b.lines) {
		return fmt.Errorf("MergeLine: %w: row %d has no next line", ErrOutOfRange, row)
	}
	b.lines[row] = append(b.lines[row], b.lines[row+1]...)
	b.lines = append(b.lines[:row+1], b.lines[row+2:]...)
	return nil
}

// Splice replaces the rune range [colStart, colEnd) within the line at row
// with text, which must not contain a line break. It returns the removed
// substring. Multi-line insertion is built on top of this via InsertSpanning.
func (b *Buffer) Splice(row, colStart, colEnd int, text []rune) (string, error) {
	if err := b.validate(row, colStart); err != nil {
		return "", fmt.Errorf("Splice: %w", err)
	}
	if colEnd < colStart || colEnd > len(b.lines[row]) {
		return "", fmt.Errorf("Splice: %w: col range [%d, %d) invalid", ErrOutOfRange, colStart, colEnd)
	}
	line := b.lines[row]
	removed := string(line[colStart:colEnd])
	next := make([]rune, 0, len(line)-(colEnd-colStart)+len(text))
	next = append(next, line[:colStart]...)
	next = append(next, text...)
	next = append(next, line[colEnd:]...)
	b.lines[row] = next
	return removed, nil
}

// InsertSpanning inserts text at (row, col). The text may contain line
// breaks: a payload containing n newlines produces n new lines, decomposed
// into one splice per segment plus a line split. It returns the position
// just past the inserted text. All insert commands funnel through here so
// multi-line handling stays consistent.
func (b *Buffer) InsertSpanning(row, col int, text string) (Position, error) {
	if err := b.validate(row, col); err != nil {
		return Position{}, fmt.Errorf("InsertSpanning: %w", err)
	}
	parts := strings.Split(text, "\n")
	if len(parts) == 1 {
		if _, err := b.Splice(row, col, col, []rune(text)); err != nil {
			return Position{}, err
		}
		return Position{Row: row, Col: col + len([]rune(text))}, nil
	}

	// Break the line at the insertion point, fill the head line, then stack
	// the middle segments as whole lines before the tail.
	if err := b.SplitLine(row, col); err != nil {
		return Position{}, err
	}
	if _, err := b.Splice(row, col, col, []rune(parts[0])); err != nil {
		return Position{}, err
	}
	for i := 1; i < len(parts)-1; i++ {
		mid := []rune(parts[i])
		b.lines = append(b.lines, nil)
		copy(b.lines[row+i+1:], b.lines[row+i:])
		b.lines[row+i] = mid
	}
	last := []rune(parts[len(parts)-1])
	endRow := row + len(parts) - 1
	if _, err := b.Splice(endRow, 0, 0, last); err != nil {
		return Position{}, err
	}
	return Position{Row: endRow, Col: len(last)}, nil
}

// DeleteRange removes everything between two positions, merging the boundary
// lines when the range spans lines. It returns the removed text with line
// breaks restored, so reinserting it via InsertSpanning at start restores the
// original content exactly.
func (b *Buffer) DeleteRange(start, end Position) (string, error) {
	if end.Less(start) {
		return "", fmt.Errorf("DeleteRange: %w: end %v before start %v", ErrOutOfRange, end, start)
	}
	if err := b.validate(start.Row, start.Col); err != nil {
		return "", fmt.Errorf("DeleteRange: %w", err)
	}
	if err := b.validate(end.Row, end.Col); err != nil {
		return "", fmt.Errorf("DeleteRange: %w", err)
	}
	if start.Row == end.Row {
		removed, err := b.Splice(start.Row, start.Col, end.Col, nil)
		if err != nil {
			return "", fmt.Errorf("DeleteRange: %w", err)
		}
		return removed, nil
	}

	var sb strings.Builder
	sb.WriteString(string(b.lines[start.Row][start.Col:]))
	for r := start.Row + 1; r < end.Row; r++ {
		sb.WriteByte('\n')
		sb.WriteString(string(b.lines[r]))
	}
	sb.WriteByte('\n')
	sb.WriteString(string(b.lines[end.Row][:end.Col]))

	head := b.lines[start.Row][:start.Col:start.Col]
	tail := b.lines[end.Row][end.Col:]
	b.lines[start.Row] = append(head, tail...)
	b.lines = append(b.lines[:start.Row+1], b.lines[end.Row+1:]...)
	return sb.String(), nil
}

// TextInRange returns the text between two ordered positions without
// mutating the buffer. Used by copy.
func (b *Buffer) TextInRange(start, end Position) (string, error) {
	if end.Less(start) {
		return "", fmt.Errorf("TextInRange: %w: end %v before start %v", ErrOutOfRange, end, start)
	}
	if err := b.validate(start.Row, start.Col); err != nil {
		return "", fmt.Errorf("TextInRange: %w", err)
	}
	if err := b.validate(end.Row, end.Col); err != nil {
		return "", fmt.Errorf("TextInRange: %w", err)
	}
	if start.Row == end.Row {
		return string(b.lines[start.Row][start.Col:end.Col]), nil
	}
	var sb strings.Builder
	sb.WriteString(string(b.lines[start.Row][start.Col:]))
	for r := start.Row + 1; r < end.Row; r++ {
		sb.WriteByte('\n')
		sb.WriteString(string(b.lines[r]))
	}
	sb.WriteByte('\n')
	sb.WriteString(string(b.lines[end.Row][:end.Col]))
	return sb.String(), nil
}

// EndPosition returns the position after the last character of the buffer.
func (b *Buffer) EndPosition() Position {
	row := len(b.lines) - 1
	return Position{Row: row, Col: len(b.lines[row])}
}

// advance returns the position reached by walking text forward from pos.
// It is the inverse bookkeeping of DeleteRange: deleting [pos, advance(pos,
// text)) removes exactly text.
func advance(pos Position, text string) Position {
	for _, r := range text {
		if r == '\n' {
			pos.Row++
			pos.Col = 0
		} else {
			pos.Col++
		}
	}
	return pos
}
