package bubble_adapter

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	editor "github.com/typeline-tui/typeline/core"
)

// cell is one renderable unit of a line: the display text for a single
// source rune (mask applied, tabs expanded) plus its rune column.
type cell struct {
	text string
	col  int
}

// gutterWidth is the width of the line-number column, 0 when numbers are
// hidden. Numbers only make sense with left alignment.
func (m Model) gutterWidth() int {
	if !m.showLineNumbers || m.editor.Alignment() != editor.AlignLeft {
		return 0
	}
	w := len(strconv.Itoa(m.editor.LineCount()))
	if w < 3 {
		w = 3
	}
	return w + 1
}

func (m Model) renderLines() string {
	ed := m.editor
	if ed.IsEmpty() && ed.Placeholder() != "" {
		ph := []rune(ed.Placeholder())
		if m.isFocused && !ed.CursorHidden() {
			// The cursor sits on the first placeholder character.
			return m.theme.CursorStyle.Render(string(ph[0])) +
				m.theme.PlaceholderStyle.Render(string(ph[1:]))
		}
		return m.theme.PlaceholderStyle.Render(string(ph))
	}

	topRow, topCol := ed.Viewport().Offset()
	height := ed.Viewport().Height()
	if height <= 0 {
		height = ed.LineCount()
	}

	var sb strings.Builder
	for row := topRow; row < topRow+height && row < ed.LineCount(); row++ {
		if row > topRow {
			sb.WriteByte('\n')
		}
		if gw := m.gutterWidth(); gw > 0 {
			style := m.theme.LineNumberStyle
			if row == ed.Cursor().Row {
				style = m.theme.CurrentLineNumberStyle
			}
			sb.WriteString(style.Width(gw - 1).Render(strconv.Itoa(row + 1)))
			sb.WriteByte(' ')
		}
		sb.WriteString(m.renderLine(row, topCol))
	}
	return sb.String()
}

func (m Model) renderLine(row, topCol int) string {
	ed := m.editor
	line := []rune(ed.Line(row))
	tabWidth := ed.TabWidth()
	if tabWidth <= 0 {
		tabWidth = editor.DefaultTabWidth
	}
	mask := ed.Mask()

	cells := make([]cell, 0, len(line)+1)
	w := 0
	for i, r := range line {
		var text string
		switch {
		case mask != 0:
			text = string(mask)
		case r == '\t':
			text = strings.Repeat(" ", tabWidth-w%tabWidth)
		default:
			text = string(r)
		}
		cells = append(cells, cell{text: text, col: i})
		w += lipgloss.Width(text)
	}

	cursor := ed.Cursor()
	showCursor := m.isFocused && !ed.CursorHidden() && row == cursor.Row
	// The cursor can rest one past the last character; give it a cell.
	if showCursor && cursor.Col == len(line) {
		cells = append(cells, cell{text: " ", col: len(line)})
	}

	width := ed.Viewport().Width()
	selStart, selEnd, hasSel := ed.SelectedRange()
	matches := ed.SearchMatches(row)
	cursorLine := ed.CursorLineHighlight() && row == cursor.Row

	var sb strings.Builder
	shown := 0
	skipped := 0
	for _, c := range cells {
		cw := lipgloss.Width(c.text)
		if skipped+cw <= topCol {
			skipped += cw
			continue
		}
		if width > 0 && shown+cw > width {
			break
		}
		sb.WriteString(m.styleFor(row, c.col, cursor, showCursor, selStart, selEnd, hasSel, matches, cursorLine).Render(c.text))
		shown += cw
	}

	out := sb.String()
	if width > 0 && ed.Alignment() != editor.AlignLeft {
		align := lipgloss.Center
		if ed.Alignment() == editor.AlignRight {
			align = lipgloss.Right
		}
		out = lipgloss.NewStyle().Width(width).Align(align).Render(out)
	}
	return out
}

func (m Model) styleFor(row, col int, cursor editor.Position, showCursor bool, selStart, selEnd editor.Position, hasSel bool, matches [][2]int, cursorLine bool) lipgloss.Style {
	if showCursor && col == cursor.Col {
		return m.theme.CursorStyle
	}
	if hasSel {
		pos := editor.Position{Row: row, Col: col}
		if !pos.Less(selStart) && pos.Less(selEnd) {
			return m.theme.SelectionStyle
		}
	}
	for _, r := range matches {
		if col >= r[0] && col < r[1] {
			return m.theme.SearchMatchStyle
		}
	}
	if cursorLine {
		return m.theme.CursorLineStyle
	}
	return m.theme.TextStyle
}
