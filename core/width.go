package core

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is the tab stop width used when none is configured.
const DefaultTabWidth = 4

// RuneWidth returns the number of terminal columns a single character
// occupies: 0 for combining marks, 2 for East-Asian fullwidth characters,
// 1 otherwise. Tabs are not handled here; they depend on the current
// display column (see DisplayWidth).
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// StringWidth returns the display width of a string, accounting for
// grapheme clusters (emoji sequences, combining marks).
func StringWidth(s string) int {
	return uniseg.StringWidth(s)
}

// DisplayWidth returns the number of terminal columns the first col runes of
// line occupy. A hard tab advances to the next tab stop. When mask is
// non-zero every character renders as mask, so each rune contributes the
// mask's width instead of its own.
func DisplayWidth(line []rune, col, tabWidth int, mask rune) int {
	if col > len(line) {
		col = len(line)
	}
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	w := 0
	for _, r := range line[:col] {
		switch {
		case mask != 0:
			w += runewidth.RuneWidth(mask)
		case r == '\t':
			w += tabWidth - w%tabWidth
		default:
			w += runewidth.RuneWidth(r)
		}
	}
	return w
}

// LineWidth returns the display width of the whole line.
func LineWidth(line []rune, tabWidth int, mask rune) int {
	return DisplayWidth(line, len(line), tabWidth, mask)
}
