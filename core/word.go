package core

import "unicode"

// charKind classifies characters for word-boundary detection. Word motions
// distinguish whitespace, punctuation and everything else; WORD motions
// (whitespace-delimited tokens) treat punctuation as ordinary characters.
type charKind int

const (
	kindSpace charKind = iota
	kindPunct
	kindWord
)

func kindOf(r rune) charKind {
	switch {
	case unicode.IsSpace(r):
		return kindSpace
	case r < 0x80 && (unicode.IsPunct(r) || unicode.IsSymbol(r)):
		return kindPunct
	default:
		return kindWord
	}
}

// kindOfBig is the WORD classifier: whitespace or not.
func kindOfBig(r rune) charKind {
	if unicode.IsSpace(r) {
		return kindSpace
	}
	return kindWord
}

type classifier func(rune) charKind

// findWordStartForward returns the column of the next word start at or after
// startCol, or false when the rest of the line contains none.
func findWordStartForward(line []rune, startCol int, kind classifier) (int, bool) {
	if startCol >= len(line) {
		return 0, false
	}
	prev := kind(line[startCol])
	for col := startCol + 1; col < len(line); col++ {
		cur := kind(line[col])
		if cur != kindSpace && cur != prev {
			return col, true
		}
		prev = cur
	}
	return 0, false
}

// findWordEndForward returns the column one past the end of the word starting
// at or after startCol. Used by forward word deletion: the range
// [startCol, result) covers the rest of the current token plus any leading
// whitespace before the next one.
func findWordEndForward(line []rune, startCol int, kind classifier) (int, bool) {
	if startCol >= len(line) {
		return 0, false
	}
	prev := kind(line[startCol])
	for col := startCol + 1; col < len(line); col++ {
		cur := kind(line[col])
		if prev != kindSpace && cur != prev {
			return col, true
		}
		prev = cur
	}
	return 0, false
}

// findWordEndNext returns the column of the last character of the next word
// strictly after startCol, for the cursor motion that lands on word ends.
func findWordEndNext(line []rune, startCol int, kind classifier) (int, bool) {
	if startCol >= len(line) {
		return 0, false
	}
	cur := kind(line[startCol])
	curCol := startCol
	for col := startCol + 1; col < len(line); col++ {
		next := kind(line[col])
		// A word end one character ahead is the end the cursor already sits
		// on; skip it and keep scanning.
		if col-startCol > 1 && cur != kindSpace && next != cur {
			return col - 1, true
		}
		cur = next
		curCol = col
	}
	if cur != kindSpace && curCol-startCol >= 1 {
		return curCol, true
	}
	return 0, false
}

// findFirstWordEnd returns the column of the last character of the first
// word on the line. Used when a word-end motion crosses onto a fresh line,
// where the strictly-after rule of findWordEndNext does not apply.
func findFirstWordEnd(line []rune, kind classifier) (int, bool) {
	for col := 0; col < len(line); col++ {
		cur := kind(line[col])
		if cur == kindSpace {
			continue
		}
		if col+1 == len(line) || kind(line[col+1]) != cur {
			return col, true
		}
	}
	return 0, false
}

// findWordStartBackward returns the column of the start of the word the
// cursor is on or, when between words, of the previous word.
func findWordStartBackward(line []rune, startCol int, kind classifier) (int, bool) {
	if startCol == 0 {
		return 0, false
	}
	if startCol > len(line) {
		startCol = len(line)
	}
	cur := kind(line[startCol-1])
	for col := startCol - 1; col > 0; col-- {
		next := kind(line[col-1])
		if cur != kindSpace && next != cur {
			return col, true
		}
		cur = next
	}
	if cur != kindSpace {
		return 0, true
	}
	return 0, false
}
