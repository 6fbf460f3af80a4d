package core

// editKind tags the reversible mutations recorded in history. Records are
// plain values (kind, position, payload, cursor snapshots) rather than
// closures, so they can be inspected and tested on their own.
type editKind int

const (
	// editInsertChars: text without line breaks inserted at pos.
	editInsertChars editKind = iota
	// editDeleteChars: text without line breaks removed starting at pos.
	editDeleteChars
	// editInsertNewline: the line at pos.Row was split at pos.Col.
	editInsertNewline
	// editDeleteNewline: the line below pos.Row was joined onto it; pos.Col
	// is the length of the upper line before the join.
	editDeleteNewline
	// editReplace: oldText at pos was replaced by newText; either side may
	// span lines. Pure multi-line inserts and deletes use this with the
	// other side empty.
	editReplace
)

// edit is one reversible mutation together with the cursor positions
// surrounding it, enough to replay or roll back the change exactly.
type edit struct {
	kind         editKind
	pos          Position
	text         string // inserted or removed payload
	oldText      string // replaced text, editReplace only
	cursorBefore Position
	cursorAfter  Position
}

// apply replays the edit forward on the buffer.
func (e *edit) apply(b *Buffer) error {
	switch e.kind {
	case editInsertChars:
		_, err := b.Splice(e.pos.Row, e.pos.Col, e.pos.Col, []rune(e.text))
		return err
	case editDeleteChars:
		_, err := b.Splice(e.pos.Row, e.pos.Col, e.pos.Col+len([]rune(e.text)), nil)
		return err
	case editInsertNewline:
		return b.SplitLine(e.pos.Row, e.pos.Col)
	case editDeleteNewline:
		return b.MergeLine(e.pos.Row)
	case editReplace:
		if e.oldText != "" {
			if _, err := b.DeleteRange(e.pos, advance(e.pos, e.oldText)); err != nil {
				return err
			}
		}
		if e.text != "" {
			if _, err := b.InsertSpanning(e.pos.Row, e.pos.Col, e.text); err != nil {
				return err
			}
		}
		return nil
	}
	return nil
}

// invert returns the edit that rolls this one back, with the cursor
// snapshots swapped.
func (e *edit) invert() edit {
	inv := edit{
		pos:          e.pos,
		text:         e.text,
		oldText:      e.oldText,
		cursorBefore: e.cursorAfter,
		cursorAfter:  e.cursorBefore,
	}
	switch e.kind {
	case editInsertChars:
		inv.kind = editDeleteChars
	case editDeleteChars:
		inv.kind = editInsertChars
	case editInsertNewline:
		inv.kind = editDeleteNewline
	case editDeleteNewline:
		inv.kind = editInsertNewline
	case editReplace:
		inv.kind = editReplace
		inv.text, inv.oldText = e.oldText, e.text
	}
	return inv
}
