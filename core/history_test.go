package core

import "testing"

func insertEdit(pos Position, text string) edit {
	return edit{
		kind:         editInsertChars,
		pos:          pos,
		text:         text,
		cursorBefore: pos,
		cursorAfter:  Position{Row: pos.Row, Col: pos.Col + len([]rune(text))},
	}
}

func TestHistoryUndoRedo(t *testing.T) {
	b := NewBuffer()
	h := newHistory(10)

	e1 := insertEdit(Position{0, 0}, "ab")
	if err := e1.apply(b); err != nil {
		t.Fatal(err)
	}
	h.push(e1)
	e2 := insertEdit(Position{0, 2}, "cd")
	if err := e2.apply(b); err != nil {
		t.Fatal(err)
	}
	h.push(e2)

	if b.String() != "abcd" {
		t.Fatalf("buffer = %q", b.String())
	}

	pos, ok := h.undo(b)
	if !ok || b.String() != "ab" || pos != (Position{0, 2}) {
		t.Fatalf("undo: ok=%v buf=%q pos=%v", ok, b.String(), pos)
	}
	pos, ok = h.undo(b)
	if !ok || b.String() != "" || pos != (Position{0, 0}) {
		t.Fatalf("undo: ok=%v buf=%q pos=%v", ok, b.String(), pos)
	}
	if _, ok := h.undo(b); ok {
		t.Fatal("undo past the beginning succeeded")
	}

	pos, ok = h.redo(b)
	if !ok || b.String() != "ab" || pos != (Position{0, 2}) {
		t.Fatalf("redo: ok=%v buf=%q pos=%v", ok, b.String(), pos)
	}
	pos, ok = h.redo(b)
	if !ok || b.String() != "abcd" || pos != (Position{0, 4}) {
		t.Fatalf("redo: ok=%v buf=%q pos=%v", ok, b.String(), pos)
	}
	if _, ok := h.redo(b); ok {
		t.Fatal("redo past the end succeeded")
	}
}

func TestHistoryPushClearsRedo(t *testing.T) {
	b := NewBuffer()
	h := newHistory(10)

	e1 := insertEdit(Position{0, 0}, "a")
	e1.apply(b)
	h.push(e1)
	h.undo(b)

	e2 := insertEdit(Position{0, 0}, "b")
	e2.apply(b)
	h.push(e2)

	if h.canRedo() {
		t.Fatal("redo available after a fresh edit")
	}
	if b.String() != "b" {
		t.Fatalf("buffer = %q", b.String())
	}
}

func TestHistoryCapacityEvictsOldest(t *testing.T) {
	b := NewBuffer()
	h := newHistory(2)

	for i, text := range []string{"a", "b", "c"} {
		e := insertEdit(Position{0, i}, text)
		if err := e.apply(b); err != nil {
			t.Fatal(err)
		}
		h.push(e)
	}
	if b.String() != "abc" {
		t.Fatalf("buffer = %q", b.String())
	}

	undone := 0
	for {
		if _, ok := h.undo(b); !ok {
			break
		}
		undone++
	}
	if undone != 2 {
		t.Fatalf("undid %d edits, want 2", undone)
	}
	if b.String() != "a" {
		t.Fatalf("buffer after undos = %q", b.String())
	}
}

func TestHistoryZeroCapacity(t *testing.T) {
	h := newHistory(0)
	h.push(insertEdit(Position{0, 0}, "a"))
	if h.canUndo() {
		t.Fatal("zero-capacity history recorded an edit")
	}
}

func TestHistorySetMaxTrims(t *testing.T) {
	b := NewBuffer()
	h := newHistory(10)
	for i, text := range []string{"a", "b", "c", "d"} {
		e := insertEdit(Position{0, i}, text)
		e.apply(b)
		h.push(e)
	}

	h.setMax(2)
	undone := 0
	for {
		if _, ok := h.undo(b); !ok {
			break
		}
		undone++
	}
	if undone != 2 {
		t.Fatalf("undid %d edits after shrink, want 2", undone)
	}

	h.setMax(0)
	if h.canUndo() || h.canRedo() {
		t.Fatal("setMax(0) left history behind")
	}
}

func TestEditInvertRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		start string
		e     edit
		after string
	}{
		{
			"insert chars",
			"ad",
			edit{kind: editInsertChars, pos: Position{0, 1}, text: "bc"},
			"abcd",
		},
		{
			"delete chars",
			"abcd",
			edit{kind: editDeleteChars, pos: Position{0, 1}, text: "bc"},
			"ad",
		},
		{
			"insert newline",
			"abcd",
			edit{kind: editInsertNewline, pos: Position{0, 2}},
			"ab\ncd",
		},
		{
			"delete newline",
			"ab\ncd",
			edit{kind: editDeleteNewline, pos: Position{0, 2}},
			"abcd",
		},
		{
			"replace",
			"axd",
			edit{kind: editReplace, pos: Position{0, 1}, text: "b\nc", oldText: "x"},
			"ab\ncd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBufferFromString(tt.start)
			if err := tt.e.apply(b); err != nil {
				t.Fatal(err)
			}
			if got := b.String(); got != tt.after {
				t.Fatalf("after apply: %q, want %q", got, tt.after)
			}
			inv := tt.e.invert()
			if err := inv.apply(b); err != nil {
				t.Fatal(err)
			}
			if got := b.String(); got != tt.start {
				t.Fatalf("after invert: %q, want %q", got, tt.start)
			}
		})
	}
}
