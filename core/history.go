package core

// history is the bounded undo/redo stack. edits[:index] are applied
// (undoable); edits[index:] have been undone (redoable). Pushing a new edit
// truncates the redone tail, and pushing past capacity evicts the oldest
// undoable record. A capacity of zero disables history entirely.
type history struct {
	index int
	max   int
	edits []edit
}

func newHistory(max int) *history {
	return &history{max: max}
}

func (h *history) push(e edit) {
	if h.max == 0 {
		return
	}
	if h.index < len(h.edits) {
		h.edits = h.edits[:h.index]
	}
	if len(h.edits) == h.max {
		copy(h.edits, h.edits[1:])
		h.edits = h.edits[:len(h.edits)-1]
		h.index--
	}
	h.edits = append(h.edits, e)
	h.index++
}

// undo rolls back the most recent edit and returns the cursor position that
// preceded it. ok is false when there is nothing to undo.
func (h *history) undo(b *Buffer) (Position, bool) {
	if h.index == 0 {
		return Position{}, false
	}
	h.index--
	e := h.edits[h.index]
	inv := e.invert()
	if err := inv.apply(b); err != nil {
		// Records are only ever produced by applied edits, so the inverse
		// must replay cleanly; restore the index rather than corrupt state.
		h.index++
		return Position{}, false
	}
	return e.cursorBefore, true
}

// redo re-applies the most recently undone edit and returns the cursor
// position that followed it.
func (h *history) redo(b *Buffer) (Position, bool) {
	if h.index == len(h.edits) {
		return Position{}, false
	}
	e := h.edits[h.index]
	if err := e.apply(b); err != nil {
		return Position{}, false
	}
	h.index++
	return e.cursorAfter, true
}

func (h *history) canUndo() bool { return h.index > 0 }
func (h *history) canRedo() bool { return h.index < len(h.edits) }

// setMax changes the capacity. Shrinking trims the oldest records
// immediately; zero drops everything and keeps history disabled.
func (h *history) setMax(max int) {
	if max < 0 {
		max = 0
	}
	h.max = max
	if max == 0 {
		h.edits = nil
		h.index = 0
		return
	}
	if len(h.edits) > max {
		excess := len(h.edits) - max
		h.edits = append([]edit(nil), h.edits[excess:]...)
		h.index -= excess
		if h.index < 0 {
			h.index = 0
		}
	}
}

func (h *history) clone() *history {
	return &history{
		index: h.index,
		max:   h.max,
		edits: append([]edit(nil), h.edits...),
	}
}
