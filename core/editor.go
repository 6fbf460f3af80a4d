package core

import "strings"

// DefaultMaxHistory is the undo depth used when none is configured.
const DefaultMaxHistory = 50

// Alignment controls how the host renders lines horizontally.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Editor is the text-editing state machine: line buffer, cursor, selection,
// undo history, yank slot, search pattern and scroll offset in one value.
// Every method is a synchronous call that either mutates state and reports
// the outcome or reads state; nothing happens between calls. Editors are not
// safe for concurrent use.
type Editor struct {
	buf    *Buffer
	cursor Cursor
	sel    selection
	hist   *history
	yank   yankBuffer
	search search
	view   Viewport

	tabWidth  int
	hardTab   bool
	align     Alignment
	placehold string
	mask      rune
	inclusive bool

	cursorLine   bool
	cursorHidden bool
}

// New creates an editor over a single empty line.
func New() *Editor {
	return &Editor{
		buf:        NewBuffer(),
		hist:       newHistory(DefaultMaxHistory),
		tabWidth:   DefaultTabWidth,
		cursorLine: true,
	}
}

// NewFromString creates an editor whose buffer holds content split on
// newlines.
func NewFromString(content string) *Editor {
	e := New()
	e.buf = NewBufferFromString(content)
	return e
}

// NewFromLines creates an editor from pre-split lines.
func NewFromLines(lines []string) *Editor {
	e := New()
	e.buf = NewBufferFromLines(lines)
	return e
}

// SetText replaces the buffer contents and resets the cursor, selection,
// undo history and scroll offset. Configured options, the clipboard and
// the search pattern stay in place.
func (e *Editor) SetText(content string) {
	e.buf = NewBufferFromString(content)
	e.cursor = Cursor{}
	e.sel.cancel()
	e.hist = newHistory(e.hist.max)
	e.view.topRow = 0
	e.view.topCol = 0
	e.search.landed = nil
}

// --- accessors ---

// Lines returns the buffer content as strings, one per line.
func (e *Editor) Lines() []string { return e.buf.Lines() }

// Text returns the whole content joined with newlines.
func (e *Editor) Text() string { return e.buf.String() }

// Line returns the line under the given row, "" when out of range.
func (e *Editor) Line(row int) string { return e.buf.Line(row) }

// LineCount returns the number of lines, always at least 1.
func (e *Editor) LineCount() int { return e.buf.LineCount() }

// IsEmpty reports whether the buffer is a single empty line.
func (e *Editor) IsEmpty() bool { return e.buf.IsEmpty() }

// Cursor returns the current cursor position in (row, rune column).
func (e *Editor) Cursor() Position { return e.cursor.Position }

// Viewport exposes the scroll state so hosts can size it and read the
// offset when rendering.
func (e *Editor) Viewport() *Viewport { return &e.view }

// CanUndo reports whether an undo step is available.
func (e *Editor) CanUndo() bool { return e.hist.canUndo() }

// CanRedo reports whether a redo step is available.
func (e *Editor) CanRedo() bool { return e.hist.canRedo() }

// IsSelecting reports whether a selection is active.
func (e *Editor) IsSelecting() bool { return e.sel.active() }

// SelectedRange returns the normalized selection as an ordered (start, end)
// pair, end-exclusive. In inclusive mode the end is widened by one rune,
// clamped to the line end. ok is false when no selection is active or it is
// empty.
func (e *Editor) SelectedRange() (start, end Position, ok bool) {
	return e.selectionRange()
}

// SelectedText returns the text covered by the selection.
func (e *Editor) SelectedText() (string, bool) {
	start, end, ok := e.selectionRange()
	if !ok {
		return "", false
	}
	text, err := e.buf.TextInRange(start, end)
	if err != nil {
		return "", false
	}
	return text, true
}

// YankText returns the current contents of the paste slot.
func (e *Editor) YankText() string { return e.yank.get() }

// SetYankText replaces the paste slot, as if the text had been yanked.
func (e *Editor) SetYankText(text string) { e.yank.set(text) }

// SetClipboard attaches an OS clipboard implementation to the paste slot.
// Pass nil to detach.
func (e *Editor) SetClipboard(c Clipboard) { e.yank.clip = c }

// --- configuration ---

// SetTabWidth sets the tab stop width. Zero disables tab insertion.
func (e *Editor) SetTabWidth(w int) {
	if w < 0 {
		w = 0
	}
	e.tabWidth = w
}

func (e *Editor) TabWidth() int { return e.tabWidth }

// SetHardTab switches InsertTab between a literal tab character and
// tab-stop-aligned spaces.
func (e *Editor) SetHardTab(hard bool) { e.hardTab = hard }

func (e *Editor) HardTab() bool { return e.hardTab }

// SetMaxHistory bounds the undo depth. Shrinking drops the oldest entries
// immediately; zero disables history.
func (e *Editor) SetMaxHistory(n int) { e.hist.setMax(n) }

func (e *Editor) MaxHistory() int { return e.hist.max }

// SetAlignment sets the horizontal alignment hosts should render with.
func (e *Editor) SetAlignment(a Alignment) { e.align = a }

func (e *Editor) Alignment() Alignment { return e.align }

// SetPlaceholder sets the text hosts show while the buffer is empty.
func (e *Editor) SetPlaceholder(text string) { e.placehold = text }

func (e *Editor) Placeholder() string { return e.placehold }

// SetMask makes hosts render every character as the given rune, for
// password-style input. Zero clears the mask.
func (e *Editor) SetMask(r rune) { e.mask = r }

func (e *Editor) Mask() rune { return e.mask }

// SetSelectionInclusive widens selection ranges by one rune at the end,
// clamped to the line end. Only the reported range changes; the anchor
// model stays exclusive.
func (e *Editor) SetSelectionInclusive(inclusive bool) { e.inclusive = inclusive }

func (e *Editor) SelectionInclusive() bool { return e.inclusive }

// SetCursorLineHighlight toggles highlighting of the cursor's line.
func (e *Editor) SetCursorLineHighlight(on bool) { e.cursorLine = on }

func (e *Editor) CursorLineHighlight() bool { return e.cursorLine }

// SetCursorHidden hides the cursor cell, for read-only display.
func (e *Editor) SetCursorHidden(hidden bool) { e.cursorHidden = hidden }

func (e *Editor) CursorHidden() bool { return e.cursorHidden }

// --- cursor movement ---

// MoveCursor applies a motion. With extend true the selection is started at
// the current position (or kept) and stretched to the target; with extend
// false any active selection is cancelled.
func (e *Editor) MoveCursor(m Move, extend bool) {
	if extend {
		e.sel.start(e.cursor.Position)
	} else {
		e.sel.cancel()
	}
	if m == MoveInViewport {
		e.cursor = e.view.clampCursor(e.cursor, e.buf, e.tabWidth, e.mask)
		e.view.follow(e.cursor, e.buf, e.tabWidth, e.mask)
		return
	}
	if next, ok := nextCursor(m, e.cursor, e.buf); ok {
		e.cursor = next
		e.view.follow(e.cursor, e.buf, e.tabWidth, e.mask)
	}
}

// MoveTo jumps to (row, col), clamping both to the buffer.
func (e *Editor) MoveTo(row, col int, extend bool) {
	if extend {
		e.sel.start(e.cursor.Position)
	} else {
		e.sel.cancel()
	}
	row = clamp(row, 0, e.buf.LineCount()-1)
	col = clamp(col, 0, e.buf.LineLen(row))
	e.setCursor(Position{Row: row, Col: col})
}

// Scroll moves the viewport and drags the cursor along so it stays visible.
// An active selection is extended rather than dropped.
func (e *Editor) Scroll(s Scrolling) {
	e.view.scroll(s, e.buf)
	e.MoveCursor(MoveInViewport, e.sel.active())
}

// --- selection ---

// StartSelection anchors a selection at the cursor. A no-op when one is
// already active.
func (e *Editor) StartSelection() { e.sel.start(e.cursor.Position) }

// CancelSelection drops the selection anchor.
func (e *Editor) CancelSelection() { e.sel.cancel() }

// SelectAll selects the whole buffer and moves the cursor to its end.
func (e *Editor) SelectAll() {
	e.sel.set(Position{})
	e.setCursor(e.buf.EndPosition())
}

// SelectWord selects the run of same-kind characters under the cursor and
// moves the cursor just past it. Returns false on an empty line.
func (e *Editor) SelectWord() bool {
	row, col := e.cursor.Position.Row, e.cursor.Position.Col
	line := e.buf.LineRunes(row)
	if len(line) == 0 {
		return false
	}
	if col >= len(line) {
		col = len(line) - 1
	}
	k := kindOf(line[col])
	start := col
	for start > 0 && kindOf(line[start-1]) == k {
		start--
	}
	end := col + 1
	for end < len(line) && kindOf(line[end]) == k {
		end++
	}
	e.sel.set(Position{Row: row, Col: start})
	e.setCursor(Position{Row: row, Col: end})
	return true
}

// --- insertion ---

// InsertChar inserts one character at the cursor. A newline rune behaves
// like InsertNewline. An active selection is deleted first, as its own undo
// step and without touching the yank slot.
func (e *Editor) InsertChar(r rune) {
	if r == '\n' || r == '\r' {
		e.InsertNewline()
		return
	}
	if e.sel.active() {
		e.deleteSelection(false)
	}
	e.insertText(string(r))
}

// InsertString inserts text at the cursor; the text may span lines. Returns
// whether the buffer was modified.
func (e *Editor) InsertString(s string) bool {
	if e.sel.active() {
		e.deleteSelection(false)
	}
	return e.insertText(s)
}

// InsertNewline splits the current line at the cursor.
func (e *Editor) InsertNewline() {
	if e.sel.active() {
		e.deleteSelection(false)
	}
	before := e.cursor.Position
	if err := e.buf.SplitLine(before.Row, before.Col); err != nil {
		return
	}
	after := Position{Row: before.Row + 1}
	e.hist.push(edit{
		kind:         editInsertNewline,
		pos:          before,
		cursorBefore: before,
		cursorAfter:  after,
	})
	e.setCursor(after)
}

// InsertTab inserts indentation at the cursor: a literal tab in hard-tab
// mode, otherwise spaces up to the next tab stop counted in display
// columns. Returns false when the tab width is zero.
func (e *Editor) InsertTab() bool {
	if e.tabWidth <= 0 {
		return false
	}
	if e.sel.active() {
		e.deleteSelection(false)
	}
	if e.hardTab {
		return e.insertText("\t")
	}
	pos := e.cursor.Position
	col := DisplayWidth(e.buf.LineRunes(pos.Row), pos.Col, e.tabWidth, e.mask)
	return e.insertText(strings.Repeat(" ", e.tabWidth-col%e.tabWidth))
}

// --- deletion ---

// DeleteChar deletes the character before the cursor. At the head of a line
// it joins with the previous line instead. Deletes the selection when one
// is active.
func (e *Editor) DeleteChar() bool {
	if e.sel.active() {
		return e.deleteSelection(true)
	}
	pos := e.cursor.Position
	if pos.Col == 0 {
		return e.DeleteNewline()
	}
	line := e.buf.LineRunes(pos.Row)
	removed := string(line[pos.Col-1 : pos.Col])
	if _, err := e.buf.Splice(pos.Row, pos.Col-1, pos.Col, nil); err != nil {
		return false
	}
	after := Position{Row: pos.Row, Col: pos.Col - 1}
	e.hist.push(edit{
		kind:         editDeleteChars,
		pos:          after,
		text:         removed,
		cursorBefore: pos,
		cursorAfter:  after,
	})
	e.setCursor(after)
	return true
}

// DeleteNextChar deletes the character under the cursor. At the end of a
// line it joins with the next line instead.
func (e *Editor) DeleteNextChar() bool {
	if e.sel.active() {
		return e.deleteSelection(true)
	}
	pos := e.cursor.Position
	line := e.buf.LineRunes(pos.Row)
	if pos.Col == len(line) {
		return e.joinNextLine()
	}
	removed := string(line[pos.Col : pos.Col+1])
	if _, err := e.buf.Splice(pos.Row, pos.Col, pos.Col+1, nil); err != nil {
		return false
	}
	e.hist.push(edit{
		kind:         editDeleteChars,
		pos:          pos,
		text:         removed,
		cursorBefore: pos,
		cursorAfter:  pos,
	})
	e.setCursor(pos)
	return true
}

// DeleteNewline joins the current line onto the previous one. The removed
// line break is not yanked.
func (e *Editor) DeleteNewline() bool {
	if e.sel.active() {
		return e.deleteSelection(true)
	}
	row := e.cursor.Position.Row
	if row == 0 {
		return false
	}
	joint := Position{Row: row - 1, Col: e.buf.LineLen(row - 1)}
	if err := e.buf.MergeLine(row - 1); err != nil {
		return false
	}
	e.hist.push(edit{
		kind:         editDeleteNewline,
		pos:          joint,
		cursorBefore: e.cursor.Position,
		cursorAfter:  joint,
	})
	e.setCursor(joint)
	return true
}

// DeleteLineByEnd deletes from the cursor to the end of the line, yanking
// the removed text. At the line end it joins with the next line without
// yanking.
func (e *Editor) DeleteLineByEnd() bool {
	if e.sel.active() {
		return e.deleteSelection(true)
	}
	pos := e.cursor.Position
	end := e.buf.LineLen(pos.Row)
	if pos.Col == end {
		return e.joinNextLine()
	}
	return e.deleteInLine(pos, pos.Col, end, pos)
}

// DeleteLineByHead deletes from the head of the line to the cursor, yanking
// the removed text. At column 0 it joins with the previous line without
// yanking.
func (e *Editor) DeleteLineByHead() bool {
	if e.sel.active() {
		return e.deleteSelection(true)
	}
	pos := e.cursor.Position
	if pos.Col == 0 {
		return e.DeleteNewline()
	}
	return e.deleteInLine(pos, 0, pos.Col, Position{Row: pos.Row})
}

// DeleteWord deletes from the start of the current or previous word to the
// cursor, yanking the removed text. At column 0 it joins with the previous
// line without yanking.
func (e *Editor) DeleteWord() bool {
	if e.sel.active() {
		return e.deleteSelection(true)
	}
	pos := e.cursor.Position
	if pos.Col == 0 {
		return e.DeleteNewline()
	}
	line := e.buf.LineRunes(pos.Row)
	start, ok := findWordStartBackward(line, pos.Col, kindOf)
	if !ok {
		start = 0
	}
	if start == pos.Col {
		return false
	}
	return e.deleteInLine(pos, start, pos.Col, Position{Row: pos.Row, Col: start})
}

// DeleteNextWord deletes from the cursor through the end of the next word,
// yanking the removed text. At the line end it joins with the next line
// without yanking.
func (e *Editor) DeleteNextWord() bool {
	if e.sel.active() {
		return e.deleteSelection(true)
	}
	pos := e.cursor.Position
	line := e.buf.LineRunes(pos.Row)
	if pos.Col == len(line) {
		return e.joinNextLine()
	}
	end, ok := findWordEndForward(line, pos.Col, kindOf)
	if !ok {
		end = len(line)
	}
	if end == pos.Col {
		return false
	}
	return e.deleteInLine(pos, pos.Col, end, pos)
}

// DeleteStr deletes n characters from the cursor forward, counting each
// line break as one character, and yanks the removed text. Undo restores
// the cursor at the end of the deleted range. Deletes the selection when
// one is active, regardless of n.
func (e *Editor) DeleteStr(n int) bool {
	if e.sel.active() {
		return e.deleteSelection(true)
	}
	if n <= 0 {
		return false
	}
	start := e.cursor.Position
	end := start
	for n > 0 {
		rest := e.buf.LineLen(end.Row) - end.Col
		if n <= rest {
			end.Col += n
			break
		}
		if end.Row+1 >= e.buf.LineCount() {
			end.Col += rest
			break
		}
		n -= rest + 1
		end.Row++
		end.Col = 0
	}
	if start == end {
		return false
	}
	return e.deleteRange(start, end, true)
}

// DeleteSelection deletes the selected text, yanking it. Returns false
// when no selection is active.
func (e *Editor) DeleteSelection() bool {
	if !e.sel.active() {
		return false
	}
	return e.deleteSelection(true)
}

// --- clipboard ---

// Copy yanks the selected text without modifying the buffer. The selection
// is cancelled and the cursor stays put.
func (e *Editor) Copy() {
	text, ok := e.SelectedText()
	e.sel.cancel()
	if !ok {
		return
	}
	e.yank.set(text)
}

// Cut deletes the selected text into the yank slot and moves the cursor to
// the start of the removed range.
func (e *Editor) Cut() bool {
	if !e.sel.active() {
		return false
	}
	return e.deleteSelection(true)
}

// Paste inserts the yank slot contents at the cursor. An active selection
// is deleted first as its own undo step. An empty slot leaves everything,
// selection included, untouched.
func (e *Editor) Paste() bool {
	text := e.yank.get()
	if text == "" {
		return false
	}
	if e.sel.active() {
		e.deleteSelection(false)
	}
	return e.insertText(text)
}

// --- history ---

// Undo rolls back the most recent edit, restoring the cursor position that
// preceded it. Any selection is cancelled.
func (e *Editor) Undo() bool {
	pos, ok := e.hist.undo(e.buf)
	if !ok {
		return false
	}
	e.sel.cancel()
	e.setCursor(e.clampPos(pos))
	return true
}

// Redo re-applies the most recently undone edit.
func (e *Editor) Redo() bool {
	pos, ok := e.hist.redo(e.buf)
	if !ok {
		return false
	}
	e.sel.cancel()
	e.setCursor(e.clampPos(pos))
	return true
}

// --- search ---

// SetSearchPattern compiles and installs a search pattern. An empty string
// clears the search; an invalid pattern returns ErrInvalidPattern and
// leaves the previous pattern active.
func (e *Editor) SetSearchPattern(query string) error {
	return e.search.setPattern(query)
}

// SearchPattern returns the source text of the active pattern, "" when
// search is off.
func (e *Editor) SearchPattern() string { return e.search.src }

// HasSearchPattern reports whether a search pattern is active.
func (e *Editor) HasSearchPattern() bool { return e.search.active() }

// SearchMatches returns the [start, end) rune column ranges of pattern
// matches on the given row. Matches reflect the current buffer contents.
func (e *Editor) SearchMatches(row int) [][2]int {
	return e.search.matchesInLine(e.buf.LineRunes(row))
}

// SearchForward moves the cursor to the next match, wrapping at the end of
// the buffer. With matchCursor true a match under the cursor counts.
func (e *Editor) SearchForward(matchCursor bool) bool {
	pos, ok := e.search.forward(e.buf, e.cursor.Position, matchCursor)
	if !ok {
		return false
	}
	e.search.landed = &pos
	e.setCursor(pos)
	return true
}

// SearchBack moves the cursor to the previous match, wrapping at the start
// of the buffer.
func (e *Editor) SearchBack(matchCursor bool) bool {
	pos, ok := e.search.back(e.buf, e.cursor.Position, matchCursor)
	if !ok {
		return false
	}
	e.search.landed = &pos
	e.setCursor(pos)
	return true
}

// ActiveSearchMatch returns the document-order index of the match the last
// search jump landed on and the total number of matches in the buffer. ok
// is false when no jump has happened since the pattern was set, or when
// edits removed the landed match. The total is valid either way.
func (e *Editor) ActiveSearchMatch() (index, total int, ok bool) {
	if !e.search.active() {
		return 0, 0, false
	}
	for row := 0; row < e.buf.LineCount(); row++ {
		for _, m := range e.search.matchesInLine(e.buf.LineRunes(row)) {
			if !ok && e.search.landed != nil &&
				(Position{Row: row, Col: m[0]}) == *e.search.landed {
				index = total
				ok = true
			}
			total++
		}
	}
	if !ok {
		return 0, total, false
	}
	return index, total, true
}

// --- input dispatch ---

// Input applies the default key binding for the event and reports whether
// the buffer was modified. Hosts with their own bindings can skip this and
// call commands directly. Shift turns cursor motions into selection
// extensions.
func (e *Editor) Input(k KeyEvent) bool {
	ctrl := k.Modifiers&ModCtrl != 0
	alt := k.Modifiers&ModAlt != 0
	shift := k.Modifiers&ModShift != 0

	move := func(m Move) bool {
		e.MoveCursor(m, shift)
		return false
	}

	switch {
	case ctrl && !alt:
		// Ctrl with arrows is the word/paragraph variant of the motion.
		switch k.Key {
		case KeyRight:
			return move(MoveWordForward)
		case KeyLeft:
			return move(MoveWordBack)
		case KeyDown:
			return move(MoveParagraphForward)
		case KeyUp:
			return move(MoveParagraphBack)
		case KeyEnter:
			e.InsertNewline()
			return true
		case KeyBackspace:
			return e.DeleteChar()
		case KeyDelete:
			return e.DeleteNextChar()
		case KeyHome:
			return move(MoveHead)
		case KeyEnd:
			return move(MoveEnd)
		case KeyPageDown:
			e.Scroll(ScrollPageDown)
			return false
		}
		switch k.Rune {
		case 'm':
			e.InsertNewline()
			return true
		case 'h':
			return e.DeleteChar()
		case 'd':
			return e.DeleteNextChar()
		case 'k':
			return e.DeleteLineByEnd()
		case 'j':
			return e.DeleteLineByHead()
		case 'w':
			return e.DeleteWord()
		case 'n':
			return move(MoveDown)
		case 'p':
			return move(MoveUp)
		case 'f':
			return move(MoveForward)
		case 'b':
			return move(MoveBack)
		case 'a':
			return move(MoveHead)
		case 'e':
			return move(MoveEnd)
		case 'u':
			return e.Undo()
		case 'r':
			return e.Redo()
		case 'y':
			return e.Paste()
		case 'c':
			e.Copy()
			return false
		case 'x':
			return e.Cut()
		case 'v':
			e.Scroll(ScrollPageDown)
			return false
		}
	case alt && !ctrl:
		switch {
		case k.Rune == 'h' || k.Key == KeyBackspace:
			return e.DeleteWord()
		case k.Rune == 'd' || k.Key == KeyDelete:
			return e.DeleteNextWord()
		case k.Rune == '<':
			return move(MoveTop)
		case k.Rune == '>':
			return move(MoveBottom)
		case k.Rune == 'f':
			return move(MoveWordForward)
		case k.Rune == 'b':
			return move(MoveWordBack)
		case k.Rune == ']' || k.Rune == 'n':
			return move(MoveParagraphForward)
		case k.Rune == '[' || k.Rune == 'p':
			return move(MoveParagraphBack)
		case k.Rune == 'v' || k.Key == KeyPageUp:
			e.Scroll(ScrollPageUp)
			return false
		}
	case !ctrl && !alt:
		switch k.Key {
		case KeyEnter:
			e.InsertNewline()
			return true
		case KeyTab:
			return e.InsertTab()
		case KeyBackspace:
			return e.DeleteChar()
		case KeyDelete:
			return e.DeleteNextChar()
		case KeyUp:
			return move(MoveUp)
		case KeyDown:
			return move(MoveDown)
		case KeyLeft:
			return move(MoveBack)
		case KeyRight:
			return move(MoveForward)
		case KeyHome:
			return move(MoveHead)
		case KeyEnd:
			return move(MoveEnd)
		case KeyPageDown:
			e.Scroll(ScrollPageDown)
			return false
		case KeyPageUp:
			e.Scroll(ScrollPageUp)
			return false
		case KeySpace:
			e.InsertChar(' ')
			return true
		}
		if k.Rune != 0 {
			e.InsertChar(k.Rune)
			return true
		}
	}
	return false
}

// Clone returns a deep copy sharing no mutable state with the receiver. The
// attached OS clipboard, if any, is shared.
func (e *Editor) Clone() *Editor {
	c := *e
	c.buf = e.buf.Clone()
	c.hist = e.hist.clone()
	c.sel = e.sel.clone()
	c.search = e.search.clone()
	return &c
}

// --- internals ---

func (e *Editor) setCursor(p Position) {
	e.cursor = Cursor{Position: p, Preferred: p.Col}
	e.view.follow(e.cursor, e.buf, e.tabWidth, e.mask)
}

func (e *Editor) clampPos(p Position) Position {
	p.Row = clamp(p.Row, 0, e.buf.LineCount()-1)
	p.Col = clamp(p.Col, 0, e.buf.LineLen(p.Row))
	return p
}

// selectionRange is SelectedRange plus the inclusive-mode widening.
func (e *Editor) selectionRange() (Position, Position, bool) {
	start, end, ok := e.sel.rangeWith(e.cursor.Position)
	if !ok {
		return start, end, false
	}
	if e.inclusive && end.Col < e.buf.LineLen(end.Row) {
		end.Col++
	}
	return start, end, true
}

// insertText funnels all insertion: single-line payloads are recorded as
// plain char inserts, multi-line ones as replace records.
func (e *Editor) insertText(s string) bool {
	if s == "" {
		return false
	}
	before := e.cursor.Position
	end, err := e.buf.InsertSpanning(before.Row, before.Col, s)
	if err != nil {
		return false
	}
	kind := editInsertChars
	if strings.ContainsRune(s, '\n') {
		kind = editReplace
	}
	e.hist.push(edit{
		kind:         kind,
		pos:          before,
		text:         s,
		cursorBefore: before,
		cursorAfter:  end,
	})
	e.setCursor(end)
	return true
}

// deleteInLine removes [colStart, colEnd) on pos.Row, yanking the removed
// text and leaving the cursor at after.
func (e *Editor) deleteInLine(pos Position, colStart, colEnd int, after Position) bool {
	removed, err := e.buf.Splice(pos.Row, colStart, colEnd, nil)
	if err != nil || removed == "" {
		return false
	}
	e.yank.set(removed)
	e.hist.push(edit{
		kind:         editDeleteChars,
		pos:          Position{Row: pos.Row, Col: colStart},
		text:         removed,
		cursorBefore: pos,
		cursorAfter:  after,
	})
	e.setCursor(after)
	return true
}

// deleteRange removes [start, end) of any span, yanking when asked. The
// record stores the range end as the pre-edit cursor, so undo restores the
// cursor as if it had moved to the end of the deleted text.
func (e *Editor) deleteRange(start, end Position, yank bool) bool {
	removed, err := e.buf.DeleteRange(start, end)
	if err != nil || removed == "" {
		return false
	}
	if yank {
		e.yank.set(removed)
	}
	e.hist.push(edit{
		kind:         editReplace,
		pos:          start,
		oldText:      removed,
		cursorBefore: end,
		cursorAfter:  start,
	})
	e.setCursor(start)
	return true
}

// deleteSelection drops the anchor and removes the selected range.
func (e *Editor) deleteSelection(yank bool) bool {
	start, end, ok := e.selectionRange()
	e.sel.cancel()
	if !ok {
		return false
	}
	return e.deleteRange(start, end, yank)
}

// joinNextLine merges the next line onto the current one, for forward
// deletes at the end of a line. The line break is not yanked.
func (e *Editor) joinNextLine() bool {
	row := e.cursor.Position.Row
	if row+1 >= e.buf.LineCount() {
		return false
	}
	joint := Position{Row: row, Col: e.buf.LineLen(row)}
	if err := e.buf.MergeLine(row); err != nil {
		return false
	}
	e.hist.push(edit{
		kind:         editDeleteNewline,
		pos:          joint,
		cursorBefore: e.cursor.Position,
		cursorAfter:  joint,
	})
	e.setCursor(joint)
	return true
}
