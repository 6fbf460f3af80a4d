package core

// selection tracks the anchor of an active selection. The selected range is
// the ordered pair of anchor and cursor; there is no separate direction
// state, so extending a selection past its own anchor just flips the order.
type selection struct {
	anchor *Position
}

func (s *selection) active() bool {
	return s.anchor != nil
}

// start records the anchor unless a selection is already active.
func (s *selection) start(at Position) {
	if s.anchor == nil {
		p := at
		s.anchor = &p
	}
}

// set unconditionally re-anchors the selection, for select-all style
// commands that define both ends themselves.
func (s *selection) set(at Position) {
	p := at
	s.anchor = &p
}

func (s *selection) cancel() {
	s.anchor = nil
}

// rangeWith returns the normalized (start, end) pair against the given
// cursor position, end-exclusive. ok is false when no selection is active or
// the selection is empty.
func (s *selection) rangeWith(cursor Position) (start, end Position, ok bool) {
	if s.anchor == nil {
		return Position{}, Position{}, false
	}
	start = minPos(*s.anchor, cursor)
	end = maxPos(*s.anchor, cursor)
	if start == end {
		return start, end, false
	}
	return start, end, true
}

func (s *selection) clone() selection {
	if s.anchor == nil {
		return selection{}
	}
	p := *s.anchor
	return selection{anchor: &p}
}
