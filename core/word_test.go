package core

import "testing"

func TestKindOf(t *testing.T) {
	tests := []struct {
		r    rune
		want charKind
	}{
		{' ', kindSpace},
		{'\t', kindSpace},
		{'a', kindWord},
		{'0', kindWord},
		{'.', kindPunct},
		{'=', kindPunct},
		{'あ', kindWord},
		// Non-ASCII punctuation groups with ordinary characters.
		{'、', kindWord},
	}
	for _, tt := range tests {
		if got := kindOf(tt.r); got != tt.want {
			t.Errorf("kindOf(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestFindWordStartForward(t *testing.T) {
	line := []rune("aaa !!! bbb")
	tests := []struct {
		col  int
		want int
		ok   bool
	}{
		{0, 4, true},  // from word to punct run
		{4, 8, true},  // from punct to next word
		{8, 0, false}, // nothing after the last word
		{10, 0, false},
	}
	for _, tt := range tests {
		got, ok := findWordStartForward(line, tt.col, kindOf)
		if got != tt.want || ok != tt.ok {
			t.Errorf("from %d: got (%d, %v), want (%d, %v)", tt.col, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFindWordStartForwardBigWord(t *testing.T) {
	line := []rune("a.b c.d")
	if got, ok := findWordStartForward(line, 0, kindOf); !ok || got != 1 {
		t.Errorf("word scan stopped at %d", got)
	}
	if got, ok := findWordStartForward(line, 0, kindOfBig); !ok || got != 4 {
		t.Errorf("WORD scan stopped at %d", got)
	}
}

func TestFindWordEndForward(t *testing.T) {
	line := []rune("word  next")
	tests := []struct {
		col  int
		want int
		ok   bool
	}{
		{0, 4, true}, // end of "word"
		{2, 4, true},
		{4, 0, false}, // trailing run reaches line end
		{6, 0, false},
	}
	for _, tt := range tests {
		got, ok := findWordEndForward(line, tt.col, kindOf)
		if got != tt.want || ok != tt.ok {
			t.Errorf("from %d: got (%d, %v), want (%d, %v)", tt.col, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFindWordEndNext(t *testing.T) {
	line := []rune("foo bar")
	tests := []struct {
		col  int
		want int
		ok   bool
	}{
		{0, 2, true}, // cursor on 'f', end of "foo"
		{2, 6, true}, // already on a word end, skip to "bar"
		{4, 6, true},
		{6, 0, false},
	}
	for _, tt := range tests {
		got, ok := findWordEndNext(line, tt.col, kindOf)
		if got != tt.want || ok != tt.ok {
			t.Errorf("from %d: got (%d, %v), want (%d, %v)", tt.col, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFindFirstWordEnd(t *testing.T) {
	tests := []struct {
		line string
		want int
		ok   bool
	}{
		{"foo bar", 2, true},
		{"  foo", 4, true},
		{"x y", 0, true},
		{"   ", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := findFirstWordEnd([]rune(tt.line), kindOf)
		if got != tt.want || ok != tt.ok {
			t.Errorf("%q: got (%d, %v), want (%d, %v)", tt.line, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFindWordStartBackward(t *testing.T) {
	line := []rune("word  now.")
	tests := []struct {
		col  int
		want int
		ok   bool
	}{
		{0, 0, false},
		{2, 0, true},  // inside "word"
		{4, 0, true},  // just past "word"
		{6, 0, true},  // in the space run, back to "word"
		{8, 6, true},  // inside "now"
		{9, 6, true},  // on the dot, back to "now"
		{10, 9, true}, // past the dot
	}
	for _, tt := range tests {
		got, ok := findWordStartBackward(line, tt.col, kindOf)
		if got != tt.want || ok != tt.ok {
			t.Errorf("from %d: got (%d, %v), want (%d, %v)", tt.col, got, ok, tt.want, tt.ok)
		}
	}
}
