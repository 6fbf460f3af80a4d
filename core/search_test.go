package core

import (
	"errors"
	"testing"
)

func searchFixture() *Editor {
	return NewFromLines([]string{
		"fooo foo",
		"foo fo foo fooo",
		"foooo",
	})
}

func TestSearchForward(t *testing.T) {
	e := searchFixture()
	e.MoveTo(1, 4, false)
	if err := e.SetSearchPattern("fo+"); err != nil {
		t.Fatal(err)
	}

	expected := []Position{
		{1, 7}, {1, 11}, {2, 0}, {0, 0}, {0, 5}, {1, 0}, {1, 4},
	}
	for i, want := range expected {
		if !e.SearchForward(false) {
			t.Fatalf("move %d did not happen, cursor %v", i, e.Cursor())
		}
		if got := e.Cursor(); got != want {
			t.Fatalf("move %d: got %v, want %v", i, got, want)
		}
	}
}

func TestSearchBackward(t *testing.T) {
	e := searchFixture()
	e.MoveTo(1, 4, false)
	if err := e.SetSearchPattern("fo+"); err != nil {
		t.Fatal(err)
	}

	expected := []Position{
		{1, 0}, {0, 5}, {0, 0}, {2, 0}, {1, 11}, {1, 7}, {1, 4},
	}
	for i, want := range expected {
		if !e.SearchBack(false) {
			t.Fatalf("move %d did not happen, cursor %v", i, e.Cursor())
		}
		if got := e.Cursor(); got != want {
			t.Fatalf("move %d: got %v, want %v", i, got, want)
		}
	}
}

func TestSearchNotFound(t *testing.T) {
	e := NewFromLines([]string{"fo fo fo fo"})
	if err := e.SetSearchPattern("foo+"); err != nil {
		t.Fatal(err)
	}
	if e.SearchForward(false) {
		t.Error("forward search matched nothing but moved")
	}
	if e.SearchBack(false) {
		t.Error("backward search matched nothing but moved")
	}
}

func TestSearchMatchCursor(t *testing.T) {
	e := NewFromLines([]string{"foooo fooooooo"})
	if err := e.SetSearchPattern("foo+"); err != nil {
		t.Fatal(err)
	}

	cursor := e.Cursor()
	if !e.SearchForward(true) {
		t.Fatal("forward search did not move")
	}
	if e.Cursor() != cursor {
		t.Errorf("cursor moved off its own match: %v", e.Cursor())
	}
	if !e.SearchBack(true) {
		t.Fatal("backward search did not move")
	}
	if e.Cursor() != cursor {
		t.Errorf("cursor moved off its own match: %v", e.Cursor())
	}
}

func TestActiveSearchMatch(t *testing.T) {
	e := searchFixture()
	if err := e.SetSearchPattern("fo+"); err != nil {
		t.Fatal(err)
	}

	// Before any jump only the total is known.
	if _, total, ok := e.ActiveSearchMatch(); ok || total != 7 {
		t.Fatalf("before jump: total=%d ok=%v", total, ok)
	}

	e.SearchForward(false)
	if idx, total, ok := e.ActiveSearchMatch(); !ok || idx != 1 || total != 7 {
		t.Fatalf("after forward: idx=%d total=%d ok=%v", idx, total, ok)
	}
	e.SearchBack(false)
	if idx, _, ok := e.ActiveSearchMatch(); !ok || idx != 0 {
		t.Fatalf("after back: idx=%d ok=%v", idx, ok)
	}

	// An edit that moves the landed match start invalidates the index.
	e.InsertChar('x')
	if _, total, ok := e.ActiveSearchMatch(); ok || total != 7 {
		t.Fatalf("stale landing: total=%d ok=%v", total, ok)
	}

	// Changing the pattern clears the landing.
	e.SearchForward(false)
	if err := e.SetSearchPattern("fooo"); err != nil {
		t.Fatal(err)
	}
	if _, _, ok := e.ActiveSearchMatch(); ok {
		t.Fatal("pattern change kept the old landing")
	}
}

func TestSetSearchPattern(t *testing.T) {
	e := New()

	if e.HasSearchPattern() {
		t.Fatal("fresh editor has a pattern")
	}
	err := e.SetSearchPattern("(foo")
	if !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("invalid pattern error = %v", err)
	}
	if e.HasSearchPattern() {
		t.Fatal("invalid pattern was installed")
	}

	if err := e.SetSearchPattern("(fo+)ba+r"); err != nil {
		t.Fatal(err)
	}
	if got := e.SearchPattern(); got != "(fo+)ba+r" {
		t.Fatalf("pattern = %q", got)
	}

	// A failing compile keeps the previous pattern.
	if err := e.SetSearchPattern("(oops"); err == nil {
		t.Fatal("expected error")
	}
	if got := e.SearchPattern(); got != "(fo+)ba+r" {
		t.Fatalf("pattern after failed set = %q", got)
	}

	if err := e.SetSearchPattern(""); err != nil {
		t.Fatal(err)
	}
	if e.HasSearchPattern() {
		t.Fatal("empty pattern did not clear search")
	}
}

func TestSearchMatchesInLine(t *testing.T) {
	e := NewFromLines([]string{"foo bar foo", "none here"})
	if err := e.SetSearchPattern("foo"); err != nil {
		t.Fatal(err)
	}

	got := e.SearchMatches(0)
	want := [][2]int{{0, 3}, {8, 11}}
	if len(got) != len(want) {
		t.Fatalf("matches = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("match %d = %v, want %v", i, got[i], want[i])
		}
	}
	if m := e.SearchMatches(1); len(m) != 0 {
		t.Fatalf("unexpected matches %v", m)
	}
}

func TestSearchMatchesRuneColumns(t *testing.T) {
	// Multibyte characters before the match must not skew the columns.
	e := NewFromLines([]string{"あい foo"})
	if err := e.SetSearchPattern("foo"); err != nil {
		t.Fatal(err)
	}
	got := e.SearchMatches(0)
	if len(got) != 1 || got[0] != [2]int{3, 6} {
		t.Fatalf("matches = %v, want [[3 6]]", got)
	}
}
