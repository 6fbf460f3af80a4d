package tcellinput

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	editor "github.com/typeline-tui/typeline/core"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want editor.KeyEvent
	}{
		{
			"plain rune",
			tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone),
			editor.KeyEvent{Rune: 'x'},
		},
		{
			"space",
			tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone),
			editor.KeyEvent{Rune: ' ', Key: editor.KeySpace},
		},
		{
			"enter",
			tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
			editor.KeyEvent{Key: editor.KeyEnter},
		},
		{
			"tab",
			tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone),
			editor.KeyEvent{Rune: '\t', Key: editor.KeyTab},
		},
		{
			"backspace",
			tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone),
			editor.KeyEvent{Key: editor.KeyBackspace},
		},
		{
			"shift right",
			tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModShift),
			editor.KeyEvent{Key: editor.KeyRight, Modifiers: editor.ModShift},
		},
		{
			"alt rune",
			tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModAlt),
			editor.KeyEvent{Rune: 'f', Modifiers: editor.ModAlt},
		},
		{
			"ctrl letter",
			tcell.NewEventKey(tcell.KeyCtrlK, 0, tcell.ModCtrl),
			editor.KeyEvent{Rune: 'k', Modifiers: editor.ModCtrl},
		},
		{
			"page down",
			tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone),
			editor.KeyEvent{Key: editor.KeyPageDown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Convert(tt.ev); got != tt.want {
				t.Errorf("Convert = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestConvertFeedsEditor(t *testing.T) {
	e := editor.New()
	for _, r := range "hi" {
		e.Input(Convert(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)))
	}
	e.Input(Convert(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	e.Input(Convert(tcell.NewEventKey(tcell.KeyRune, '!', tcell.ModNone)))

	if got := e.Text(); got != "hi\n!" {
		t.Fatalf("text = %q", got)
	}
}
