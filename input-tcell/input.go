// Package tcellinput converts tcell key events into the editor's
// normalized key events, for hosts that render with tcell instead of
// bubbletea. The core stays free of any terminal backend dependency.
package tcellinput

import (
	"github.com/gdamore/tcell/v2"

	editor "github.com/typeline-tui/typeline/core"
)

// Convert translates a tcell key event. Events with no editor meaning come
// back as KeyUnknown with a zero rune.
func Convert(ev *tcell.EventKey) editor.KeyEvent {
	key := editor.KeyEvent{Modifiers: convertModifiers(ev.Modifiers())}

	switch ev.Key() {
	case tcell.KeyRune:
		key.Rune = ev.Rune()
		if key.Rune == ' ' {
			key.Key = editor.KeySpace
		}
	case tcell.KeyEnter:
		key.Key = editor.KeyEnter
	case tcell.KeyTab:
		key.Key = editor.KeyTab
		key.Rune = '\t'
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		key.Key = editor.KeyBackspace
	case tcell.KeyEsc:
		key.Key = editor.KeyEscape
	case tcell.KeyUp:
		key.Key = editor.KeyUp
	case tcell.KeyDown:
		key.Key = editor.KeyDown
	case tcell.KeyLeft:
		key.Key = editor.KeyLeft
	case tcell.KeyRight:
		key.Key = editor.KeyRight
	case tcell.KeyHome:
		key.Key = editor.KeyHome
	case tcell.KeyEnd:
		key.Key = editor.KeyEnd
	case tcell.KeyPgUp:
		key.Key = editor.KeyPageUp
	case tcell.KeyPgDn:
		key.Key = editor.KeyPageDown
	case tcell.KeyDelete:
		key.Key = editor.KeyDelete
	case tcell.KeyInsert:
		key.Key = editor.KeyInsert
	default:
		// Ctrl+letter arrives as a dedicated key code; fold it back into
		// the letter rune plus the Ctrl modifier.
		if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			key.Rune = 'a' + rune(k-tcell.KeyCtrlA)
			key.Modifiers |= editor.ModCtrl
		}
	}

	return key
}

func convertModifiers(mods tcell.ModMask) editor.KeyModifiers {
	var out editor.KeyModifiers
	if mods&tcell.ModCtrl != 0 {
		out |= editor.ModCtrl
	}
	if mods&tcell.ModAlt != 0 {
		out |= editor.ModAlt
	}
	if mods&tcell.ModShift != 0 {
		out |= editor.ModShift
	}
	return out
}
