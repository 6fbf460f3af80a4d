package bubble_adapter

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	editor "github.com/typeline-tui/typeline/core"
)

type Theme struct {
	TextStyle              lipgloss.Style
	CursorStyle            lipgloss.Style
	CursorLineStyle        lipgloss.Style
	SelectionStyle         lipgloss.Style
	SearchMatchStyle       lipgloss.Style
	LineNumberStyle        lipgloss.Style
	CurrentLineNumberStyle lipgloss.Style
	PlaceholderStyle       lipgloss.Style
}

var DefaultTheme = Theme{
	TextStyle:              lipgloss.NewStyle(),
	CursorStyle:            lipgloss.NewStyle().Reverse(true),
	CursorLineStyle:        lipgloss.NewStyle().Background(lipgloss.Color("236")),
	SelectionStyle:         lipgloss.NewStyle().Background(lipgloss.Color("237")),
	SearchMatchStyle:       lipgloss.NewStyle().Background(lipgloss.Color("58")),
	LineNumberStyle:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Width(4).Align(lipgloss.Right),
	CurrentLineNumberStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(4).Align(lipgloss.Right),
	PlaceholderStyle:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

type atottoClipboard struct{}

func (c *atottoClipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}

func (c *atottoClipboard) Read() (string, error) {
	return clipboard.ReadAll()
}

// Model hosts a core editor inside a bubbletea program: it converts key
// messages into editor commands and renders the visible slice of the
// buffer with the current theme.
type Model struct {
	editor          *editor.Editor
	viewport        viewport.Model
	theme           Theme
	width           int
	height          int
	showLineNumbers bool
	useOSClipboard  bool
	isFocused       bool
}

func New(width, height int) Model {
	m := Model{
		editor:          editor.New(),
		viewport:        viewport.New(width, height),
		theme:           DefaultTheme,
		showLineNumbers: true,
		isFocused:       true,
	}
	m.SetSize(width, height)
	return m
}

// Editor exposes the wrapped editor so hosts can call commands and
// configure it directly.
func (m *Model) Editor() *editor.Editor {
	return m.editor
}

// SetContent replaces the buffer content and drops undo history.
func (m *Model) SetContent(content string) {
	m.editor.SetText(content)
	m.SetSize(m.width, m.height)
}

// WithTheme sets a custom theme.
func (m *Model) WithTheme(theme Theme) {
	m.theme = theme
}

// HideLineNumbers controls whether line numbers are rendered. They are
// only shown with left alignment regardless of this setting.
func (m *Model) HideLineNumbers(hide bool) {
	m.showLineNumbers = !hide
	m.SetSize(m.width, m.height)
}

// UseOSClipboard mirrors the editor's yank slot to the system clipboard.
func (m *Model) UseOSClipboard(use bool) {
	m.useOSClipboard = use
	if use {
		m.editor.SetClipboard(&atottoClipboard{})
	} else {
		m.editor.SetClipboard(nil)
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.editor.Viewport().SetSize(width-m.gutterWidth(), height)
}

func (m *Model) Focus() {
	m.isFocused = true
}

func (m *Model) Blur() {
	m.isFocused = false
}

func (m *Model) IsFocused() bool {
	return m.isFocused
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if !m.isFocused {
			return m, nil
		}
		key := convertBubbleKey(msg)
		if key.Key == editor.KeyEscape {
			m.editor.CancelSelection()
			return m, nil
		}
		m.editor.Input(key)
	}
	return m, nil
}

func (m Model) View() string {
	m.viewport.SetContent(m.renderLines())
	return m.viewport.View()
}

func convertBubbleKey(msg tea.KeyMsg) editor.KeyEvent {
	key := editor.KeyEvent{}

	if msg.Alt {
		key.Modifiers |= editor.ModAlt
	}

	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) > 0 {
			key.Rune = msg.Runes[0]
		}
		return key
	case tea.KeyEnter:
		key.Key = editor.KeyEnter
	case tea.KeySpace:
		key.Key = editor.KeySpace
		key.Rune = ' '
	case tea.KeyEsc:
		key.Key = editor.KeyEscape
	case tea.KeyBackspace:
		key.Key = editor.KeyBackspace
	case tea.KeyTab:
		key.Key = editor.KeyTab
		key.Rune = '\t'
	case tea.KeyUp:
		key.Key = editor.KeyUp
	case tea.KeyDown:
		key.Key = editor.KeyDown
	case tea.KeyLeft:
		key.Key = editor.KeyLeft
	case tea.KeyRight:
		key.Key = editor.KeyRight
	case tea.KeyHome:
		key.Key = editor.KeyHome
	case tea.KeyEnd:
		key.Key = editor.KeyEnd
	case tea.KeyDelete:
		key.Key = editor.KeyDelete
	case tea.KeyPgUp:
		key.Key = editor.KeyPageUp
	case tea.KeyPgDown:
		key.Key = editor.KeyPageDown

	case tea.KeyShiftUp:
		key.Key = editor.KeyUp
		key.Modifiers |= editor.ModShift
	case tea.KeyShiftDown:
		key.Key = editor.KeyDown
		key.Modifiers |= editor.ModShift
	case tea.KeyShiftLeft:
		key.Key = editor.KeyLeft
		key.Modifiers |= editor.ModShift
	case tea.KeyShiftRight:
		key.Key = editor.KeyRight
		key.Modifiers |= editor.ModShift
	case tea.KeyShiftHome:
		key.Key = editor.KeyHome
		key.Modifiers |= editor.ModShift
	case tea.KeyShiftEnd:
		key.Key = editor.KeyEnd
		key.Modifiers |= editor.ModShift

	case tea.KeyCtrlUp:
		key.Key = editor.KeyUp
		key.Modifiers |= editor.ModCtrl
	case tea.KeyCtrlDown:
		key.Key = editor.KeyDown
		key.Modifiers |= editor.ModCtrl
	case tea.KeyCtrlLeft:
		key.Key = editor.KeyLeft
		key.Modifiers |= editor.ModCtrl
	case tea.KeyCtrlRight:
		key.Key = editor.KeyRight
		key.Modifiers |= editor.ModCtrl
	case tea.KeyCtrlShiftUp:
		key.Key = editor.KeyUp
		key.Modifiers |= editor.ModCtrl | editor.ModShift
	case tea.KeyCtrlShiftDown:
		key.Key = editor.KeyDown
		key.Modifiers |= editor.ModCtrl | editor.ModShift
	case tea.KeyCtrlShiftLeft:
		key.Key = editor.KeyLeft
		key.Modifiers |= editor.ModCtrl | editor.ModShift
	case tea.KeyCtrlShiftRight:
		key.Key = editor.KeyRight
		key.Modifiers |= editor.ModCtrl | editor.ModShift

	default:
		// Control characters arrive as their own key types; fold them back
		// into a rune plus the Ctrl modifier.
		if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
			key.Rune = 'a' + rune(msg.Type-tea.KeyCtrlA)
			key.Modifiers |= editor.ModCtrl
		}
	}

	return key
}
