package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	adapter "github.com/typeline-tui/typeline/adapter-bubbletea"
)

type model struct {
	editor adapter.Model
	file   string
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+q":
			return m, tea.Quit
		case "ctrl+s":
			if m.file != "" {
				if err := os.WriteFile(m.file, []byte(m.editor.Editor().Text()), 0644); err != nil {
					log.Println(err)
				}
			}
			return m, nil
		}
	}

	next, cmd := m.editor.Update(msg)
	m.editor = next.(adapter.Model)
	return m, cmd
}

func (m model) View() string {
	return m.editor.View()
}

func main() {
	m := model{editor: adapter.New(80, 24)}
	m.editor.Editor().SetPlaceholder("Start typing, Ctrl+Q to quit...")
	m.editor.UseOSClipboard(true)

	if len(os.Args) > 1 {
		m.file = os.Args[1]
		content, err := os.ReadFile(m.file)
		if err != nil && !os.IsNotExist(err) {
			log.Fatal(err)
		}
		m.editor.SetContent(string(content))
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
