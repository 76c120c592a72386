package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// alertModel shows one message until the user dismisses it.
type alertModel struct {
	message   string
	dismissed bool
}

func newAlertModel(message string) alertModel {
	return alertModel{message: message}
}

func (m alertModel) Init() tea.Cmd {
	return nil
}

func (m alertModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
		m.dismissed = true
		return m, tea.Quit
	}

	return m, nil
}

func (m alertModel) View() string {
	if m.dismissed {
		return ""
	}
	content := errorStyle.Render("Error") + "\n\n" + m.message + "\n\n" + helpStyle.Render("enter / esc: close")
	return overlayBoxStyle.Render(content) + "\n"
}
