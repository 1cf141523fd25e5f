package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// MsgRefresh makes the spoke reload its values from the backend.
type MsgRefresh struct{}

// Update handles events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 4 {
			m.text.SetWidth(msg.Width - 4)
		}
		return m, nil

	case MsgRefresh:
		if err := m.spoke.Refresh(); err != nil {
			logrus.WithError(err).Warn("Unable to refresh the spoke")
			m.err = err
			return m, nil
		}
		m.text.SetValue(m.spoke.Text())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+s":
			m.spoke.SetText(m.text.Value())
			if err := m.spoke.Apply(); err != nil {
				logrus.WithError(err).Error("Unable to apply the spoke")
				m.err = err
				return m, nil
			}
			m.applied = true
			return m, tea.Quit
		case "tab", "shift+tab":
			if m.focus == focusText {
				m.focus = focusReverse
				m.text.Blur()
				return m, nil
			}
			m.focus = focusText
			return m, m.text.Focus()
		}

		if m.focus == focusReverse {
			switch msg.String() {
			case " ", "space", "x", "enter":
				m.spoke.SetReverse(!m.spoke.Reverse())
			}
			return m, nil
		}
	}

	m.text, cmd = m.text.Update(msg)
	m.spoke.SetText(m.text.Value())
	return m, cmd
}
