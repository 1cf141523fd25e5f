package tui

import (
	"strings"

	"github.com/grandchild/hello_world"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle    = lipgloss.NewStyle().Faint(true)
)

// View renders the spoke.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.translator.Get("tui_spoke_title")))
	b.WriteString("\n")
	b.WriteString(m.text.View())
	b.WriteString("\n\n")
	b.WriteString(m.reverseView())
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.spoke.Status()))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render(
			m.translator.GetWith("tui_error", hello_world.StringMap{"error": m.err.Error()}),
		))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.translator.Get("tui_help")))
	b.WriteString("\n")
	return b.String()
}

func (m Model) reverseView() string {
	box := "[ ] "
	if m.spoke.Reverse() {
		box = "[x] "
	}
	line := box + m.translator.Get("reverse_label")
	if m.focus == focusReverse {
		return focusedStyle.Render("> " + line)
	}
	return "  " + line
}
