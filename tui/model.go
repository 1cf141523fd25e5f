// Package tui is the text spoke of the hello world addon: a multi-line text area for
// the lines and a check box for the reverse flag.
package tui

import (
	"github.com/grandchild/hello_world"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

type focusField int

const (
	focusText focusField = iota
	focusReverse
)

// Model holds the TUI state.
type Model struct {
	spoke      *hello_world.Spoke
	translator *hello_world.Translator

	text    textarea.Model
	focus   focusField
	applied bool
	err     error
}

// New returns the model for a spoke that has already been refreshed.
func New(spoke *hello_world.Spoke) Model {
	translator := spoke.Translator()
	ta := textarea.New()
	ta.Placeholder = translator.Get("text_placeholder")
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = false
	ta.SetWidth(72)
	ta.SetHeight(10)
	ta.SetValue(spoke.Text())
	ta.Focus()
	return Model{
		spoke:      spoke,
		translator: translator,
		text:       ta,
		focus:      focusText,
	}
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd { return textarea.Blink }

// Applied reports whether the user confirmed the values and they were stored.
func (m Model) Applied() bool { return m.applied }

// Run shows the spoke until the user applies or cancels it. Changes announced by
// watch while the spoke is shown reload the values.
func Run(spoke *hello_world.Spoke, watch func(func()) (func(), error)) (applied bool, err error) {
	program := tea.NewProgram(New(spoke))
	if watch != nil {
		stop, err := watch(func() { program.Send(MsgRefresh{}) })
		if err != nil {
			return false, err
		}
		defer stop()
	}
	final, err := program.Run()
	if err != nil {
		return false, err
	}
	return final.(Model).Applied(), nil
}
