package hello_world

import (
	"strconv"
	"strings"
)

type (
	// Backend is where a spoke loads its values from and stores them to. Both the
	// D-Bus Client and LocalBackend implement it.
	Backend interface {
		Lines() ([]string, error)
		SetLines(lines []string) error
		Reverse() (bool, error)
		SetReverse(reverse bool) error
	}
	// HubSpoke is a spoke that can be shown on a hub, in the box of its category.
	HubSpoke interface {
		Title() string
		Category() Category
		Status() string
		Ready() bool
		Completed() bool
		Mandatory() bool
	}
	// FirstbootSpoke is a spoke that can also appear in Initial Setup, after the
	// first boot of the installed system.
	FirstbootSpoke interface {
		ShouldRun(environment string) bool
	}
	// LocalBackend is a Backend for a Service running in the same process.
	LocalBackend struct {
		Service *Service
	}
	// Spoke is the presentation model shared by the GUI and the TUI. It keeps a
	// working copy of the values while the user edits them; Refresh loads them from
	// the backend and Apply stores them back.
	Spoke struct {
		backend    Backend
		translator *Translator
		lines      []string
		reverse    bool
	}
)

var (
	_ Backend        = LocalBackend{}
	_ Backend        = (*Client)(nil)
	_ HubSpoke       = (*Spoke)(nil)
	_ FirstbootSpoke = (*Spoke)(nil)
)

func (b LocalBackend) Lines() ([]string, error)      { return b.Service.Lines(), nil }
func (b LocalBackend) Reverse() (bool, error)        { return b.Service.Reverse(), nil }
func (b LocalBackend) SetLines(lines []string) error { b.Service.SetLines(lines); return nil }
func (b LocalBackend) SetReverse(reverse bool) error { b.Service.SetReverse(reverse); return nil }

// NewSpoke returns a spoke working on backend. Call Refresh() before showing it.
func NewSpoke(backend Backend, translator *Translator) *Spoke {
	return &Spoke{backend: backend, translator: translator}
}

// Refresh loads the current values from the backend. It is called every time the
// spoke is displayed.
func (s *Spoke) Refresh() error {
	lines, err := s.backend.Lines()
	if err != nil {
		return err
	}
	reverse, err := s.backend.Reverse()
	if err != nil {
		return err
	}
	s.lines, s.reverse = lines, reverse
	return nil
}

// Apply stores the edited values in the backend. It is called when the spoke is left.
func (s *Spoke) Apply() error {
	if err := s.backend.SetLines(s.lines); err != nil {
		return err
	}
	return s.backend.SetReverse(s.reverse)
}

// Text returns the lines as one block of text, as shown in a text box.
func (s *Spoke) Text() string { return strings.Join(s.lines, "") }

// SetText replaces the lines with the lines of a block of text.
func (s *Spoke) SetText(text string) { s.lines = SplitLines(text) }

func (s *Spoke) Lines() []string         { return copyLines(s.lines) }
func (s *Spoke) Reverse() bool           { return s.reverse }
func (s *Spoke) SetReverse(reverse bool) { s.reverse = reverse }
func (s *Spoke) Translator() *Translator { return s.translator }
func (s *Spoke) Title() string           { return s.translator.Get("spoke_title") }
func (s *Spoke) Category() Category      { return HelloWorldCategory }
func (s *Spoke) Ready() bool             { return true }
func (s *Spoke) Mandatory() bool         { return false }
func (s *Spoke) Completed() bool         { return len(s.lines) > 0 }

// ShouldRun reports whether the spoke is shown in the given environment. It is shown
// both in the installer and in Initial Setup.
func (s *Spoke) ShouldRun(environment string) bool {
	return environment == AnacondaEnvironment || environment == InitialSetupEnvironment
}

// Status is a brief description of the spoke state shown on the hub below the title:
// whether text is set, how many lines it has and whether they will be reversed.
func (s *Spoke) Status() string {
	if len(s.lines) == 0 {
		return s.translator.Get("status_not_set")
	}
	count := StringMap{"count": strconv.Itoa(len(s.lines))}
	if s.reverse {
		return s.translator.GetWith("status_set_reversed", count)
	}
	return s.translator.GetWith("status_set", count)
}

// SplitLines splits text into lines that keep their line endings. The last line may
// lack one. An empty text has no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
