package hello_world

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Service parses and stores the data of the addon, and hands out the tasks that act on
// it. It is the implementation behind the D-Bus Interface, and can also be used
// in-process.
type Service struct {
	state   *AddonState
	sysroot string
}

// NewService returns a service with empty state that installs into sysroot.
func NewService(sysroot string) *Service {
	return &Service{state: NewAddonState(), sysroot: sysroot}
}

func (s *Service) Sysroot() string { return s.sysroot }

// Reverse reports whether to reverse the order of lines in the hello world file.
func (s *Service) Reverse() bool { return s.state.Reverse() }

func (s *Service) SetReverse(reverse bool) {
	s.state.SetReverse(reverse)
	logrus.Debugf("Reverse is set to %t.", reverse)
}

// Lines returns the lines of the hello world file.
func (s *Service) Lines() []string { return s.state.Lines() }

func (s *Service) SetLines(lines []string) {
	s.state.SetLines(lines)
	logrus.WithField("lines", len(lines)).Debugf("Lines is set to %q.", lines)
}

// OnLinesChanged registers a callback for every change of the lines.
func (s *Service) OnLinesChanged(callback func()) { s.state.LinesChanged.Connect(callback) }

// OnReverseChanged registers a callback for every change of the reverse flag.
func (s *Service) OnReverseChanged(callback func()) { s.state.ReverseChanged.Connect(callback) }

// ProcessKickstart takes over the parsed kickstart data.
func (s *Service) ProcessKickstart(data *KickstartData) {
	logrus.Debug("Processing kickstart data...")
	s.state.SetSeen(data.Seen)
	s.SetReverse(data.Reverse)
	s.SetLines(data.Lines)
}

// SetupKickstart stores the current state in data.
func (s *Service) SetupKickstart(data *KickstartData) {
	logrus.Debug("Generating kickstart data...")
	data.Seen = s.state.Seen()
	data.Reverse = s.state.Reverse()
	data.Lines = s.state.Lines()
}

// ReadKickstart parses a kickstart file and processes the addon section in it. The
// state is left untouched if parsing fails.
func (s *Service) ReadKickstart(r io.Reader) error {
	data, err := ParseKickstart(r)
	if err != nil {
		return err
	}
	s.ProcessKickstart(data)
	return nil
}

// ReadKickstartString is ReadKickstart for kickstart content in a string.
func (s *Service) ReadKickstartString(kickstart string) error {
	return s.ReadKickstart(strings.NewReader(kickstart))
}

// GenerateKickstart returns the addon section for the current state.
func (s *Service) GenerateKickstart() string {
	data := NewKickstartData()
	s.SetupKickstart(data)
	return data.String()
}

// ConfigureWithTasks returns the tasks to run at the beginning of the installation.
func (s *Service) ConfigureWithTasks() []Task {
	return []Task{ConfigurationTask{}}
}

// InstallWithTasks returns the tasks to run at the end of the installation. The tasks
// work on a snapshot of the state at the time of the call.
func (s *Service) InstallWithTasks() []Task {
	return []Task{NewInstallationTask(s.sysroot, s.state.Reverse(), s.state.Lines())}
}
