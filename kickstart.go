package hello_world

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"mvdan.cc/sh/v3/shell"
)

const (
	addonSection = "%addon"
	sectionEnd   = "%end"
)

// Sections of the installer that are closed by %end. Their content is skipped.
// Sections missing here are skipped as well, with a warning.
var knownSections = map[string]bool{
	"%packages":    true,
	"%pre":         true,
	"%pre-install": true,
	"%post":        true,
	"%onerror":     true,
	"%traceback":   true,
	"%anaconda":    true,
	"%certificate": true,
}

var (
	ErrUnterminatedSection = errors.New("section is missing its %end")
	ErrUnexpectedEnd       = errors.New("%end without a section")
	ErrDuplicateSection    = errors.New("%addon " + AddonID + " specified more than once")
	ErrMissingAddonName    = errors.New("%addon requires an addon name")
	ErrReverseArgument     = errors.New("option --reverse does not take a value")
)

// KickstartError is a kickstart parse failure on a specific line.
type KickstartError struct {
	Line int
	Err  error
}

func (e *KickstartError) Error() string {
	return fmt.Sprintf("kickstart line %d: %s", e.Line, e.Err)
}

func (e *KickstartError) Unwrap() error { return e.Err }

// KickstartData is the content of the %addon org_fedora_hello_world section.
type KickstartData struct {
	Seen    bool
	Reverse bool
	Lines   []string
	// Warnings are the parts of the file that were skipped.
	Warnings []*KickstartError
}

// NewKickstartData returns data for a kickstart without the addon section.
func NewKickstartData() *KickstartData { return &KickstartData{} }

// HandleHeader parses the arguments following the addon id on the %addon line. For the
// line
//
//	%addon org_fedora_hello_world --reverse
//
// args is []string{"--reverse"}. The only option is --reverse, which defaults to false.
func (d *KickstartData) HandleHeader(args []string, lineNumber int) error {
	for _, arg := range args {
		if arg == "--" {
			break
		}
		if strings.HasPrefix(arg, "--reverse=") {
			return &KickstartError{Line: lineNumber, Err: ErrReverseArgument}
		}
	}
	flags := pflag.NewFlagSet(addonSection+" "+AddonID, pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	reverse := flags.Bool("reverse", false, "Reverse the display of the addon text.")
	if err := flags.Parse(args); err != nil {
		return &KickstartError{Line: lineNumber, Err: err}
	}
	if flags.NArg() > 0 {
		return &KickstartError{
			Line: lineNumber,
			Err:  fmt.Errorf("unexpected arguments: %s", strings.Join(flags.Args(), " ")),
		}
	}
	d.Seen = true
	d.Reverse = *reverse
	return nil
}

// HandleLine appends a line from inside the section verbatim, line ending included.
func (d *KickstartData) HandleLine(line string) {
	d.Lines = append(d.Lines, line)
}

// String returns the section as it should appear in a generated kickstart file, or an
// empty string if the section was never seen.
func (d *KickstartData) String() string {
	if !d.Seen {
		return ""
	}
	var section strings.Builder
	section.WriteString("\n" + addonSection + " " + AddonID)
	if d.Reverse {
		section.WriteString(" --reverse")
	}
	section.WriteString("\n")
	for _, line := range d.Lines {
		section.WriteString(line)
	}
	if !strings.HasSuffix(section.String(), "\n") {
		section.WriteString("\n")
	}
	section.WriteString(sectionEnd + "\n")
	return section.String()
}

// ParseKickstart reads a whole kickstart file and collects the content of this addon's
// section. Commands, other addons' sections and script or package sections are
// skipped.
func ParseKickstart(r io.Reader) (*KickstartData, error) {
	data := NewKickstartData()
	reader := bufio.NewReader(r)
	var (
		lineNumber   int
		sectionStart int
		inSection    bool
		ours         bool
	)
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, readErr
		}
		if line != "" {
			lineNumber++
			trimmed := strings.TrimSpace(line)
			switch {
			case inSection && trimmed == sectionEnd:
				inSection = false
			case inSection && ours:
				data.HandleLine(line)
			case inSection:
			case strings.HasPrefix(trimmed, "%"):
				var err error
				ours, err = data.handleSectionStart(trimmed, lineNumber)
				if err != nil {
					return nil, err
				}
				inSection = opensSection(sectionName(trimmed))
				sectionStart = lineNumber
			}
		}
		if readErr == io.EOF {
			break
		}
	}
	if inSection {
		return nil, &KickstartError{Line: sectionStart, Err: ErrUnterminatedSection}
	}
	return data, nil
}

// handleSectionStart looks at a line starting with "%" outside of any section and
// reports whether it opens this addon's section.
func (d *KickstartData) handleSectionStart(line string, lineNumber int) (bool, error) {
	name := sectionName(line)
	switch {
	case name == sectionEnd:
		return false, &KickstartError{Line: lineNumber, Err: ErrUnexpectedEnd}
	case !opensSection(name):
		d.warn(lineNumber, fmt.Errorf("%s is ignored, included files are not read", name))
		return false, nil
	case knownSections[name]:
		return false, nil
	case name != addonSection:
		d.warn(lineNumber, fmt.Errorf("unknown section %s is skipped", name))
		return false, nil
	}
	words, err := shell.Fields(line, func(string) string { return "" })
	if err != nil {
		return false, &KickstartError{Line: lineNumber, Err: err}
	}
	if len(words) < 2 {
		return false, &KickstartError{Line: lineNumber, Err: ErrMissingAddonName}
	}
	if words[1] != AddonID {
		return false, nil
	}
	if d.Seen {
		return false, &KickstartError{Line: lineNumber, Err: ErrDuplicateSection}
	}
	return true, d.HandleHeader(words[2:], lineNumber)
}

func (d *KickstartData) warn(lineNumber int, err error) {
	logrus.WithField("line", lineNumber).Warn(err)
	d.Warnings = append(d.Warnings, &KickstartError{Line: lineNumber, Err: err})
}

// opensSection reports whether a line starting with name is followed by content up to
// an %end line. Only the include directives stand alone.
func opensSection(name string) bool {
	return name != "%include" && name != "%ksappend"
}

func sectionName(line string) string {
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		return line[:i]
	}
	return line
}
