package hello_world

import (
	"os"

	"github.com/coreos/go-systemd/v22/journal"
	"github.com/sirupsen/logrus"
)

// StartLogging sends the log to the given file, opened for appending, and to the
// systemd journal if it is available. The returned file must be closed by the caller.
func StartLogging(logFilename string, debug bool) (*os.File, error) {
	logfile, err := os.OpenFile(logFilename, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	logrus.SetOutput(logfile)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
	if journal.Enabled() {
		logrus.AddHook(&JournalHook{})
	}
	return logfile, nil
}
