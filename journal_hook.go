package hello_world

import (
	"fmt"
	"strings"

	"github.com/coreos/go-systemd/v22/journal"
	"github.com/sirupsen/logrus"
)

// JournalHook sends log entries to the systemd journal, with the entry fields as
// journal fields.
type JournalHook struct{}

var severityMap = map[logrus.Level]journal.Priority{
	logrus.DebugLevel: journal.PriDebug,
	logrus.InfoLevel:  journal.PriInfo,
	logrus.WarnLevel:  journal.PriWarning,
	logrus.ErrorLevel: journal.PriErr,
	logrus.FatalLevel: journal.PriCrit,
	logrus.PanicLevel: journal.PriEmerg,
}

// Journal field names may only contain uppercase letters, digits and underscores, and
// must not start with an underscore.
func journalFieldName(key string) string {
	key = strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		default:
			return '_'
		}
	}, key)
	return strings.TrimLeft(key, "_")
}

func (hook *JournalHook) Fire(entry *logrus.Entry) error {
	fields := map[string]string{"SYSLOG_IDENTIFIER": AddonID}
	for k, v := range entry.Data {
		fields[journalFieldName(k)] = fmt.Sprint(v)
	}
	return journal.Send(entry.Message, severityMap[entry.Level], fields)
}

func (hook *JournalHook) Levels() []logrus.Level {
	return []logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
		logrus.WarnLevel,
		logrus.InfoLevel,
		logrus.DebugLevel,
	}
}
