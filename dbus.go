package hello_world

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
	"github.com/godbus/dbus/v5/prop"
	"github.com/sirupsen/logrus"
)

var ErrNameTaken = errors.New("D-Bus name is already taken")

type (
	// Interface exposes a Service on D-Bus. The Lines and Reverse properties can be
	// read via org.freedesktop.DBus.Properties and are changed with the SetLines and
	// SetReverse methods. Every change is announced with PropertiesChanged, no matter
	// if it came through D-Bus or from inside the process.
	//
	// Exported methods returning *dbus.Error are the methods of the D-Bus interface.
	Interface struct {
		service   *Service
		conn      *dbus.Conn
		props     *prop.Properties
		taskLock  sync.Mutex
		taskCount int
	}
	// KickstartMessage points at a line of a kickstart file.
	KickstartMessage struct {
		Message    string
		LineNumber int32
	}
	// KickstartReport is returned by ReadKickstart. The kickstart was applied unless
	// there are error messages.
	KickstartReport struct {
		ErrorMessages   []KickstartMessage
		WarningMessages []KickstartMessage
	}
	// property describes one property of the D-Bus interface.
	property struct {
		name    string
		get     func(*Service) interface{}
		connect func(*Service, func())
	}
)

// properties is the schema of the addon's D-Bus properties.
var properties = []property{
	{
		name:    "Lines",
		get:     func(s *Service) interface{} { return nonNilLines(s.Lines()) },
		connect: (*Service).OnLinesChanged,
	},
	{
		name:    "Reverse",
		get:     func(s *Service) interface{} { return s.Reverse() },
		connect: (*Service).OnReverseChanged,
	},
}

// NewInterface returns an unpublished interface for service.
func NewInterface(service *Service) *Interface {
	return &Interface{service: service}
}

// Publish exports the interface, its properties and its introspection data at
// ObjectPath and requests ServiceName on conn.
func (i *Interface) Publish(conn *dbus.Conn) error {
	i.conn = conn
	propMap := prop.Map{InterfaceName: {}}
	for _, p := range properties {
		propMap[InterfaceName][p.name] = &prop.Prop{
			Value:    p.get(i.service),
			Writable: false,
			Emit:     prop.EmitTrue,
		}
	}
	props, err := prop.Export(conn, ObjectPath, propMap)
	if err != nil {
		return fmt.Errorf("cannot export properties: %w", err)
	}
	i.props = props
	for _, p := range properties {
		p := p
		p.connect(i.service, func() { i.props.SetMust(InterfaceName, p.name, p.get(i.service)) })
	}

	if err := conn.Export(i, ObjectPath, InterfaceName); err != nil {
		return fmt.Errorf("cannot export %s: %w", InterfaceName, err)
	}
	node := &introspect.Node{
		Name: ObjectPath,
		Interfaces: []introspect.Interface{
			introspect.IntrospectData,
			prop.IntrospectData,
			{
				Name:       InterfaceName,
				Methods:    introspect.Methods(i),
				Properties: props.Introspection(InterfaceName),
			},
		},
	}
	err = conn.Export(introspect.NewIntrospectable(node), ObjectPath, introspectInterface)
	if err != nil {
		return fmt.Errorf("cannot export introspection data: %w", err)
	}

	reply, err := conn.RequestName(ServiceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		return fmt.Errorf("cannot request %s: %w", ServiceName, err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		return fmt.Errorf("%w: %s", ErrNameTaken, ServiceName)
	}
	logrus.WithField("name", ServiceName).Info("Published D-Bus service")
	return nil
}

// SetLines replaces the lines of the hello world file.
func (i *Interface) SetLines(lines []string) *dbus.Error {
	i.service.SetLines(lines)
	return nil
}

// SetReverse sets whether to reverse the order of lines in the hello world file.
func (i *Interface) SetReverse(reverse bool) *dbus.Error {
	i.service.SetReverse(reverse)
	return nil
}

// ReadKickstart processes the addon section of the given kickstart content. Parse
// failures are part of the report, the state is only changed if there are none.
func (i *Interface) ReadKickstart(kickstart string) (KickstartReport, *dbus.Error) {
	report := KickstartReport{
		ErrorMessages:   []KickstartMessage{},
		WarningMessages: []KickstartMessage{},
	}
	data, err := ParseKickstart(strings.NewReader(kickstart))
	if err != nil {
		logrus.WithError(err).Warn("Kickstart is not applied")
		report.ErrorMessages = append(report.ErrorMessages, newKickstartMessage(err))
		return report, nil
	}
	for _, warning := range data.Warnings {
		report.WarningMessages = append(report.WarningMessages, newKickstartMessage(warning))
	}
	i.service.ProcessKickstart(data)
	return report, nil
}

// GenerateKickstart returns the addon section for the current state.
func (i *Interface) GenerateKickstart() (string, *dbus.Error) {
	return i.service.GenerateKickstart(), nil
}

// ConfigureWithTasks publishes the configuration tasks and returns their object paths.
func (i *Interface) ConfigureWithTasks() ([]dbus.ObjectPath, *dbus.Error) {
	return i.publishTasks(i.service.ConfigureWithTasks())
}

// InstallWithTasks publishes the installation tasks and returns their object paths.
func (i *Interface) InstallWithTasks() ([]dbus.ObjectPath, *dbus.Error) {
	return i.publishTasks(i.service.InstallWithTasks())
}

func (i *Interface) publishTasks(tasks []Task) ([]dbus.ObjectPath, *dbus.Error) {
	if i.conn == nil {
		return nil, newDBusError(errors.New("interface is not published"))
	}
	paths := make([]dbus.ObjectPath, 0, len(tasks))
	for _, task := range tasks {
		i.taskLock.Lock()
		i.taskCount++
		path := dbus.ObjectPath(TaskPathPrefix + "/" + strconv.Itoa(i.taskCount))
		i.taskLock.Unlock()
		if err := publishTask(i.conn, path, task); err != nil {
			return nil, newDBusError(err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func newKickstartMessage(err error) KickstartMessage {
	var ksErr *KickstartError
	if errors.As(err, &ksErr) {
		return KickstartMessage{Message: ksErr.Err.Error(), LineNumber: int32(ksErr.Line)}
	}
	return KickstartMessage{Message: err.Error()}
}

func newDBusError(err error) *dbus.Error {
	return dbus.NewError(ErrorName, []interface{}{err.Error()})
}

// D-Bus encodes a nil slice fine, but clients comparing values are happier with an
// empty list.
func nonNilLines(lines []string) []string {
	if lines == nil {
		return []string{}
	}
	return lines
}
