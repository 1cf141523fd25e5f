package hello_world

import (
	"github.com/godbus/dbus/v5"
)

const propertiesChangedSignal = "org.freedesktop.DBus.Properties.PropertiesChanged"

// Client talks to the addon service over D-Bus. It is what the spokes use when they
// run in a different process than the service.
type Client struct {
	conn   *dbus.Conn
	object dbus.BusObject
}

// NewClient returns a client for the service published on conn's bus.
func NewClient(conn *dbus.Conn) *Client {
	return &Client{conn: conn, object: conn.Object(ServiceName, ObjectPath)}
}

func (c *Client) Lines() ([]string, error) {
	variant, err := c.object.GetProperty(InterfaceName + ".Lines")
	if err != nil {
		return nil, err
	}
	var lines []string
	if err := variant.Store(&lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (c *Client) SetLines(lines []string) error {
	return c.object.Call(InterfaceName+".SetLines", 0, nonNilLines(lines)).Err
}

func (c *Client) Reverse() (bool, error) {
	variant, err := c.object.GetProperty(InterfaceName + ".Reverse")
	if err != nil {
		return false, err
	}
	var reverse bool
	if err := variant.Store(&reverse); err != nil {
		return false, err
	}
	return reverse, nil
}

func (c *Client) SetReverse(reverse bool) error {
	return c.object.Call(InterfaceName+".SetReverse", 0, reverse).Err
}

// ReadKickstart hands kickstart content to the service and returns its report.
func (c *Client) ReadKickstart(kickstart string) (KickstartReport, error) {
	var report KickstartReport
	err := c.object.Call(InterfaceName+".ReadKickstart", 0, kickstart).Store(&report)
	return report, err
}

// GenerateKickstart asks the service for its kickstart section.
func (c *Client) GenerateKickstart() (string, error) {
	var kickstart string
	err := c.object.Call(InterfaceName+".GenerateKickstart", 0).Store(&kickstart)
	return kickstart, err
}

// Watch calls callback every time the service announces a property change, until the
// returned stop function is called.
func (c *Client) Watch(callback func()) (stop func(), err error) {
	options := []dbus.MatchOption{
		dbus.WithMatchObjectPath(ObjectPath),
		dbus.WithMatchInterface("org.freedesktop.DBus.Properties"),
		dbus.WithMatchMember("PropertiesChanged"),
	}
	if err := c.conn.AddMatchSignal(options...); err != nil {
		return nil, err
	}
	signals := make(chan *dbus.Signal, 10)
	done := make(chan struct{})
	c.conn.Signal(signals)
	go func() {
		for {
			select {
			case signal := <-signals:
				if signal.Path == ObjectPath && signal.Name == propertiesChangedSignal {
					callback()
				}
			case <-done:
				return
			}
		}
	}()
	return func() {
		c.conn.RemoveSignal(signals)
		c.conn.RemoveMatchSignal(options...)
		close(done)
	}, nil
}
