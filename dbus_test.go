package hello_world

import (
	"errors"
	"testing"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterfaceMethods(t *testing.T) {
	service := NewService("/mnt/sysroot")
	iface := NewInterface(service)

	assert.Nil(t, iface.SetLines([]string{"a\n"}))
	assert.Nil(t, iface.SetReverse(true))
	assert.Equal(t, []string{"a\n"}, service.Lines())
	assert.True(t, service.Reverse())

	report, dbusErr := iface.ReadKickstart("lang en_US\n%addon org_fedora_hello_world\nlost\n")
	assert.Nil(t, dbusErr)
	require.Len(t, report.ErrorMessages, 1)
	assert.Equal(t, int32(2), report.ErrorMessages[0].LineNumber)
	assert.Equal(t, ErrUnterminatedSection.Error(), report.ErrorMessages[0].Message)
	assert.Empty(t, report.WarningMessages)
	assert.Equal(t, []string{"a\n"}, service.Lines(), "a failed kickstart is not applied")

	report, dbusErr = iface.ReadKickstart("%certificate --filename=ca.pem\n%end\n" +
		"%addon org_fedora_hello_world\nb\n%end\n")
	assert.Nil(t, dbusErr)
	assert.Empty(t, report.ErrorMessages)
	assert.Empty(t, report.WarningMessages, "certificates are a known section")

	report, dbusErr = iface.ReadKickstart("%include /tmp/other.ks\n%addon org_fedora_hello_world\nb\n%end\n")
	assert.Nil(t, dbusErr)
	assert.Empty(t, report.ErrorMessages)
	require.Len(t, report.WarningMessages, 1)
	assert.Equal(t, int32(1), report.WarningMessages[0].LineNumber)

	kickstart, dbusErr := iface.GenerateKickstart()
	assert.Nil(t, dbusErr)
	assert.Equal(t, "\n%addon org_fedora_hello_world\nb\n%end\n", kickstart)

	_, dbusErr = iface.InstallWithTasks()
	assert.NotNil(t, dbusErr, "tasks need a published interface")
}

func TestNonNilLines(t *testing.T) {
	assert.Equal(t, []string{}, nonNilLines(nil))
	assert.Equal(t, []string{"a"}, nonNilLines([]string{"a"}))
}

// connectSessionBus returns a private connection to the session bus, or skips the test
// if there is none.
func connectSessionBus(t *testing.T) *dbus.Conn {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		t.Skipf("no session bus available: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestInterfaceOnBus(t *testing.T) {
	serviceConn := connectSessionBus(t)
	clientConn := connectSessionBus(t)

	sysroot := newSysroot(t)
	service := NewService(sysroot)
	err := NewInterface(service).Publish(serviceConn)
	if errors.Is(err, ErrNameTaken) {
		t.Skip("the addon service is already running on this bus")
	}
	require.NoError(t, err)

	client := NewClient(clientConn)
	lines, err := client.Lines()
	require.NoError(t, err)
	assert.Empty(t, lines)

	changed := make(chan struct{}, 10)
	stop, err := client.Watch(func() { changed <- struct{}{} })
	require.NoError(t, err)
	defer stop()

	require.NoError(t, client.SetLines([]string{"hello\n", "world"}))
	require.NoError(t, client.SetReverse(true))
	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no PropertiesChanged signal received")
	}

	lines, err = client.Lines()
	require.NoError(t, err)
	assert.Equal(t, []string{"hello\n", "world"}, lines)
	reverse, err := client.Reverse()
	require.NoError(t, err)
	assert.True(t, reverse)

	kickstart, err := client.GenerateKickstart()
	require.NoError(t, err)
	assert.Equal(t, "", kickstart, "state set without a kickstart section is not written back")

	report, err := client.ReadKickstart("%addon org_fedora_hello_world --reverse=no\n%end\n")
	require.NoError(t, err)
	require.Len(t, report.ErrorMessages, 1)
	assert.Equal(t, int32(1), report.ErrorMessages[0].LineNumber)
	assert.Empty(t, report.WarningMessages)

	var paths []dbus.ObjectPath
	object := clientConn.Object(ServiceName, ObjectPath)
	require.NoError(t, object.Call(InterfaceName+".InstallWithTasks", 0).Store(&paths))
	require.Len(t, paths, 1)

	task := clientConn.Object(ServiceName, paths[0])
	name, err := task.GetProperty(TaskInterfaceName + ".Name")
	require.NoError(t, err)
	assert.Equal(t, "Install HelloWorld", name.Value())

	require.NoError(t, task.Call(TaskInterfaceName+".Start", 0).Err)
	require.Error(t, task.Call(TaskInterfaceName+".Start", 0).Err, "a task runs only once")
	require.NoError(t, task.Call(TaskInterfaceName+".Finish", 0).Err)
	assert.Equal(t, "world\nhello\n", readOutput(t, sysroot))
}
