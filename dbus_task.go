package hello_world

import (
	"errors"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
	"github.com/godbus/dbus/v5/prop"
)

const introspectInterface = "org.freedesktop.DBus.Introspectable"

var (
	ErrTaskStarted    = errors.New("task has already been started")
	ErrTaskNotStarted = errors.New("task has not been started")
)

// taskObject is a Task published on D-Bus. Start runs the task in the background,
// Finish waits for it and reports its error.
type taskObject struct {
	task   Task
	props  *prop.Properties
	lock   sync.Mutex
	runner *TaskRunner
}

func publishTask(conn *dbus.Conn, path dbus.ObjectPath, task Task) error {
	o := &taskObject{task: task}
	props, err := prop.Export(conn, path, prop.Map{
		TaskInterfaceName: {
			"Name":      {Value: task.Name(), Writable: false, Emit: prop.EmitConst},
			"IsRunning": {Value: false, Writable: false, Emit: prop.EmitTrue},
		},
	})
	if err != nil {
		return fmt.Errorf("cannot export task properties: %w", err)
	}
	o.props = props
	if err := conn.Export(o, path, TaskInterfaceName); err != nil {
		return fmt.Errorf("cannot export task %s: %w", path, err)
	}
	node := &introspect.Node{
		Name: string(path),
		Interfaces: []introspect.Interface{
			introspect.IntrospectData,
			prop.IntrospectData,
			{
				Name:       TaskInterfaceName,
				Methods:    introspect.Methods(o),
				Properties: props.Introspection(TaskInterfaceName),
			},
		},
	}
	return conn.Export(introspect.NewIntrospectable(node), path, introspectInterface)
}

// Start runs the task in the background.
func (o *taskObject) Start() *dbus.Error {
	o.lock.Lock()
	defer o.lock.Unlock()
	if o.runner != nil {
		return newDBusError(ErrTaskStarted)
	}
	o.runner = NewTaskRunner(o.task)
	o.runner.SetProgressFunction(func(status TaskStatus) {
		o.props.SetMust(TaskInterfaceName, "IsRunning", !status.Done)
	})
	o.runner.StartTasks()
	return nil
}

// Finish waits for the task to end and returns its error, if any.
func (o *taskObject) Finish() *dbus.Error {
	o.lock.Lock()
	runner := o.runner
	o.lock.Unlock()
	if runner == nil {
		return newDBusError(ErrTaskNotStarted)
	}
	if err := runner.WaitForDone(); err != nil {
		return newDBusError(err)
	}
	return nil
}
