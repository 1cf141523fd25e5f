package hello_world

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/google/renameio/v2"
	"github.com/sirupsen/logrus"
)

type (
	// Task is a unit of work run by the installer at a defined phase. Configuration
	// tasks run at the start of the installation, installation tasks at its end.
	Task interface {
		Name() string
		Run() error
	}
	// ConfigurationTask runs before the installation starts. No actions happen in
	// this addon.
	ConfigurationTask struct{}
	// InstallationTask writes the lines to OutputFilePath below Sysroot, in reverse
	// order if Reverse is set.
	InstallationTask struct {
		Sysroot string
		Reverse bool
		Lines   []string
	}
	// TaskStatus is passed to the progress function while tasks run. It
	// contains the current task and its position, wether the runner as a whole is
	// finished, and the error that stopped it, if any.
	TaskStatus struct {
		Task Task
		Step int
		Done bool
		Err  error
	}
	// TaskRunner runs a list of tasks in order on a separate goroutine. The first
	// failing task stops the run.
	TaskRunner struct {
		tasks            []Task
		done             chan struct{}
		started          atomic.Bool
		err              error
		progressFunction func(TaskStatus)
	}
)

var (
	ErrSysrootNotDir      = errors.New("system root is not a directory")
	ErrSysrootNotWritable = errors.New("system root is not writable")
)

func (ConfigurationTask) Name() string { return "Configure HelloWorld" }

func (ConfigurationTask) Run() error {
	logrus.Info("Running configuration task.")
	return nil
}

// NewInstallationTask returns an installation task working on its own copy of lines.
func NewInstallationTask(sysroot string, reverse bool, lines []string) *InstallationTask {
	return &InstallationTask{Sysroot: sysroot, Reverse: reverse, Lines: copyLines(lines)}
}

func (t *InstallationTask) Name() string { return "Install HelloWorld" }

// Path returns the cleaned path of the file written by the task.
func (t *InstallationTask) Path() string { return filepath.Join(t.Sysroot, OutputFilePath) }

// Run writes the file. The parent directory must already exist. The content is written
// to a temporary file next to the target, which replaces the target only once all
// lines have been written.
func (t *InstallationTask) Run() error {
	logrus.Info("Running installation task.")
	path := t.Path()
	logrus.WithField("path", path).Debug("Writing hello world file")

	lines := EnsureTrailingNewline(t.Lines)
	if t.Reverse {
		lines = reversedLines(lines)
	}

	file, err := renameio.NewPendingFile(
		path,
		renameio.WithTempDir(filepath.Dir(path)),
		renameio.WithPermissions(0644),
	)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	defer file.Cleanup()
	writer := bufio.NewWriter(file)
	for _, line := range lines {
		if _, err := writer.WriteString(line); err != nil {
			return fmt.Errorf("cannot write %s: %w", path, err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	if err := file.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	return nil
}

// EnsureTrailingNewline returns lines with a line ending appended to the last line if
// it is missing one. Lines coming from a GUI text box usually lack it, which would
// merge the last two lines in the reversed output. The input is never modified.
func EnsureTrailingNewline(lines []string) []string {
	fixed := copyLines(lines)
	if len(fixed) > 0 && !strings.HasSuffix(fixed[len(fixed)-1], "\n") {
		fixed[len(fixed)-1] += "\n"
	}
	return fixed
}

func reversedLines(lines []string) []string {
	reversed := make([]string, len(lines))
	for i, line := range lines {
		reversed[len(lines)-1-i] = line
	}
	return reversed
}

// CheckSysroot checks that the given system root is an existing, writable directory.
func CheckSysroot(sysroot string) error {
	info, err := os.Stat(sysroot)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: '%s'", ErrSysrootNotDir, sysroot)
	}
	if !osFileWriteAccess(sysroot) {
		return fmt.Errorf("%w: '%s' -> '%s'", ErrSysrootNotWritable, sysroot, info.Mode().Perm())
	}
	return nil
}

// NewTaskRunner creates a runner for the given tasks. Nothing runs until StartTasks() is
// called:
//
//	runner := NewTaskRunner(service.InstallWithTasks()...)
//	runner.StartTasks()
//	err := runner.WaitForDone()
func NewTaskRunner(tasks ...Task) *TaskRunner {
	return &TaskRunner{
		tasks:            tasks,
		done:             make(chan struct{}),
		progressFunction: func(status TaskStatus) {},
	}
}

// RunTasks runs the tasks in order and returns the first error.
func RunTasks(tasks ...Task) error {
	runner := NewTaskRunner(tasks...)
	runner.StartTasks()
	return runner.WaitForDone()
}

// StartTasks runs the tasks in a separate goroutine and returns immediately. Only the
// first call has an effect.
func (r *TaskRunner) StartTasks() {
	if r.started.CompareAndSwap(false, true) {
		go r.run()
	}
}

func (r *TaskRunner) run() {
	defer close(r.done)
	for step, task := range r.tasks {
		r.progressFunction(TaskStatus{Task: task, Step: step})
		log := logrus.WithField("task", task.Name())
		log.Debug("Starting task")
		if err := task.Run(); err != nil {
			log.WithError(err).Error("Task failed")
			r.err = fmt.Errorf("%s: %w", task.Name(), err)
			r.progressFunction(TaskStatus{Task: task, Step: step, Done: true, Err: r.err})
			return
		}
	}
	r.progressFunction(TaskStatus{Step: len(r.tasks), Done: true})
}

// SetProgressFunction registers a function that is called from the runner goroutine
// before each task and once when the runner is done. It must be set before
// StartTasks().
func (r *TaskRunner) SetProgressFunction(function func(TaskStatus)) {
	r.progressFunction = function
}

// Running reports whether the tasks have been started and are not finished yet.
func (r *TaskRunner) Running() bool {
	if !r.started.Load() {
		return false
	}
	select {
	case <-r.done:
		return false
	default:
		return true
	}
}

// WaitForDone returns only after all tasks finished or one of them failed, and returns
// the error of the failed task. It blocks forever if the tasks were never started.
func (r *TaskRunner) WaitForDone() error {
	<-r.done
	return r.err
}
