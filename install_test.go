package hello_world

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSysroot returns a system root with the directory of the output file in it.
func newSysroot(t *testing.T) string {
	sysroot := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(sysroot, filepath.Dir(OutputFilePath)), 0755))
	return sysroot
}

func readOutput(t *testing.T, sysroot string) string {
	content, err := os.ReadFile(filepath.Join(sysroot, OutputFilePath))
	require.NoError(t, err)
	return string(content)
}

func TestInstallationTask(t *testing.T) {
	tests := []struct {
		name     string
		reverse  bool
		lines    []string
		expected string
	}{
		{"plain", false, []string{"a\n", "b\n", "c\n"}, "a\nb\nc\n"},
		{"missing newline", false, []string{"a\n", "b"}, "a\nb\n"},
		{"reversed", true, []string{"a\n", "b\n", "c"}, "c\nb\na\n"},
		{"empty", false, nil, ""},
		{"empty reversed", true, []string{}, ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			sysroot := newSysroot(t)
			task := NewInstallationTask(sysroot, test.reverse, test.lines)
			require.NoError(t, task.Run())
			assert.Equal(t, test.expected, readOutput(t, sysroot))

			info, err := os.Stat(task.Path())
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
		})
	}
}

func TestInstallationTaskReplacesFile(t *testing.T) {
	sysroot := newSysroot(t)
	require.NoError(t, NewInstallationTask(sysroot, false, []string{"old\n", "content\n"}).Run())
	require.NoError(t, NewInstallationTask(sysroot, false, []string{"new\n"}).Run())
	assert.Equal(t, "new\n", readOutput(t, sysroot))

	entries, err := os.ReadDir(filepath.Join(sysroot, filepath.Dir(OutputFilePath)))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files must be left behind")
}

func TestInstallationTaskMissingDirectory(t *testing.T) {
	task := NewInstallationTask(t.TempDir(), false, []string{"a\n"})
	err := task.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), task.Path())
}

func TestInstallationTaskReadOnlyDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can write to read-only directories")
	}
	sysroot := newSysroot(t)
	dir := filepath.Join(sysroot, filepath.Dir(OutputFilePath))
	require.NoError(t, os.Chmod(dir, 0555))
	t.Cleanup(func() { os.Chmod(dir, 0755) })

	task := NewInstallationTask(sysroot, true, []string{"a\n", "b"})
	err := task.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), task.Path())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestInstallationTaskCopiesLines(t *testing.T) {
	lines := []string{"a\n", "b"}
	task := NewInstallationTask(newSysroot(t), true, lines)
	lines[0] = "changed\n"
	require.NoError(t, task.Run())
	assert.Equal(t, []string{"changed\n", "b"}, lines)
	assert.Equal(t, []string{"a\n", "b"}, task.Lines)
}

func TestEnsureTrailingNewline(t *testing.T) {
	lines := []string{"a\n", "b"}
	fixed := EnsureTrailingNewline(lines)
	assert.Equal(t, []string{"a\n", "b\n"}, fixed)
	assert.Equal(t, []string{"a\n", "b"}, lines)
	assert.Equal(t, fixed, EnsureTrailingNewline(fixed))
	assert.Nil(t, EnsureTrailingNewline(nil))
}

func TestConfigurationTask(t *testing.T) {
	task := ConfigurationTask{}
	assert.Equal(t, "Configure HelloWorld", task.Name())
	assert.NoError(t, task.Run())
}

func TestCheckSysroot(t *testing.T) {
	sysroot := t.TempDir()
	assert.NoError(t, CheckSysroot(sysroot))
	assert.ErrorIs(t, CheckSysroot(filepath.Join(sysroot, "missing")), ErrSysrootNotDir)

	file := filepath.Join(sysroot, "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	assert.ErrorIs(t, CheckSysroot(file), ErrSysrootNotDir)

	if os.Geteuid() == 0 {
		t.Skip("root can write to read-only directories")
	}
	readOnly := filepath.Join(sysroot, "ro")
	require.NoError(t, os.Mkdir(readOnly, 0555))
	assert.ErrorIs(t, CheckSysroot(readOnly), ErrSysrootNotWritable)
}

type recordingTask struct {
	name string
	err  error
	log  *[]string
}

func (t recordingTask) Name() string { return t.name }

func (t recordingTask) Run() error {
	*t.log = append(*t.log, t.name)
	return t.err
}

func TestTaskRunner(t *testing.T) {
	var log []string
	var statuses []TaskStatus
	runner := NewTaskRunner(
		recordingTask{name: "first", log: &log},
		recordingTask{name: "second", log: &log},
	)
	runner.SetProgressFunction(func(status TaskStatus) { statuses = append(statuses, status) })
	runner.StartTasks()
	runner.StartTasks()
	require.NoError(t, runner.WaitForDone())
	assert.False(t, runner.Running())
	assert.Equal(t, []string{"first", "second"}, log)

	require.Len(t, statuses, 3)
	assert.Equal(t, "first", statuses[0].Task.Name())
	assert.Equal(t, 1, statuses[1].Step)
	assert.True(t, statuses[2].Done)
	assert.NoError(t, statuses[2].Err)
}

func TestTaskRunnerStopsOnError(t *testing.T) {
	var log []string
	failure := errors.New("disk full")
	err := RunTasks(
		recordingTask{name: "first", err: failure, log: &log},
		recordingTask{name: "second", log: &log},
	)
	require.ErrorIs(t, err, failure)
	assert.Contains(t, err.Error(), "first")
	assert.Equal(t, []string{"first"}, log)
}
