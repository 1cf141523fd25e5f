package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grandchild/hello_world"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with the given arguments and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	config, err := hello_world.NewConfig()
	require.NoError(t, err)
	root := newRootCommand(newApp(config))
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{
		"--log-file", filepath.Join(t.TempDir(), "addon.log"), "--lang", "en",
	}, args...))
	err = root.Execute()
	return out.String(), err
}

func TestKickstartCommand(t *testing.T) {
	out, err := execute(t, "kickstart", filepath.Join("testdata", "reverse.ks"))
	require.NoError(t, err)
	expected := "\n%addon org_fedora_hello_world --reverse\nHello\nWorld\n%end\n"
	if diff := cmp.Diff(expected, out); diff != "" {
		t.Errorf("unexpected kickstart (-want +got):\n%s", diff)
	}
}

func TestKickstartCommandErrors(t *testing.T) {
	_, err := execute(t, "kickstart")
	assert.Error(t, err)

	_, err = execute(t, "kickstart", filepath.Join(t.TempDir(), "missing.ks"))
	assert.Error(t, err)

	broken := filepath.Join(t.TempDir(), "broken.ks")
	require.NoError(t, os.WriteFile(broken, []byte("%addon org_fedora_hello_world\n"), 0644))
	_, err = execute(t, "kickstart", broken)
	var ksErr *hello_world.KickstartError
	require.ErrorAs(t, err, &ksErr)
	assert.Equal(t, 1, ksErr.Line)
}

func TestInstallCommand(t *testing.T) {
	sysroot := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(sysroot, "root"), 0755))

	out, err := execute(t, "install",
		"--sysroot", sysroot, "--kickstart", filepath.Join("testdata", "reverse.ks"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "Done.\n"), out)

	content, err := os.ReadFile(filepath.Join(sysroot, hello_world.OutputFilePath))
	require.NoError(t, err)
	assert.Equal(t, "World\nHello\n", string(content))
}

func TestInstallCommandFailures(t *testing.T) {
	_, err := execute(t, "install", "--sysroot", filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, hello_world.ErrSysrootNotDir)

	out, err := execute(t, "install", "--sysroot", t.TempDir())
	assert.Error(t, err, "the root directory of the system root is missing")
	assert.Contains(t, out, "Installation failed.")
}

func TestConfigFlag(t *testing.T) {
	sysroot := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(sysroot, "root"), 0755))
	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("sysroot: "+sysroot+"\n"), 0644))

	_, err := execute(t, "--config", configPath, "install")
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(sysroot, hello_world.OutputFilePath))
	assert.NoError(t, err)
}

func TestKickstartNeedsLocal(t *testing.T) {
	_, err := execute(t, "tui", "--kickstart", filepath.Join("testdata", "reverse.ks"))
	assert.Error(t, err)
}
