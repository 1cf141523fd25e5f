package hello_world

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	config, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "/mnt/sysroot", config.Sysroot)
	assert.Equal(t, SessionBus, config.Bus)
	assert.False(t, config.Debug)
	assert.Equal(t, "Hello World", config.Variables["product"])
	assert.NoError(t, config.Validate())
}

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig(writeConfig(t, "sysroot: /tmp/root\nbus: system\nvariables:\n  extra: value\n"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/root", config.Sysroot)
	assert.Equal(t, SystemBus, config.Bus)
	assert.Equal(t, "Hello World", config.Variables["product"], "defaults are kept")
	assert.Equal(t, "value", config.Variables["extra"])
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadConfig(writeConfig(t, "no_such_setting: 1\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "bus: tcp\n"))
	assert.ErrorIs(t, err, ErrInvalidBus)

	config, err := LoadConfig(writeConfig(t, "bus: tcp\nbus_address: unix:path=/run/anaconda/bus\n"))
	require.NoError(t, err)
	assert.Equal(t, "unix:path=/run/anaconda/bus", config.BusAddress)
}
