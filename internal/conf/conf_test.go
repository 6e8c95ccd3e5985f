package conf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConf(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cursock.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	c := Default()
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, 100, c.Log.MaxSizeMB)
	assert.Equal(t, 3, c.Log.MaxBackups)
	assert.Equal(t, 65535, c.Capture.Snaplen)
	assert.Equal(t, time.Duration(0), c.Capture.Timeout)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConf(t, `
log:
  level: debug
capture:
  interface: eth0
  snaplen: 4096
  timeout: 2s
  debug: true
`)
	c, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "eth0", c.Capture.Interface)
	assert.Equal(t, 4096, c.Capture.Snaplen)
	assert.Equal(t, 2*time.Second, c.Capture.Timeout)
	assert.True(t, c.Capture.Debug)
}

func TestLoadValidation(t *testing.T) {
	path := writeConf(t, `
log:
  level: loud
capture:
  snaplen: 10
`)
	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log level")
	assert.Contains(t, err.Error(), "snaplen")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
