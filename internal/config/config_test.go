package config

import (
	"os"
	"path/filepath"
	"testing"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", DefaultConfigFileName)

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk Config
	require.NoError(t, toml.Unmarshal(data, &onDisk))
	assert.Equal(t, Default(), onDisk)
}

func TestLoadOrCreateMergesPartialKeymap(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	body := `
[keys]
quit = ["x"]
toggle = ["t"]

[log]
path = "/tmp/taskdeck.log"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, cfg.Keys.Quit)
	assert.Equal(t, []string{"t"}, cfg.Keys.Toggle)
	assert.Equal(t, Default().Keys.New, cfg.Keys.New)
	assert.Equal(t, Default().Keys.Cancel, cfg.Keys.Cancel)
	assert.Equal(t, "/tmp/taskdeck.log", cfg.Log.Path)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadOrCreateRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("[keys\nquit = "), 0o644))

	_, err := LoadOrCreate(path)
	require.Error(t, err)
}

func TestResolveConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")
	path := ResolveConfigPath()
	assert.Equal(t, DefaultConfigFileName, filepath.Base(path))
	assert.Equal(t, AppName, filepath.Base(filepath.Dir(path)))
}
