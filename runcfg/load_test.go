package runcfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
configurable:
  user_id: u-123
  org: acme
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	v, ok := cfg.Value("user_id")
	require.True(t, ok)
	assert.Equal(t, "u-123", v)

	v, ok = cfg.Value("org")
	require.True(t, ok)
	assert.Equal(t, "acme", v)

	assert.Equal(t, "debug", cfg.Extra["log_level"])
}

func TestLoad_YML_Extension(t *testing.T) {
	path := writeFile(t, "config.yml", "configurable:\n  k: v\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	v, ok := cfg.Value("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
log_level = "info"

[configurable]
user_id = "u-456"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	v, ok := cfg.Value("user_id")
	require.True(t, ok)
	assert.Equal(t, "u-456", v)
	assert.Equal(t, "info", cfg.Extra["log_level"])
}

func TestLoad_MissingConfigurableSection(t *testing.T) {
	path := writeFile(t, "config.yaml", "other: value\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Empty(t, cfg.Configurable)
	assert.Equal(t, "value", cfg.Extra["other"])
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "config.ini", "k=v\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeFile(t, "bad.yaml", "configurable: [unclosed\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestNewWatcher_InitialLoad(t *testing.T) {
	path := writeFile(t, "config.yaml", "configurable:\n  k: v\n")

	w, cfg, err := NewWatcher(path)
	require.NoError(t, err)
	require.NotNil(t, w)

	v, ok := cfg.Value("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestNewWatcher_BadPath(t *testing.T) {
	_, _, err := NewWatcher(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
