package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "CSE Learning Path Dashboard", cfg.UI.Title)
	assert.Equal(t, []string{"menu", "more_courses", "all_courses"}, cfg.UI.Flags)
	assert.True(t, cfg.Watch.Enabled)
	assert.Equal(t, 200*time.Millisecond, cfg.Watch.Debounce)
}

func TestLoadFrom_NonExistent(t *testing.T) {
	t.Setenv("PATHDASH_DATA", "")
	cfg, err := LoadFrom("/nonexistent/path/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, "", cfg.DataFile)
	assert.Len(t, cfg.UI.Flags, 3)
}

func TestLoadFrom_ValidConfig(t *testing.T) {
	t.Setenv("PATHDASH_DATA", "")
	t.Setenv("PATHDASH_CHAPTERS", "")
	t.Setenv("PATHDASH_DB", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
data_file: /srv/courses.yaml
chapters_dir: /srv/chapters
ui:
  title: My Path
  flags: [menu, more_courses]
watch:
  enabled: false
  debounce: 1s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/courses.yaml", cfg.DataFile)
	assert.Equal(t, "/srv/chapters", cfg.ChaptersDir)
	assert.Equal(t, "My Path", cfg.UI.Title)
	assert.Equal(t, []string{"menu", "more_courses"}, cfg.UI.Flags)
	assert.False(t, cfg.Watch.Enabled)
	assert.Equal(t, time.Second, cfg.Watch.Debounce)
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	t.Setenv("PATHDASH_DATA", "/env/data.json")
	t.Setenv("PATHDASH_DB", "/env/db.sqlite")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/env/data.json", cfg.DataFile)
	assert.Equal(t, "/env/db.sqlite", cfg.DBPath)
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui: [unclosed"), 0o644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestSaveToRoundTrip(t *testing.T) {
	t.Setenv("PATHDASH_DATA", "")
	t.Setenv("PATHDASH_CHAPTERS", "")
	t.Setenv("PATHDASH_DB", "")

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.DataFile = "/tmp/data.yaml"
	require.NoError(t, SaveTo(cfg, path))

	got, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/data.yaml", got.DataFile)
}

func TestResolveDBPath(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{DBPath: filepath.Join(dir, "sub", "x.db")}
	p, err := cfg.ResolveDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sub", "x.db"), p)
	_, err = os.Stat(filepath.Join(dir, "sub"))
	assert.NoError(t, err)

	t.Setenv("XDG_DATA_HOME", dir)
	p, err = Config{}.ResolveDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "pathdash", "pathdash.db"), p)
}
