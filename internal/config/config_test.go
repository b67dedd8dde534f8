package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schedlab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, DefaultDir, cfg.Dir)
	assert.Equal(t, DefaultChartsDir, cfg.Charts.Dir)
	assert.Equal(t, "svg", cfg.Charts.Format)
	assert.Equal(t, "default", cfg.Output.Theme)
	assert.Equal(t, "auto", cfg.Output.Mode)
	assert.Equal(t, "auto", cfg.Report.Style)
	assert.Equal(t, 100, cfg.Report.Width)

	w, h := cfg.Charts.Size()
	assert.Equal(t, 16*vg.Inch, w)
	assert.Equal(t, 8*vg.Inch, h)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := writeConfig(t, `
dir: /data/exp1
charts:
  format: PDF
  width: 10
output:
  theme: dark
report:
  width: 80
`)
	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "/data/exp1", cfg.Dir)
	assert.Equal(t, "pdf", cfg.Charts.Format)
	assert.Equal(t, 10.0, cfg.Charts.Width)
	assert.Equal(t, DefaultChartsHeight, cfg.Charts.Height)
	assert.Equal(t, "dark", cfg.Output.Theme)
	assert.Equal(t, 80, cfg.Report.Width)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "charts:\n  format: pdf\n")
	t.Setenv("SCHEDLAB_CHARTS_FORMAT", "png")
	t.Setenv("SCHEDLAB_DIR", "/env/dir")
	t.Setenv("SCHEDLAB_LOG_LEVEL", "debug")

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, "png", cfg.Charts.Format)
	assert.Equal(t, "/env/dir", cfg.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")

	_, err = Load(New(), writeConfig(t, "charts:\n  format: bmp\n"))
	assert.ErrorContains(t, err, "unsupported chart format")

	_, err = Load(New(), writeConfig(t, "output:\n  mode: fancy\n"))
	assert.ErrorContains(t, err, "unknown output mode")

	_, err = Load(New(), writeConfig(t, "charts:\n  width: -1\n"))
	assert.ErrorContains(t, err, "chart size must be positive")
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("SCHEDLAB_TEST_NEW=from-file\nSCHEDLAB_TEST_KEEP=from-file\n"), 0o644))

	// Register cleanup for both keys, then clear the one the file should set.
	t.Setenv("SCHEDLAB_TEST_NEW", "")
	require.NoError(t, os.Unsetenv("SCHEDLAB_TEST_NEW"))
	t.Setenv("SCHEDLAB_TEST_KEEP", "from-env")

	loaded, err := LoadDotEnv(t.TempDir(), dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, ".env")}, loaded)
	assert.Equal(t, "from-file", os.Getenv("SCHEDLAB_TEST_NEW"))
	assert.Equal(t, "from-env", os.Getenv("SCHEDLAB_TEST_KEEP"))
}
