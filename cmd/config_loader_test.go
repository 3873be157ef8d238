package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/colx/internal/config"
)

func testLoader(env map[string]string) configLoader {
	return configLoader{
		defaultConfig: config.Default,
		readFile:      os.ReadFile,
		lookupEnv: func(k string) (string, bool) {
			v, ok := env[k]
			return v, ok
		},
	}
}

func TestConfigLoaderDefaults(t *testing.T) {
	cfg, err := testLoader(nil).loadMergedConfig("")
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Width())
	assert.Equal(t, 2, cfg.Padding())
	assert.False(t, cfg.AutoWidth())
	assert.Equal(t, "runes", cfg.MeasureMode())
}

func TestConfigLoaderFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layout:\n  width: 80\n  auto_width: true\n"), 0o600))

	cfg, err := testLoader(nil).loadMergedConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 80, cfg.Width())
	assert.Equal(t, 2, cfg.Padding())
	assert.True(t, cfg.AutoWidth())
}

func TestConfigLoaderEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layout:\n  width: 80\n  padding: 3\n"), 0o600))

	cfg, err := testLoader(map[string]string{envWidth: "60", envPadding: ""}).loadMergedConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Width())
	assert.Equal(t, 3, cfg.Padding())
}

func TestConfigLoaderErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := testLoader(nil).loadMergedConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("bad yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("layout: [\n"), 0o600))
		_, err := testLoader(nil).loadMergedConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode config file")
	})

	t.Run("bad env", func(t *testing.T) {
		_, err := testLoader(map[string]string{envWidth: "wide"}).loadMergedConfig("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), envWidth)
	})

	t.Run("broken defaults", func(t *testing.T) {
		l := testLoader(nil)
		l.defaultConfig = func() (config.Config, error) { return config.Config{}, errors.New("empty") }
		_, err := l.loadMergedConfig("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "load default config")
	})
}

func TestResolveConfigPath(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	assert.Equal(t, "explicit.yaml", resolveConfigPath("explicit.yaml"))
	assert.Empty(t, resolveConfigPath(""))

	dir := filepath.Join(xdg, "colx")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layout: {}\n"), 0o600))
	assert.Equal(t, path, resolveConfigPath(""))
}
