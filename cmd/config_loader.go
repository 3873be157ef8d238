package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/oakwood-commons/colx/internal/config"
	"github.com/oakwood-commons/colx/pkg/settings"
)

const (
	envWidth   = "COLX_WIDTH"
	envPadding = "COLX_PADDING"
)

// configLoader centralizes config loading so callers avoid duplicating merge logic.
type configLoader struct {
	defaultConfig func() (config.Config, error)
	readFile      func(string) ([]byte, error)
	lookupEnv     func(string) (string, bool)
}

var cfgLoader = configLoader{
	defaultConfig: config.Default,
	readFile:      os.ReadFile,
	lookupEnv:     os.LookupEnv,
}

func loadMergedConfig(cfgPath string) (config.Config, error) {
	return cfgLoader.loadMergedConfig(cfgPath)
}

// loadMergedConfig layers, lowest first: embedded defaults, the config file at
// cfgPath (if any), then COLX_* environment variables.
func (l configLoader) loadMergedConfig(cfgPath string) (config.Config, error) {
	cfg, err := l.defaultConfig()
	if err != nil {
		return cfg, fmt.Errorf("load default config: %w", err)
	}

	if cfgPath != "" {
		data, err := l.readFile(cfgPath)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		fileCfg, err := config.Parse(data)
		if err != nil {
			return cfg, fmt.Errorf("decode config file %s: %w", cfgPath, err)
		}
		cfg = config.Merge(cfg, fileCfg)
	}

	envCfg, err := l.envConfig()
	if err != nil {
		return cfg, err
	}
	return config.Merge(cfg, envCfg), nil
}

func (l configLoader) envConfig() (config.Config, error) {
	var cfg config.Config
	if v, ok := l.lookupEnv(envWidth); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", envWidth, v, err)
		}
		cfg.Layout.Width = &n
	}
	if v, ok := l.lookupEnv(envPadding); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", envPadding, v, err)
		}
		cfg.Layout.Padding = &n
	}
	return cfg, nil
}

// resolveConfigPath returns the explicit configFile if set, otherwise the XDG path
// ($XDG_CONFIG_HOME/colx/config.yaml) or ~/.config/colx/config.yaml if present.
func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	xdg := os.Getenv("XDG_CONFIG_HOME")
	candidate := ""
	if xdg != "" {
		candidate = filepath.Join(xdg, settings.CliBinaryName, "config.yaml")
	} else if home, err := os.UserHomeDir(); err == nil {
		candidate = filepath.Join(home, ".config", settings.CliBinaryName, "config.yaml")
	}
	if candidate != "" {
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate
		}
	}
	return ""
}
