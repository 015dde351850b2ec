// Package config loads the settings file of the avrconf command.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/JonMackey/HexLoaderUtility/format"

	"github.com/BurntSushi/toml"
)

// EnvVar names the environment variable overriding the settings path.
const EnvVar = "AVRCONF_CONFIG"

// Config holds the settings.  Zero fields take the defaults.
type Config struct {
	Conf     string        `toml:"conf"`
	Format   format.Format `toml:"format"`
	Color    *bool         `toml:"color"`
	LogLevel string        `toml:"log_level"`
}

func Default() *Config {
	return &Config{
		Conf:     "avrdude.conf",
		Format:   format.FlatFormat,
		LogLevel: "warn",
	}
}

// Path returns the settings path: $AVRCONF_CONFIG if set, otherwise
// avrconf/config.toml under the user configuration directory.
func Path() (string, error) {
	if p := os.Getenv(EnvVar); p != "" {
		return os.ExpandEnv(p), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "avrconf", "config.toml"), nil
}

// Load reads the settings at path.  A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("unknown keys in config %s: %v", path, undec)
	}
	if _, err := cfg.Level(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Discover loads the settings from Path.
func Discover() (*Config, error) {
	p, err := Path()
	if err != nil {
		return Default(), nil
	}
	return Load(p)
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, err
	}
	return l, nil
}
