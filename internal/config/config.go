// Package config loads the console configuration from a TOML file.
//
// Precedence, lowest first: built-in defaults, the config file, environment
// variables. Command-line flags are applied by the caller on top.
package config

import (
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/footprint-tools/cobalt/internal/domain"
	"github.com/footprint-tools/cobalt/internal/paths"
)

// Environment variables consulted by ApplyEnvOverrides.
const (
	EnvNoColor       = "NO_COLOR"
	EnvCobaltNoColor = "COBALT_NO_COLOR"
	EnvLogLevel      = "COBALT_LOG_LEVEL"
)

// Config is the decoded config.toml.
type Config struct {
	Prompt      string `toml:"prompt"`
	HistorySize int    `toml:"history_size"`
	Color       bool   `toml:"color"`
	Theme       string `toml:"theme"`
	EnableLog   bool   `toml:"enable_log"`
	LogLevel    string `toml:"log_level"`
	LogPath     string `toml:"log_path"`

	// Unknown lists keys found in the file that Config does not define.
	// The caller reports them once its logger is up.
	Unknown []string `toml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Prompt:      "cobalt> ",
		HistorySize: 500,
		Color:       true,
		Theme:       "default",
		EnableLog:   false,
		LogLevel:    "warn",
		LogPath:     paths.LogFilePath(),
	}
}

// Load reads path on top of the defaults and applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile decodes path over the defaults without consulting the environment.
func loadFile(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "decode config %s", path)
		}
		for _, key := range md.Undecoded() {
			cfg.Unknown = append(cfg.Unknown, key.String())
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "stat config %s", path)
	}

	if cfg.LogPath == "" {
		cfg.LogPath = paths.LogFilePath()
	}
	return cfg, nil
}

// ApplyEnvOverrides applies NO_COLOR, COBALT_NO_COLOR and COBALT_LOG_LEVEL.
func (c *Config) ApplyEnvOverrides() {
	if os.Getenv(EnvNoColor) != "" || os.Getenv(EnvCobaltNoColor) != "" {
		c.Color = false
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}

// Validate rejects values the console cannot use.
func (c *Config) Validate() error {
	if c.HistorySize < 0 {
		return errors.Errorf("config: history_size must be >= 0, got %d", c.HistorySize)
	}
	if !validLevels[strings.ToLower(c.LogLevel)] {
		return errors.Errorf("config: unknown log_level %q", c.LogLevel)
	}
	return nil
}

// Get returns the value of key formatted as a string.
func (c *Config) Get(key string) (string, bool) {
	switch key {
	case "prompt":
		return c.Prompt, true
	case "history_size":
		return strconv.Itoa(c.HistorySize), true
	case "color":
		return strconv.FormatBool(c.Color), true
	case "theme":
		return c.Theme, true
	case "enable_log":
		return strconv.FormatBool(c.EnableLog), true
	case "log_level":
		return c.LogLevel, true
	case "log_path":
		return c.LogPath, true
	}
	return "", false
}

// Set parses value into key and validates the result. c is left unchanged
// on error.
func (c *Config) Set(key, value string) error {
	if !domain.IsValidConfigKey(key) {
		return errors.Errorf("config: unknown key %q", key)
	}

	next := *c
	switch key {
	case "prompt":
		next.Prompt = value
	case "history_size":
		n, err := strconv.Atoi(value)
		if err != nil {
			return errors.Wrapf(err, "config: history_size")
		}
		next.HistorySize = n
	case "color", "enable_log":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(err, "config: %s", key)
		}
		if key == "color" {
			next.Color = b
		} else {
			next.EnableLog = b
		}
	case "theme":
		next.Theme = value
	case "log_level":
		next.LogLevel = value
	case "log_path":
		next.LogPath = value
	}

	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

// Values returns every known key in display order.
func (c *Config) Values() []KeyValue {
	out := make([]KeyValue, 0, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		v, _ := c.Get(key.Name)
		if v == "" && key.HideIfEmpty {
			continue
		}
		out = append(out, KeyValue{Key: key, Value: v})
	}
	return out
}

// KeyValue pairs a config key with its current value.
type KeyValue struct {
	Key   domain.ConfigKey
	Value string
}

// Keys returns the known key names sorted alphabetically.
func Keys() []string {
	names := make([]string, 0, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		names = append(names, key.Name)
	}
	sort.Strings(names)
	return names
}
