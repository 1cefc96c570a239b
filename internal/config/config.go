// Package config holds the settings of the neo command line tool.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable consulted when no config path is given.
const EnvPath = "NEO_CONFIG"

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
)

type Config struct {
	Log     LogConfig     `toml:"log" yaml:"log"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
	Compile CompileConfig `toml:"compile" yaml:"compile"`
}

type LogConfig struct {
	Level       string `toml:"level" yaml:"level"`
	Development bool   `toml:"development" yaml:"development"`
}

type OutputConfig struct {
	// Format is one of json, yaml or text.
	Format string `toml:"format" yaml:"format"`
	// File receives command output. Empty means stdout.
	File string `toml:"file" yaml:"file"`
}

type CompileConfig struct {
	OmitSource bool `toml:"omit_source" yaml:"omit_source"`
	Module     bool `toml:"module" yaml:"module"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "warn"},
		Output: OutputConfig{Format: FormatJSON},
	}
}

// Load reads the file at path, choosing the decoder by extension. An empty
// path yields Default. Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	path = os.ExpandEnv(path)

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(b)).Decode(cfg); err != nil {
			return nil, errors.Wrapf(err, "parse %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, errors.Wrapf(err, "parse %s", path)
		}
	default:
		return nil, errors.Errorf("unsupported config format %q", ext)
	}

	cfg.Output.File = os.ExpandEnv(cfg.Output.File)
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Validate reports the first setting outside its allowed values.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatJSON, FormatYAML, FormatText:
	default:
		return errors.Errorf("unknown output format %q", c.Output.Format)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}
