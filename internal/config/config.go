// Package config holds the settings shared by the command line tools, read
// from an optional YAML file.
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Reconstruction methods.
const (
	MethodGauss    = "gauss"
	MethodLagrange = "lagrange"
)

// ErrInvalidConfig is matched by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the resolved configuration of a command.
type Config struct {
	Format string    `yaml:"format"`
	Method string    `yaml:"method"`
	Field  bool      `yaml:"field"`
	Export string    `yaml:"export"`
	Log    LogConfig `yaml:"log"`
}

// LogConfig selects the logger level and whether development output is used.
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Format: FormatText,
		Method: MethodGauss,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads and validates the file at path. Settings the file leaves out
// keep their default values.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "opening config")
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return Config{}, errors.Wrapf(err, "loading %v", path)
	}
	return cfg, nil
}

// Parse decodes and validates a YAML document. Unknown fields are rejected
// and an empty document yields the defaults.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "decoding config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every enumerated setting.
func (cfg Config) Validate() error {
	switch cfg.Format {
	case FormatText, FormatJSON:
	default:
		return errors.Wrapf(ErrInvalidConfig, "format %q, expected %v or %v", cfg.Format, FormatText, FormatJSON)
	}
	switch cfg.Method {
	case MethodGauss, MethodLagrange:
	default:
		return errors.Wrapf(ErrInvalidConfig, "method %q, expected %v or %v", cfg.Method, MethodGauss, MethodLagrange)
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.Wrapf(ErrInvalidConfig, "log level %q", cfg.Log.Level)
	}
	return nil
}
