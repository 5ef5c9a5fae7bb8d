// Package config loads the hextypes CLI configuration from a file and HEXTYPES_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/smartcontractkit/eth-hextypes/hexval"
)

// Output formats understood by the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Formats lists every supported output format.
var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatTOML}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"` // One of text, json, yaml or toml
}

// ValidateConfig holds defaults for ad hoc families built from flags.
type ValidateConfig struct {
	Pad    string `mapstructure:"pad" yaml:"pad"`       // left or right
	Signed bool   `mapstructure:"signed" yaml:"signed"` // Integer families accept negative values
}

// LogConfig is the logger configuration.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"` // zap level name, e.g. debug or info
}

// Config wraps the entire CLI configuration.
type Config struct {
	Output   OutputConfig   `mapstructure:"output" yaml:"output"`
	Validate ValidateConfig `mapstructure:"validate" yaml:"validate"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Output:   OutputConfig{Format: FormatText},
		Validate: ValidateConfig{Pad: hexval.PadLeft.String()},
		Log:      LogConfig{Level: zapcore.WarnLevel.String()},
	}
}

// Load loads the config from the file path, falling back to env vars if the path is empty or the
// file does not exist. Env vars that are set override the values loaded from the file.
func Load(filePath string) (*Config, error) {
	v := newViper()
	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	if filePath != "" {
		v.SetConfigFile(filePath)
		if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		}
	}

	return unmarshal(v)
}

// LoadEnv loads the config from the environment variables only.
func LoadEnv() (*Config, error) {
	v := newViper()
	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	return unmarshal(v)
}

// LoadFile loads the config from a file, ignoring the environment.
func LoadFile(filePath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(filePath)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	return unmarshal(v)
}

// Check reports the first invalid setting.
func (c *Config) Check() error {
	if !slices.Contains(Formats, c.Output.Format) {
		return fmt.Errorf("invalid output format %q: must be one of %s", c.Output.Format,
			strings.Join(Formats, ", "))
	}
	if _, err := c.PadDirection(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}

	return nil
}

// PadDirection returns the parsed default pad direction.
func (c *Config) PadDirection() (hexval.PadDirection, error) {
	return hexval.ParsePadDirection(c.Validate.Pad)
}

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return lvl, fmt.Errorf("invalid log level: %w", err)
	}

	return lvl, nil
}

func newViper() *viper.Viper {
	v := viper.New()

	d := Default()
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("validate.pad", d.Validate.Pad)
	v.SetDefault("validate.signed", d.Validate.Signed)
	v.SetDefault("log.level", d.Log.Level)

	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	cfg.Output.Format = strings.ToLower(cfg.Output.Format)
	if err := cfg.Check(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// envBindings maps config keys to the env vars that can set them, in order of preference.
var envBindings = map[string][]string{
	"output.format":   {"HEXTYPES_OUTPUT_FORMAT", "HEXTYPES_OUTPUT"},
	"validate.pad":    {"HEXTYPES_VALIDATE_PAD", "HEXTYPES_PAD"},
	"validate.signed": {"HEXTYPES_VALIDATE_SIGNED"},
	"log.level":       {"HEXTYPES_LOG_LEVEL"},
}

func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		inputs := slices.Insert(slices.Clone(envs), 0, key)

		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}

	return nil
}
