package commands

import (
	"io"
	"os"

	"github.com/smartcontractkit/eth-hextypes/config"
	"github.com/smartcontractkit/eth-hextypes/pkg/logger"
)

// ConfigLoaderFunc loads the CLI configuration from an optional file path.
type ConfigLoaderFunc func(path string) (*config.Config, error)

// LoggerFunc builds the logger once the configuration is known.
type LoggerFunc func(cfg *config.Config) (logger.Logger, error)

// defaultLogger builds a stderr logger at the configured level.
func defaultLogger(cfg *config.Config) (logger.Logger, error) {
	lvl, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}

	return logger.Config{Level: lvl}.New()
}

// Deps holds the injectable dependencies for the commands.
// All fields are optional; nil values use production defaults.
type Deps struct {
	// ConfigLoader loads the configuration.
	// Default: config.Load
	ConfigLoader ConfigLoaderFunc

	// Logger replaces the factory logger once the root command has loaded the configuration.
	// Default: a stderr logger at the configured level
	Logger LoggerFunc

	// Stdin is read when validate receives no values as arguments.
	// Default: os.Stdin
	Stdin io.Reader
}

// applyDefaults fills in nil dependencies with production defaults.
func (d *Deps) applyDefaults() {
	if d.ConfigLoader == nil {
		d.ConfigLoader = config.Load
	}
	if d.Logger == nil {
		d.Logger = defaultLogger
	}
	if d.Stdin == nil {
		d.Stdin = os.Stdin
	}
}
