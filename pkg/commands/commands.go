// Package commands provides the cobra command tree of the hextypes CLI.
//
// There are two ways to use commands from this package:
//
// 1. Via Root, which wires configuration loading and every subcommand:
//
//	cmds := commands.New(lggr)
//	if err := cmds.Root(version).Execute(); err != nil {
//	    ...
//	}
//
// 2. Via the individual factories, for embedding in another CLI:
//
//	app.AddCommand(cmds.Validate(), cmds.Schema())
//
// Embedded commands use config.Default until a root command loads a configuration.
package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/eth-hextypes/config"
	"github.com/smartcontractkit/eth-hextypes/pkg/logger"
)

// Commands provides a factory for creating CLI commands with shared configuration.
type Commands struct {
	lggr logger.Logger
	deps Deps
	cfg  *config.Config
}

// Option configures a Commands factory.
type Option func(*Commands)

// WithDeps overrides the production dependencies, mainly for tests.
func WithDeps(deps Deps) Option {
	return func(c *Commands) { c.deps = deps }
}

// New creates a new Commands factory with the given logger.
func New(lggr logger.Logger, opts ...Option) *Commands {
	c := &Commands{lggr: lggr, cfg: config.Default()}
	for _, opt := range opts {
		opt(c)
	}
	c.deps.applyDefaults()

	return c
}

// Root returns the hextypes root command with all subcommands attached.
func (c *Commands) Root(version string) *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:           "hextypes",
		Short:         "Validate and canonicalize EVM hex values",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.configure(cmd, cfgPath)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfgPath, "config", "", "Path to a YAML or TOML config file")
	flags.StringP("output", "o", "", "Output format: text, json, yaml or toml")
	flags.String("log-level", "", "Log level: debug, info, warn or error")

	cmd.AddCommand(
		c.Types(),
		c.Validate(),
		c.Serialize(),
		c.Schema(),
		c.URI(),
	)

	return cmd
}

// configure loads the configuration, applies flag overrides and replaces the logger.
func (c *Commands) configure(cmd *cobra.Command, path string) error {
	cfg, err := c.deps.ConfigLoader(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if f := flags.Lookup("output"); f != nil && f.Changed {
		cfg.Output.Format = strings.ToLower(f.Value.String())
	}
	if f := flags.Lookup("log-level"); f != nil && f.Changed {
		cfg.Log.Level = f.Value.String()
	}
	if err = cfg.Check(); err != nil {
		return err
	}

	lggr, err := c.deps.Logger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	c.cfg = cfg
	c.lggr = lggr.Named("hextypes")
	c.lggr.Debugw("Configuration loaded",
		"path", path,
		"output", cfg.Output.Format,
		"pad", cfg.Validate.Pad,
	)

	return nil
}
