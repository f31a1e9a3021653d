package engine

import (
	"errors"
	"fmt"
	"io"

	"inges/config"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/tforce-io/tf-golib/opx"
)

type RunModule struct {
	config *config.RootConfig
	logger zerolog.Logger
	out    io.Writer
}

func NewRunModule(c *Controller, cmdName string, out io.Writer) *RunModule {
	return &RunModule{
		config: c.Root,
		logger: c.CommandLogger("run", cmdName),
		out:    out,
	}
}

// LoadConfig returns the default config when path is nil without touching
// the filesystem.
func (m *RunModule) LoadConfig(path *string) (*config.IndexerConfig, error) {
	if path == nil {
		m.logger.Debug().Msg("No config file given, default config will be used.")
		return config.DefaultIndexerConfig(), nil
	}
	m.logger.Debug().Str("path", *path).Msg("Loading config file.")
	return config.Load(*path)
}

func (m *RunModule) Run(path *string) error {
	cfg, err := m.LoadConfig(path)
	if err != nil {
		return err
	}
	if path == nil {
		fmt.Fprintf(m.out, "'inges run' was used, no config file given, default config: %s\n", cfg)
		return nil
	}
	fmt.Fprintf(m.out, "'inges run' was used, parsed and validated config: %s\n", cfg)
	return nil
}

func (m *RunModule) logError(err error) int {
	if err == nil {
		return ExitOK
	}
	var readErr *config.ReadError
	var parseErr *config.ParseError
	switch {
	case errors.As(err, &readErr):
		m.logger.Err(readErr.Err).Str("path", readErr.Path).Msg("Error reading the config file.")
	case errors.As(err, &parseErr):
		m.logger.Err(parseErr.Err).Msg("Error parsing the config file as TOML.")
	default:
		m.logger.Err(err).Msg("Unexpected error has occurred.")
	}
	return opx.Ternary(m.config.Cli.Strict, ExitFailure, ExitOK)
}

func RunCmd(r *Router) *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Runs the Inges indexer as per the specified config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := ParseRunFlags(cmd)
			return r.selectCommand(&RunCommand{Config: flags.Config}, flags.Configs)
		},
	}
	runCmd.Flags().StringP("config", "c", "", "Path to the indexer config file (TOML).")
	if r.c.Root.Cli.Require {
		runCmd.MarkFlagRequired("config")
	}
	return runCmd
}

type RunFlags struct {
	Config *string

	Configs map[string]interface{}
}

func ParseRunFlags(cmd *cobra.Command) *RunFlags {
	return &RunFlags{
		Config:  optionalPathFlag(cmd, "config"),
		Configs: parseRootConfigs(cmd),
	}
}
