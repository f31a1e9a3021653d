package engine

import (
	"errors"
	"fmt"
	"io"
	"os"

	"inges/config"

	"github.com/spf13/cobra"
)

const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

var errMissingCommand = errors.New("a subcommand is required")

// UsageError is returned by Router.Parse when the command line does not
// match the grammar. The usage text has already been written to stderr.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	// UseFS enables the settings file, the .env file and the log file.
	UseFS bool

	Schema    SchemaApplier
	Validator DatabaseValidator
}

func (o *Options) normalize() *Options {
	opts := &Options{}
	if o != nil {
		*opts = *o
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Schema == nil {
		opts.Schema = &EchoDatabase{Out: opts.Stdout}
	}
	if opts.Validator == nil {
		opts.Validator = &EchoDatabase{Out: opts.Stdout}
	}
	return opts
}

func Execute() {
	os.Exit(Run(os.Args[1:], &Options{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		UseFS:  true,
	}))
}

// Run parses args, dispatches the selected command and returns the process
// exit status.
func Run(args []string, opts *Options) int {
	opts = opts.normalize()
	c := NewController(opts.UseFS, opts.Stderr)
	defer c.Close()

	r := NewRouter(c, opts.Stdout, opts.Stderr)
	command, err := r.Parse(args)
	if err != nil {
		return ExitUsage
	}
	if command == nil {
		return ExitOK
	}
	return Dispatch(c, command, opts)
}

func Dispatch(c *Controller, command Command, opts *Options) int {
	c.OpenLogFile()
	logBanner(c, command)
	switch cmd := command.(type) {
	case *RunCommand:
		m := NewRunModule(c, "run", opts.Stdout)
		return m.logError(m.Run(cmd.Config))
	case *InitDbCommand:
		m := NewDatabaseModule(c, "initDb")
		return m.logError(m.InitDb(opts.Schema, cmd.Schema))
	case *ValidateDbCommand:
		m := NewDatabaseModule(c, "validateDb")
		return m.logError(m.ValidateDb(opts.Validator, cmd.Db))
	}
	logger := c.ModuleLogger("engine")
	logger.Error().Msgf("Unknown command %s.", command.Name())
	return ExitFailure
}

type Router struct {
	c        *Controller
	root     *cobra.Command
	selected Command
	stderr   io.Writer
}

func NewRouter(c *Controller, stdout, stderr io.Writer) *Router {
	r := &Router{
		c:      c,
		stderr: stderr,
	}
	rootCmd := &cobra.Command{
		Use:     "inges",
		Short:   "Inges is an indexer for Cosmos based Blockchain",
		Long:    "Inges is an indexer for Cosmos based Blockchain developed by Kubik Labs",
		Version: version(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return errMissingCommand
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("{{.Root.Name}} version {{.Version}}\n")
	rootCmd.PersistentFlags().BoolP("version", "V", false, "Print version information.")
	rootCmd.PersistentFlags().Bool("strict", false, "Exit with non-zero status when the config cannot be loaded.")
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	for _, subCmd := range []*cobra.Command{RunCmd(r), InitDbCmd(r), ValidateDbCmd(r)} {
		subCmd.Version = rootCmd.Version
		rootCmd.AddCommand(subCmd)
	}
	r.root = rootCmd
	return r
}

// Parse returns nil Command and nil error when help or version was printed.
func (r *Router) Parse(args []string) (Command, error) {
	if args == nil {
		args = []string{}
	}
	r.selected = nil
	r.root.SetArgs(args)
	cmd, err := r.root.ExecuteC()
	if err != nil {
		if cmd == nil {
			cmd = r.root
		}
		fmt.Fprintf(r.stderr, "Error: %v\n", err)
		fmt.Fprint(r.stderr, cmd.UsageString())
		return nil, &UsageError{Err: err}
	}
	return r.selected, nil
}

func (r *Router) selectCommand(command Command, configs map[string]interface{}) error {
	err := r.c.ConfigFromCli(configs)
	if err != nil {
		return fmt.Errorf("invalid flags for %s: %w", command.Name(), err)
	}
	r.selected = command
	return nil
}

func optionalPathFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	value, _ := cmd.Flags().GetString(name)
	return &value
}

func parseRootConfigs(cmd *cobra.Command) map[string]interface{} {
	configs := make(map[string]interface{})
	if cmd.Flags().Changed("strict") {
		strict, _ := cmd.Flags().GetBool("strict")
		configs[config.CliStrictKey] = strict
	}
	return configs
}
