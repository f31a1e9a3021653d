package engine

import (
	"fmt"
	"io"

	"inges/config"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// SchemaApplier initializes a database from a schema file.
type SchemaApplier interface {
	ApplySchema(schema *string) error
}

// DatabaseValidator runs consistency checks against an existing database.
type DatabaseValidator interface {
	ValidateDatabase(db *string) (*ValidationReport, error)
}

type ValidationReport struct {
	Db     string
	Passed int
	Failed []string
}

// EchoDatabase only reports the path it received.
type EchoDatabase struct {
	Out io.Writer
}

func (d *EchoDatabase) ApplySchema(schema *string) error {
	_, err := fmt.Fprintf(d.Out, "'inges init-db' was used, schema is: %s\n", displayPath(schema))
	return err
}

func (d *EchoDatabase) ValidateDatabase(db *string) (*ValidationReport, error) {
	_, err := fmt.Fprintf(d.Out, "'inges validate-db' was used, db is: %s\n", displayPath(db))
	if err != nil {
		return nil, err
	}
	return &ValidationReport{Db: displayPath(db)}, nil
}

type DatabaseModule struct {
	config *config.RootConfig
	logger zerolog.Logger
}

func NewDatabaseModule(c *Controller, cmdName string) *DatabaseModule {
	return &DatabaseModule{
		config: c.Root,
		logger: c.CommandLogger("database", cmdName),
	}
}

func (m *DatabaseModule) InitDb(applier SchemaApplier, schema *string) error {
	m.logger.Debug().Str("schema", displayPath(schema)).Msg("Applying database schema.")
	return applier.ApplySchema(schema)
}

func (m *DatabaseModule) ValidateDb(validator DatabaseValidator, db *string) error {
	m.logger.Debug().Str("db", displayPath(db)).Msg("Validating database.")
	report, err := validator.ValidateDatabase(db)
	if err != nil {
		return err
	}
	if report == nil {
		report = &ValidationReport{Db: displayPath(db)}
	}
	if len(report.Failed) > 0 {
		m.logger.Warn().Strs("failed", report.Failed).Int("passed", report.Passed).Msg("Database validation found problems.")
		return fmt.Errorf("%d database checks failed", len(report.Failed))
	}
	m.logger.Debug().Int("passed", report.Passed).Msg("Database validation finished.")
	return nil
}

func (m *DatabaseModule) logError(err error) int {
	if err != nil {
		m.logger.Err(err).Msg("Unexpected error has occurred. Program will exit.")
		return ExitFailure
	}
	return ExitOK
}

func InitDbCmd(r *Router) *cobra.Command {
	initDbCmd := &cobra.Command{
		Use:   "init-db",
		Short: "Initializes the Inges indexer's database as per the specified schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := ParseDatabaseFlags(cmd, "schema")
			return r.selectCommand(&InitDbCommand{Schema: flags.Path}, flags.Configs)
		},
	}
	initDbCmd.Flags().StringP("schema", "s", "", "Path to the database schema file.")
	return initDbCmd
}

func ValidateDbCmd(r *Router) *cobra.Command {
	validateDbCmd := &cobra.Command{
		Use:   "validate-db",
		Short: "Validates the Inges indexer's database by running some tests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := ParseDatabaseFlags(cmd, "db")
			return r.selectCommand(&ValidateDbCommand{Db: flags.Path}, flags.Configs)
		},
	}
	validateDbCmd.Flags().StringP("db", "d", "", "Path to the database to validate.")
	return validateDbCmd
}

type DatabaseFlags struct {
	Path *string

	Configs map[string]interface{}
}

func ParseDatabaseFlags(cmd *cobra.Command, pathFlag string) *DatabaseFlags {
	return &DatabaseFlags{
		Path:    optionalPathFlag(cmd, pathFlag),
		Configs: parseRootConfigs(cmd),
	}
}
