package engine

// Command is the subcommand selected for this invocation. The set of variants
// is closed: RunCommand, InitDbCommand and ValidateDbCommand.
type Command interface {
	Name() string
	command()
}

type RunCommand struct {
	// Config is nil when --config was not given.
	Config *string
}

type InitDbCommand struct {
	Schema *string
}

type ValidateDbCommand struct {
	Db *string
}

func (*RunCommand) Name() string        { return "run" }
func (*InitDbCommand) Name() string     { return "init-db" }
func (*ValidateDbCommand) Name() string { return "validate-db" }

func (*RunCommand) command()        {}
func (*InitDbCommand) command()     {}
func (*ValidateDbCommand) command() {}

func displayPath(p *string) string {
	if p == nil {
		return "<none>"
	}
	return *p
}
