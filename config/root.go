package config

import "github.com/rs/zerolog"

const (
	CliRequireKey = "cli.require"
	CliStrictKey  = "cli.strict"
)

type RootConfig struct {
	ConfigDir  string         `koanf:"-"`
	ConfigFile string         `koanf:"-"`
	IsPortable bool           `koanf:"-"`
	Cli        *CliConfig     `koanf:"cli"`
	ZeroLog    *ZeroLogConfig `koanf:"zerolog"`
}

type CliConfig struct {
	// Strict makes a failed config load in `run` visible in the exit status.
	Strict bool `koanf:"strict"`
	// Require makes --config mandatory for `run`.
	Require bool `koanf:"require"`
}

type ZeroLogConfig struct {
	Level        int8 `koanf:"level"`
	ConsoleLevel int8 `koanf:"console"`
}

func DefaultRootConfig() *RootConfig {
	return &RootConfig{
		Cli: &CliConfig{},
		ZeroLog: &ZeroLogConfig{
			Level:        int8(zerolog.DebugLevel),
			ConsoleLevel: int8(zerolog.InfoLevel),
		},
	}
}
