package engine

import (
	"io"
	"os"

	"inges/config"

	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

type Controller struct {
	Root   *config.RootConfig
	koanf  *koanf.Koanf
	Logger zerolog.Logger

	useFS   bool
	logOut  io.Writer
	logFile *os.File
}

// NewController loads the settings and a console-only logger. Nothing is
// written to the filesystem until OpenLogFile.
func NewController(useFS bool, logOut io.Writer) *Controller {
	cfg, k, err := config.InitKoanf(useFS)
	logger, _, _ := config.InitZerolog(logOut, cfg.ConfigDir, false, cfg.ZeroLog)
	c := &Controller{
		Root:   cfg,
		koanf:  k,
		Logger: logger,

		useFS:  useFS,
		logOut: logOut,
	}
	if err != nil {
		configLogger := c.ModuleLogger("config")
		configLogger.Err(err).Msg("error initializing config")
	}
	return c
}

func (c *Controller) OpenLogFile() {
	if !c.useFS || c.logFile != nil {
		return
	}
	logger, logFile, err := config.InitZerolog(c.logOut, c.Root.ConfigDir, true, c.Root.ZeroLog)
	c.Logger = logger
	c.logFile = logFile
	if err != nil {
		configLogger := c.ModuleLogger("config")
		configLogger.Err(err).Msg("error initializing log file")
	}
}

func (c *Controller) ConfigFromCli(cfgs map[string]interface{}) error {
	if len(cfgs) == 0 {
		return nil
	}
	for k, v := range cfgs {
		c.koanf.Set(k, v)
	}
	err := c.koanf.Unmarshal("", c.Root)
	return err
}

func (c *Controller) Close() {
	if c.logFile != nil {
		c.logFile.Close()
		c.logFile = nil
	}
}

func (c *Controller) CommandLogger(module, command string) zerolog.Logger {
	return c.Logger.With().Str("module", module).Str("command", command).Logger()
}

func (c *Controller) ModuleLogger(module string) zerolog.Logger {
	return c.Logger.With().Str("module", module).Logger()
}
