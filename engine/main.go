package engine

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"inges/filesystem"

	"github.com/tforce-io/tf-golib/opx"
)

var majorVersion = 1
var minorVersion = 0
var patchVersion = 0
var gitCommit, gitDate, gitBranch string

func version() string {
	originDate := time.Date(2023, time.October, 2, 0, 0, 0, 0, time.UTC)
	gitDate2, _ := time.Parse("20060102", gitDate)
	buildDate := opx.Ternary(gitDate == "", time.Now().UTC(), gitDate2)
	duration := buildDate.Sub(originDate)
	minor := minorVersion
	patch := strconv.Itoa(patchVersion)
	if gitBranch == "master" || gitBranch == "main" {
		// do nothing
	} else if gitBranch == "release" {
		minor += 1
		patch = patch + "-rc"
	} else if strings.Contains(gitBranch, "feat/") {
		minor += 1
		patch = patch + "-dev"
	} else {
		patch = strconv.Itoa(patchVersion+1) + "-dev"
	}
	if gitCommit != "" {
		return fmt.Sprintf("%d.%d.%s.%d-%s", majorVersion, minor, patch, duration.Milliseconds()/int64(86400000), gitCommit)
	}
	return fmt.Sprintf("%d.%d.%s.%d", majorVersion, minor, patch, duration.Milliseconds()/int64(86400000))
}

func logBanner(c *Controller, command Command) {
	pwd, _ := os.Getwd()
	pwd, _ = filesystem.GetAbsPath(pwd)
	exec, _ := os.Executable()
	exec, _ = filesystem.GetAbsPath(exec)

	c.Logger.Debug().Msgf("INGES v%s", version())
	c.Logger.Debug().Msgf("Command: %s", command.Name())
	c.Logger.Debug().Msgf("Working directory: %s", pwd)
	c.Logger.Debug().Msgf("Config directory: %s", c.Root.ConfigDir)
	c.Logger.Debug().Msgf("Config file: %s", c.Root.ConfigFile)
	c.Logger.Debug().Msgf("Executable file: %s", exec)
	c.Logger.Debug().Msgf("Portable mode: %t", c.Root.IsPortable)
	c.Logger.Debug().Msgf("Strict mode: %t", c.Root.Cli.Strict)
	c.Logger.Debug().Msg("-----------------")
}
