package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"runtime"
	"strings"

	"inges/filesystem"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/tforce-io/tf-golib/strfmt"
)

const EnvPrefix = "INGES_"

// BuildConfig layers the struct defaults, the settings file, the .env file
// beside it and finally INGES_* environment variables. A failing .env or
// environment layer is reported but the remaining layers still apply.
func BuildConfig(useFS bool, f string) (*RootConfig, *koanf.Koanf, error) {
	k := defaultConfig()
	if useFS && filesystem.IsFileExist(f) {
		var err error
		k, err = configFromYaml(k, f)
		if err != nil {
			return DefaultRootConfig(), k, err
		}
	}
	var errs []error
	if useFS {
		errs = append(errs, loadDotEnv(path.Join(path.Dir(f), ".env")))
	}
	k, envErr := configFromEnv(k)
	errs = append(errs, envErr)

	config := DefaultRootConfig()
	errs = append(errs, k.Unmarshal("", config))
	return config, k, errors.Join(errs...)
}

func InitKoanf(useFS bool) (*RootConfig, *koanf.Koanf, error) {
	configFile := "inges.yml"
	execPath := ExecPath()
	cfgName := execPath.Name.Name + ".yml"
	if strings.HasPrefix(execPath.Name.Name, "__debug_bin") {
		cfgName = "inges-debug.yml"
	}
	isPortable := IsPortable()
	if isPortable {
		configFile = path.Join(execPath.ParentPath(), cfgName)
	} else if runtime.GOOS == "linux" || runtime.GOOS == "darwin" {
		home := os.Getenv("HOME")
		configFile = path.Join(home, ".config", "inges", cfgName)
	} else if runtime.GOOS == "windows" {
		appData := filesystem.NormalizePath(os.Getenv("APPDATA"))
		configFile = path.Join(appData, "Inges", cfgName)
	}
	cfg, k, err := BuildConfig(useFS, configFile)
	cfg.ConfigDir = path.Dir(configFile)
	cfg.ConfigFile = configFile
	cfg.IsPortable = isPortable
	return cfg, k, err
}

func ExecPath() *strfmt.Path {
	exec, _ := os.Executable()
	return strfmt.NewPathFromStr(filesystem.NormalizePath(exec))
}

func IsPortable() bool {
	configPath := ExecPath()
	configPath.Name.Extension = ".yml"
	return filesystem.IsFileExist(configPath.FullPath())
}

func defaultConfig() *koanf.Koanf {
	var k = koanf.New(".")

	k.Load(structs.Provider(DefaultRootConfig(), "koanf"), nil)

	return k
}

func configFromEnv(k *koanf.Koanf) (*koanf.Koanf, error) {
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(
			strings.ToLower(
				strings.TrimPrefix(s, EnvPrefix)), "_", ".", -1)
	}), nil)
	if err != nil {
		return k, err
	}
	return k, nil
}

func configFromYaml(k *koanf.Koanf, f string) (*koanf.Koanf, error) {
	err := k.Load(file.Provider(f), yaml.Parser())
	if err != nil {
		return k, err
	}
	return k, nil
}

// loadDotEnv never overrides variables already present in the environment.
func loadDotEnv(f string) error {
	if !filesystem.IsFileExist(f) {
		return nil
	}
	err := godotenv.Load(f)
	if err != nil {
		return fmt.Errorf("cannot load %s: %w", f, err)
	}
	return nil
}
