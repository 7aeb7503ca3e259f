package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// configEnv names the environment variable consulted when --config is empty.
const configEnv = "WTCSVCTL_CONFIG"

// defaultConfigName is looked up in the working directory as a last resort.
const defaultConfigName = "wtcsvctl.toml"

// Config is the optional TOML configuration file.
//
//	encoding = "auto"
//	strict = false
//	placeholder = "TBD"
//
//	[diff]
//	all_columns = true
//
//	[compare]
//	workers = 8
type Config struct {
	Encoding    string `toml:"encoding"`
	Strict      bool   `toml:"strict"`
	Placeholder string `toml:"placeholder"`

	Diff struct {
		AllColumns bool `toml:"all_columns"`
	} `toml:"diff"`

	Compare struct {
		Workers int `toml:"workers"`
	} `toml:"compare"`
}

func defaultConfig() Config {
	return Config{Encoding: "auto"}
}

// configSource resolves which file to read: the explicit path, then the
// environment, then wtcsvctl.toml in the working directory if present.
func configSource(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(configEnv); env != "" {
		return env
	}
	if _, err := os.Stat(defaultConfigName); err == nil {
		return defaultConfigName
	}
	return ""
}

// loadConfig reads the config file. A missing implicit file yields the
// defaults; a missing explicit file is an error.
func loadConfig(explicit string) (Config, error) {
	conf := defaultConfig()
	path := configSource(explicit)
	if path == "" {
		return conf, nil
	}

	md, err := toml.DecodeFile(path, &conf)
	if err != nil {
		if explicit == "" && errors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil
		}
		return Config{}, fmt.Errorf("config %s: %w", filepath.Base(path), err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown key %q", filepath.Base(path), undecoded[0].String())
	}
	if conf.Compare.Workers < 0 {
		return Config{}, fmt.Errorf("config %s: workers must not be negative", filepath.Base(path))
	}
	return conf, nil
}
