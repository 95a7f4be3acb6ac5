// Package config loads display defaults for the hxlc CLI from an optional
// .hxlc.toml file, the same way internal/tqw loads TOML-described world data
// with github.com/BurntSushi/toml. None of this affects pipeline semantics;
// it only controls how hxlc renders output.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the config file hxlc looks for, first in the current working
// directory and then in the user's home directory.
const FileName = ".hxlc.toml"

// Config holds hxlc's display defaults.
type Config struct {
	// Width is the width hxlc passes to its diagnostic table renderer. Zero
	// means use DefaultWidth.
	Width int `toml:"width"`

	// Color is read from the config file, but no hxlc renderer consults it:
	// the error table is always printed without ANSI highlighting.
	Color bool `toml:"color"`
}

// DefaultWidth is used when a loaded Config leaves Width unset.
const DefaultWidth = 80

// Default returns the built-in configuration used when no .hxlc.toml is
// found.
func Default() Config {
	return Config{Width: DefaultWidth}
}

// Load searches the current working directory and then $HOME for
// .hxlc.toml. A missing file is not an error: Load returns Default(). A
// present but malformed file is a startup error.
func Load() (Config, error) {
	cfg := Default()

	path, ok := findConfigFile()
	if !ok {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	return FromBytes(data)
}

// FromBytes parses raw TOML config data, applying defaults for any field it
// leaves unset.
func FromBytes(data []byte) (Config, error) {
	cfg := Default()

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}

	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}

	return cfg, nil
}

func findConfigFile() (string, bool) {
	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}
