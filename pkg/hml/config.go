package hml

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/vito/hml/pkg/eval"
	"github.com/vito/hml/pkg/hm"
)

// ConfigFile is the name of the project configuration file.
const ConfigFile = "hml.toml"

// Config holds session settings, read from hml.toml and the environment.
type Config struct {
	// Strategy is one of "value", "name" or "need".
	Strategy string `toml:"strategy"`

	// Printer is "canonical" or "legacy".
	Printer string `toml:"printer"`

	// Prelude installs the builtins and the fst/snd pair selectors.
	Prelude bool `toml:"prelude"`

	// MaxDepth bounds evaluation nesting. Zero disables the limit.
	MaxDepth int `toml:"max_depth"`

	Prompt string `toml:"prompt"`
}

func DefaultConfig() Config {
	return Config{
		Strategy: eval.CallByValue.String(),
		Printer:  hm.Canonical.String(),
		Prelude:  true,
		MaxDepth: eval.DefaultMaxDepth,
		Prompt:   "hml> ",
	}
}

// Validate checks the strategy and printer names.
func (c Config) Validate() error {
	if _, err := eval.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	if _, err := hm.ParsePrintStyle(c.Printer); err != nil {
		return err
	}
	if c.MaxDepth < 0 {
		return errors.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	return nil
}

// LoadConfig reads path over the defaults. Keys that do not correspond to a
// setting are logged and ignored.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	meta, err := toml.DecodeFile(path, &config)
	if err != nil {
		return config, errors.Wrapf(err, "parsing %s", path)
	}
	for _, key := range meta.Undecoded() {
		slog.Warn("unknown config key", "path", path, "key", key.String())
	}
	return config, nil
}

// FindConfig searches for hml.toml starting from dir and walking up to
// parent directories, stopping at a .git boundary. If none is found it
// returns "" and the defaults.
func FindConfig(dir string) (string, Config, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", DefaultConfig(), errors.WithStack(err)
	}
	for {
		path := filepath.Join(dir, ConfigFile)
		if _, err := os.Stat(path); err == nil {
			config, err := LoadConfig(path)
			if err != nil {
				return "", config, err
			}
			slog.Debug("found config", "path", path)
			return path, config, nil
		}

		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return "", DefaultConfig(), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", DefaultConfig(), nil
		}
		dir = parent
	}
}

// ApplyEnv overrides settings from HML_STRATEGY and HML_PRINTER.
func (c *Config) ApplyEnv() {
	if strategy := os.Getenv("HML_STRATEGY"); strategy != "" {
		c.Strategy = strategy
	}
	if printer := os.Getenv("HML_PRINTER"); printer != "" {
		c.Printer = printer
	}
}
