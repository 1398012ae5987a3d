package imeremap

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is an alternative keymap and blacklist, read from a TOML file:
//
//	blacklist = ["https://example.com/"]
//
//	[[mapping]]
//	match = "C-a"
//	emit = ["Home"]
type Config struct {
	Keymap    Keymap   `toml:"mapping"`
	Blacklist []string `toml:"blacklist"`
}

// LoadConfig decodes and validates a TOML config
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(cfg.Keymap) == 0 {
		return Config{}, fmt.Errorf("%w: no mappings", ErrInvalidKeymap)
	}
	if err := cfg.Keymap.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads a TOML config from the given path
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}

// Options returns the engine options for this config
func (cfg Config) Options() []Option {
	return []Option{
		WithKeymap(cfg.Keymap),
		WithBlacklist(NewBlacklist(cfg.Blacklist...)),
	}
}
