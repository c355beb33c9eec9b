// Package config loads tool configuration from a TOML or YAML file, chosen
// by file extension, with sensible defaults when no file is given.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultPrefix is prepended to every identifier the generator emits,
	// keeping generated names out of the program under test's namespace.
	DefaultPrefix = "UT-"
	DefaultLocale = "en"
	DefaultOutDir = "out"
)

type Config struct {
	// Prefix for generated identifiers, e.g. UT-ACTUAL, UT-EXPECTED.
	Prefix string `toml:"prefix" yaml:"prefix"`
	// Locale for user-facing messages.
	Locale string `toml:"locale" yaml:"locale"`
	// OutDir receives generated COBOL files.
	OutDir string `toml:"out-dir" yaml:"out-dir"`
}

func Default() Config {
	return Config{
		Prefix: DefaultPrefix,
		Locale: DefaultLocale,
		OutDir: DefaultOutDir,
	}
}

// Load reads configuration from path. An empty path returns the defaults;
// unset keys keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(content, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &cfg)
	default:
		return cfg, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Prefix == "" {
		cfg.Prefix = DefaultPrefix
	}
	if cfg.Locale == "" {
		cfg.Locale = DefaultLocale
	}
	if cfg.OutDir == "" {
		cfg.OutDir = DefaultOutDir
	}
	return cfg, nil
}
