package config

import (
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"bridge-generator/internal/errors"
)

// EnvPrefix prefixes environment overrides, e.g. BRIDGEGEN_LOG_VERBOSITY=2.
const EnvPrefix = "BRIDGEGEN_"

// Config holds generator settings.
type Config struct {
	// Prefix is prepended to argument names that have no explicit value.
	Prefix string `koanf:"prefix"`
	// Indent is one nesting level in rendered call sites.
	Indent string `koanf:"indent"`
	// Catalog is an optional YAML catalog overriding built-in conversions.
	Catalog string    `koanf:"catalog"`
	Log     LogConfig `koanf:"log"`
}

type LogConfig struct {
	Verbosity int  `koanf:"verbosity"`
	File      bool `koanf:"file"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"prefix":        "",
		"indent":        "    ",
		"catalog":       "",
		"log.verbosity": 0,
		"log.file":      false,
	}
}

// Load layers defaults, the optional file at path and environment variables.
// Files ending in .toml are parsed as TOML, anything else as YAML.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path).
				WithDetail("path", path)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	return &cfg, nil
}

func parserFor(path string) koanf.Parser {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Parser()
	}

	return yaml.Parser()
}
