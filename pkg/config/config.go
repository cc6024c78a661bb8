package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/treesift/pkg/errors"
	"github.com/arthur-debert/treesift/pkg/logging"
	"github.com/arthur-debert/treesift/pkg/paths"
)

// EnvPrefix is the prefix for environment overrides; TREESIFT_WALK_MARKER
// sets walk.marker, TREESIFT_OUTPUT_FORMAT sets output.format.
const EnvPrefix = "TREESIFT_"

// Config is the resolved treesift configuration.
type Config struct {
	Walk   Walk   `koanf:"walk" toml:"walk"`
	Output Output `koanf:"output" toml:"output"`
}

// Walk holds enumeration defaults.
type Walk struct {
	// Marker is the marker-file name looked for in every directory.
	Marker string `koanf:"marker" toml:"marker"`
}

// Output holds rendering defaults.
type Output struct {
	// Format selects the default listing format: auto, text, or json.
	Format string `koanf:"format" toml:"format"`
}

// Default returns the built-in configuration.
func Default() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad,
			"cannot load built-in defaults")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse,
			"cannot decode built-in defaults")
	}
	return &cfg, nil
}

// Load resolves the configuration from all three layers.
func Load() (*Config, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	// 1. Built-in defaults.
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad,
			"cannot load built-in defaults")
	}

	// 2. User config file, if present.
	path := paths.ConfigFilePath()
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse,
				"cannot parse config file %q", path).
				WithDetail("file", path)
		}
		logger.Debug().Str("file", path).Msg("Loaded user config")
	}

	// 3. Environment overrides.
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad,
			"cannot load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse,
			"cannot decode configuration")
	}

	logger.Debug().
		Str("marker", cfg.Walk.Marker).
		Str("format", cfg.Output.Format).
		Msg("Configuration resolved")

	return &cfg, nil
}
