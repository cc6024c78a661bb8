// Package genconfig renders the default configuration file and optionally
// writes it to the user config location.
package genconfig

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/treesift/pkg/config"
	"github.com/arthur-debert/treesift/pkg/errors"
	"github.com/arthur-debert/treesift/pkg/logging"
	"github.com/arthur-debert/treesift/pkg/paths"
)

// Options holds options for the gen-config command
type Options struct {
	// Write persists the generated file instead of only returning it
	Write bool

	// Force overwrites an existing config file
	Force bool

	// Path overrides the destination; defaults to the XDG config path
	Path string
}

// Result reports what gen-config produced
type Result struct {
	Content string
	Path    string
	Written bool
}

// GenConfig outputs or writes the default configuration
func GenConfig(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.genconfig")

	content, err := config.GenerateContent()
	if err != nil {
		return nil, err
	}

	path := opts.Path
	if path == "" {
		path = paths.ConfigFilePath()
	}

	result := &Result{Content: content, Path: path}

	// If not writing, just return the content
	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite,
			"cannot create config directory %q", filepath.Dir(path))
	}

	// Never clobber an existing config unless forced.
	if _, err := os.Stat(path); err == nil && !opts.Force {
		logger.Warn().Str("path", path).Msg("Config file already exists, skipping")
		return result, nil
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite,
			"cannot write config to %q", path)
	}

	logger.Info().Str("path", path).Msg("Written config file")
	result.Written = true

	return result, nil
}
