package walker

import (
	"strings"

	"github.com/arthur-debert/treesift/pkg/errors"
)

// Mode selects what a walk emits.
type Mode int

const (
	// ModeFiles emits every file that survives filtering.
	ModeFiles Mode = iota
	// ModeDirectories emits surviving directories instead of files.
	ModeDirectories
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeFiles:
		return "files"
	case ModeDirectories:
		return "directories"
	default:
		return "unknown"
	}
}

// DefaultMarkerName is the marker file read when Options.MarkerName is empty.
const DefaultMarkerName = ".gitignore"

// Options configures a Walker.
type Options struct {
	// MarkerName is the exact name of the ignore-rule files, matched
	// verbatim against directory entries (no glob, no case folding).
	// Empty means DefaultMarkerName.
	MarkerName string

	// Mode selects file or directory emission.
	Mode Mode

	// IncludeMarkers also emits the marker files themselves in files
	// mode, subject to the same rule evaluation as any other file.
	// Mutually exclusive with ModeDirectories.
	IncludeMarkers bool
}

// validate rejects option combinations the walk cannot honor.
func (o Options) validate() error {
	switch o.Mode {
	case ModeFiles, ModeDirectories:
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown mode %d", int(o.Mode))
	}
	if o.Mode == ModeDirectories && o.IncludeMarkers {
		return errors.New(errors.ErrOptionConflict,
			"directory mode cannot include marker files")
	}
	if strings.ContainsAny(o.MarkerName, `/\`) {
		return errors.Newf(errors.ErrInvalidInput,
			"marker file name %q must not contain path separators", o.MarkerName)
	}
	return nil
}

// markerName returns the effective marker file name.
func (o Options) markerName() string {
	if o.MarkerName == "" {
		return DefaultMarkerName
	}
	return o.MarkerName
}
