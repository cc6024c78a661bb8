package ignore

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/treesift/pkg/errors"
	"github.com/arthur-debert/treesift/pkg/logging"
	"github.com/arthur-debert/treesift/pkg/types"
)

// Finding is one malformed pattern discovered by CheckTree.
type Finding struct {
	// File is the absolute path of the marker file.
	File string
	// Line is the 1-based line number of the offending pattern.
	Line int
	// Pattern is the offending line after trailing-whitespace trimming.
	Pattern string
	// Err is the engine's compile error.
	Err error
}

// CheckedFile summarizes one linted marker file.
type CheckedFile struct {
	// Path is the absolute path of the marker file.
	Path string
	// Rules counts the lines that compiled into rules.
	Rules int
	// Bad counts the lines that failed to compile.
	Bad int
}

// CheckReport is the result of linting every marker file under a root.
type CheckReport struct {
	Root     string
	Marker   string
	Files    []CheckedFile
	Findings []Finding
}

// Clean reports whether no malformed patterns were found.
func (r *CheckReport) Clean() bool {
	return len(r.Findings) == 0
}

// CheckTree lints every marker file under root without filtering the tree:
// each directory is visited, each marker file named marker is read, and
// every line is compiled. Malformed patterns are collected as Findings
// rather than aborting the lint; I/O failures remain fatal.
func CheckTree(fsys types.FS, root, marker string) (*CheckReport, error) {
	logger := logging.GetLogger("ignore.check")

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidRoot,
			"cannot resolve root %q", root)
	}
	absRoot = filepath.ToSlash(absRoot)

	info, err := fsys.Stat(absRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidRoot,
			"cannot stat root %q", root)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrInvalidRoot,
			"root %q is not a directory", root)
	}

	report := &CheckReport{Root: absRoot, Marker: marker}

	// Depth-first in listing order; no rule filtering, a broken pattern in
	// an otherwise-ignored subtree is still worth reporting.
	stack := []string{""}
	for len(stack) > 0 {
		rel := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		abs := joinRoot(absRoot, rel)

		entries, err := fsys.ReadDir(abs)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrDirUnreadable,
				"cannot list directory %q", abs)
		}

		var subdirs []string
		for _, entry := range entries {
			if entry.IsDir() {
				subdirs = append(subdirs, childRel(rel, entry.Name()))
				continue
			}
			if entry.Name() != marker {
				continue
			}

			markerPath := abs + "/" + entry.Name()
			data, err := fsys.ReadFile(markerPath)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrMarkerRead,
					"cannot read marker file %q", markerPath)
			}

			checked := CheckedFile{Path: markerPath}
			for i, line := range splitLines(string(data)) {
				rule, err := CompileLine(line, absRoot, rel)
				if err != nil {
					checked.Bad++
					report.Findings = append(report.Findings, Finding{
						File:    markerPath,
						Line:    i + 1,
						Pattern: trimTrailingWhitespace(line),
						Err:     err,
					})
					continue
				}
				if rule != nil {
					checked.Rules++
				}
			}
			logger.Debug().
				Str("file", markerPath).
				Int("rules", checked.Rules).
				Int("bad", checked.Bad).
				Msg("Checked marker file")
			report.Files = append(report.Files, checked)
		}

		// Reverse push so directories pop in listing order.
		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}

	logger.Info().
		Int("files", len(report.Files)).
		Int("findings", len(report.Findings)).
		Msg("Marker check complete")

	return report, nil
}

// splitLines splits marker-file text into lines, tolerating CRLF endings.
// A trailing newline does not produce a phantom final line.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func joinRoot(root, rel string) string {
	if rel == "" {
		return root
	}
	return strings.TrimSuffix(root, "/") + "/" + rel
}

func childRel(rel, name string) string {
	if rel == "" {
		return name
	}
	return rel + "/" + name
}
