package walker

import (
	"bufio"
	"io/fs"
	"iter"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/treesift/pkg/errors"
	"github.com/arthur-debert/treesift/pkg/filesystem"
	"github.com/arthur-debert/treesift/pkg/ignore"
	"github.com/arthur-debert/treesift/pkg/logging"
	"github.com/arthur-debert/treesift/pkg/types"
)

// Walker enumerates a directory tree while honoring the marker-file rules
// it finds. A Walker is stateless between calls: every Walk builds its own
// rule set and work list, so one Walker may serve many walks.
type Walker struct {
	fs   types.FS
	opts Options
}

// New creates a Walker over the OS filesystem.
func New(opts Options) *Walker {
	return NewFS(filesystem.NewOS(), opts)
}

// NewFS creates a Walker over the given filesystem.
func NewFS(fsys types.FS, opts Options) *Walker {
	return &Walker{fs: fsys, opts: opts}
}

// visit is one work-list entry. Each directory passes through the list
// twice: first to expand it, then, after its whole subtree has been
// processed, to contract it (pop its rules).
type visit struct {
	rel      string
	contract bool
}

// Walk lazily enumerates root. In files mode it yields every file that
// survives the active rules, in directory mode every surviving directory
// except root itself. Paths are absolute and appear depth-first: a
// directory's files in listing order, then each subdirectory's subtree.
//
// The first error (unreadable root, unreadable directory or marker file,
// pattern that fails to compile) is yielded with an empty path and ends
// the walk. Stopping iteration early simply abandons the remaining work.
func (w *Walker) Walk(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		logger := logging.GetLogger("walker")

		if err := w.opts.validate(); err != nil {
			yield("", err)
			return
		}
		marker := w.opts.markerName()

		absRoot, err := filepath.Abs(root)
		if err != nil {
			yield("", errors.Wrapf(err, errors.ErrInvalidRoot,
				"cannot resolve root %q", root))
			return
		}
		absRoot = filepath.ToSlash(absRoot)

		info, err := w.fs.Stat(absRoot)
		if err != nil {
			yield("", errors.Wrapf(err, errors.ErrInvalidRoot,
				"cannot stat root %q", root))
			return
		}
		if !info.IsDir() {
			yield("", errors.Newf(errors.ErrInvalidRoot,
				"root %q is not a directory", root))
			return
		}

		logger.Debug().
			Str("root", absRoot).
			Str("marker", marker).
			Str("mode", w.opts.Mode.String()).
			Bool("includeMarkers", w.opts.IncludeMarkers).
			Msg("Walk started")

		rules := ignore.NewRuleSet(absRoot)
		work := []visit{{rel: ""}}

		// Directory mode suppresses duplicate emissions.
		var emitted map[string]bool
		if w.opts.Mode == ModeDirectories {
			emitted = make(map[string]bool)
		}

		count := 0
		for len(work) > 0 {
			v := work[len(work)-1]
			work = work[:len(work)-1]

			if v.contract {
				rules.ExitDirectory(v.rel)
				continue
			}

			abs := joinRoot(absRoot, v.rel)
			logger.Trace().Str("dir", abs).Msg("Expanding directory")

			entries, err := w.fs.ReadDir(abs)
			if err != nil {
				yield("", errors.Wrapf(err, errors.ErrDirUnreadable,
					"cannot list directory %q", abs))
				return
			}

			// Partition in listing order. Symlinks land with the files;
			// they are never followed.
			var dirs, files []fs.DirEntry
			for _, entry := range entries {
				if entry.IsDir() {
					dirs = append(dirs, entry)
				} else {
					files = append(files, entry)
				}
			}

			if w.opts.Mode == ModeDirectories && v.rel != "" && !emitted[abs] {
				emitted[abs] = true
				count++
				if !yield(filepath.FromSlash(abs), nil) {
					logger.Trace().Msg("Walk stopped by consumer")
					return
				}
			}

			// The marker file's rules must be in place before anything in
			// this directory is evaluated, so lines late in the file still
			// cover entries listed before it.
			var lines []string
			markerPath := ""
			for _, entry := range files {
				if entry.Name() != marker {
					continue
				}
				markerPath = abs + "/" + entry.Name()
				lines, err = readMarkerLines(w.fs, markerPath)
				if err != nil {
					yield("", errors.Wrapf(err, errors.ErrMarkerRead,
						"cannot read marker file %q", markerPath))
					return
				}
				break
			}

			added, err := rules.EnterDirectory(v.rel, markerPath, lines)
			if err != nil {
				yield("", err)
				return
			}
			if added > 0 {
				logger.Debug().
					Str("file", markerPath).
					Int("rules", added).
					Msg("Entered marker rules")
			}

			work = append(work, visit{rel: v.rel, contract: true})

			// Evaluate subdirectories against the now-complete rule set.
			// Excluded ones are never queued, so their subtrees are never
			// read. Survivors are pushed in reverse so they pop in listing
			// order.
			survivors := dirs[:0]
			for _, entry := range dirs {
				childAbs := abs + "/" + entry.Name()
				if rules.Evaluate(childAbs, true) == ignore.Exclude {
					logger.Trace().Str("dir", childAbs).Msg("Pruned directory")
					continue
				}
				survivors = append(survivors, entry)
			}
			for i := len(survivors) - 1; i >= 0; i-- {
				work = append(work, visit{rel: childRel(v.rel, survivors[i].Name())})
			}

			if w.opts.Mode != ModeFiles {
				continue
			}
			for _, entry := range files {
				if entry.Name() == marker && !w.opts.IncludeMarkers {
					continue
				}
				fileAbs := abs + "/" + entry.Name()
				if rules.Evaluate(fileAbs, false) == ignore.Exclude {
					logger.Trace().Str("file", fileAbs).Msg("Excluded file")
					continue
				}
				count++
				if !yield(filepath.FromSlash(fileAbs), nil) {
					logger.Trace().Msg("Walk stopped by consumer")
					return
				}
			}
		}

		logger.Debug().Int("emitted", count).Msg("Walk complete")
	}
}

// Collect gathers the lazy sequence into a slice. The first error ends
// the walk and is returned with no partial results.
func (w *Walker) Collect(root string) ([]string, error) {
	var paths []string
	for path, err := range w.Walk(root) {
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// readMarkerLines reads one marker file line by line. The file handle is
// released before the caller moves on, whatever the outcome.
func readMarkerLines(fsys types.FS, path string) ([]string, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
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
