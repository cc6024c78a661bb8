package types

import (
	"io/fs"
)

// FS is the read-only filesystem interface required for tree enumeration.
// Enumeration never mutates the tree, so the interface carries only the
// operations the walker and checker actually perform.
type FS interface {
	// Stat returns file info, following symlinks.
	Stat(name string) (fs.FileInfo, error)

	// ReadDir lists a directory in the underlying filesystem's order.
	ReadDir(name string) ([]fs.DirEntry, error)

	// Open opens a file for streamed reading. Callers must Close it.
	Open(name string) (fs.File, error)

	// ReadFile reads an entire file.
	ReadFile(name string) ([]byte, error)
}
