// Package types defines the core interfaces shared across treesift.
// The central piece is FS, the read-only filesystem surface the walker
// and the marker-file checker operate on.
package types
