// Package filesystem provides filesystem implementations for treesift.
//
// This package contains implementations of the types.FS interface,
// including the standard OS filesystem and an afero adapter used by
// tests to run the walker against in-memory trees.
package filesystem
