// Package testutil provides test helpers shared across treesift's test
// suites: in-memory filesystem builders and small OS-tree helpers.
package testutil
