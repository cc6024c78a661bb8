// Package config resolves the treesift configuration from three layers:
// embedded defaults, an optional user config file in the XDG config
// directory, and TREESIFT_* environment variables, later layers winning.
package config
