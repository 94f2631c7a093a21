// Package config resolves every setting the fnm CLI runs with.
//
// It merges three ordered sources for each field: an explicit caller-supplied
// value (normally a command-line flag), an FNM_* environment variable, and a
// compiled-in default. Values are parsed into closed types at construction,
// so a malformed mirror URL or an unrecognized log level, architecture, or
// version-file strategy fails loudly before any command runs. The package
// also owns the on-disk layout: it locates the base directory (honoring a
// pre-existing legacy ~/.fnm install before steering new installs to the
// platform data directory) and materializes the node-versions and aliases
// subdirectories on read.
//
// Always obtain settings through this package so downstream code receives a
// fully-typed, immutable configuration value.
package config
