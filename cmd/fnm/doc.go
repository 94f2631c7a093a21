// Command fnm is the Node.js version manager CLI. This binary carries the
// global configuration flags and the diagnostic subcommands; resolved
// settings flow to every collaborator through internal/config.
package main
