// Package logging assembles the structured slog logger used by fnm
// commands.
//
// It owns the console handler, maps the configuration's log level onto slog
// levels, and exposes a no-op logger for tests and wiring code that cannot
// fail. Prefer these constructors over hand-rolled slog setup so every
// command emits diagnostics with the same shape.
package logging
