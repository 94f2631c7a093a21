package logging

import (
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/mattn/go-isatty"

	"fnm/internal/config"
)

// New constructs a console slog logger writing to w, filtering records below
// the given level. Color is enabled only when w is a terminal.
func New(level config.LogLevel, w io.Writer) *slog.Logger {
	levelVar := new(slog.LevelVar)
	levelVar.Set(level.SlogLevel())
	return slog.New(newConsoleHandler(w, levelVar, useColor(w)))
}

// NewStderr constructs the standard command logger on stderr, keeping stdout
// free for command output.
func NewStderr(level config.LogLevel) *slog.Logger {
	return New(level, os.Stderr)
}

// NewNop returns a logger that discards every record.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt8)}))
}

func useColor(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
