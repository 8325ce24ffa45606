package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/agentx-labs/create-react-app/internal/branding"
	"golang.org/x/term"
)

// NewCommandLogger creates the diagnostics logger. Output goes to stderr as
// text when it is a terminal and as JSON otherwise. The level is Debug when
// verbose is set or the DEBUG environment variable is non-empty.
func NewCommandLogger(verbose bool) *slog.Logger {
	return newLogger(os.Stderr, verbose || os.Getenv(branding.EnvVar("DEBUG")) != "")
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	options := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler)
}
