// Package logging provides the importable readability package's debug
// logger. It stays on log/slog rather than a CLI-flavored logging library
// so embedding applications are never forced onto a particular renderer —
// cmd/readability wires its own colorized logger on top of github.com/charmbracelet/log
// instead.
package logging

import (
	"log/slog"
	"os"
)

// Default is the package-level logger the readability package writes its
// debug-level traces through. It writes text records to stderr with a
// fixed level of warn, so those debug records are discarded; slog.SetDefault
// does not affect it.
var Default = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: slog.LevelWarn,
}))
