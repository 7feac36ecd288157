package observability

import (
	"io"
	"log/slog"
	"os"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"

	"github.com/couchcryptid/mrms-cf-etl/internal/config"
)

// NewLogger builds the service logger from LOG_FORMAT and LOG_LEVEL and
// installs it as the slog default.
func NewLogger(cfg *config.Config) *slog.Logger {
	return sharedobs.NewLogger(cfg.LogLevel, cfg.LogFormat)
}

// NewCLILogger builds a text logger on stderr for the command-line tools,
// keeping stdout free for their reports. Unknown levels fall back to warn.
func NewCLILogger(level string) *slog.Logger {
	return newCLILogger(os.Stderr, level)
}

func newCLILogger(w io.Writer, level string) *slog.Logger {
	lvl := slog.LevelWarn
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
