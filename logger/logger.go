package logger

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// New builds a logger writing to w at the given level
// (debug, info, warn, error or fatal, any case).
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "parsing log level")
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "midnote",
	}), nil
}

func WithContext(ctx context.Context, l *log.Logger) context.Context {
	return log.WithContext(ctx, l)
}

// FromContext falls back to the package default logger.
func FromContext(ctx context.Context) *log.Logger {
	return log.FromContext(ctx)
}

// Discard is handy for tests and library callers that want silence.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
