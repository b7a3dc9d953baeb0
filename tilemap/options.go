package tilemap

import (
	"io"
	"log/slog"
)

// Options configures a Map.
type Options struct {
	// Logger receives Debug events for grid lifecycle and query outcomes.
	Logger *slog.Logger
}

// Option represents a functional option for configuring a Map.
type Option func(*Options)

// WithLogger sets the logger. A nil logger keeps the default, which discards.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options with a discarding logger.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
