// Package logging builds the diagnostic logger shared by the greet commands.
// Diagnostics always go to stderr; stdout is reserved for the greeting.
package logging

import (
	"context"
	"io"
	"log/slog"
)

type ctxKey struct{}

var discard = slog.New(slog.DiscardHandler)

// New returns a debug-level text logger writing to w when verbose is set,
// and a logger that drops every record otherwise.
func New(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			// Drop timestamps so verbose runs stay reproducible.
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// WithLogger attaches l to ctx.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger stored in ctx, or a discarding logger.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && l != nil {
			return l
		}
	}
	return discard
}
