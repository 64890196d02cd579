package logging

import (
	"context"

	"github.com/rs/zerolog"
)

type contextKey int

const loggerKey contextKey = iota

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from context, or returns the default logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*zerolog.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// WithBook tags the context logger with a book id.
func WithBook(ctx context.Context, bookID int) context.Context {
	logger := FromContext(ctx).With().Int("book_id", bookID).Logger()
	return WithLogger(ctx, &logger)
}

// WithMember tags the context logger with a member id.
func WithMember(ctx context.Context, memberID int) context.Context {
	logger := FromContext(ctx).With().Int("member_id", memberID).Logger()
	return WithLogger(ctx, &logger)
}

// WithOperation tags the context logger with the catalog operation in
// progress, such as "issue" or "save".
func WithOperation(ctx context.Context, operation string) context.Context {
	logger := FromContext(ctx).With().Str("operation", operation).Logger()
	return WithLogger(ctx, &logger)
}
