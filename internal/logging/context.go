// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

type loggerKey struct{}

// WithLogger returns a copy of ctx that carries logger.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// WithFields returns a copy of ctx whose logger adds the given key-value
// pairs to every entry, for example the name of the input a command is
// reading.
func WithFields(ctx context.Context, keyvals ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(keyvals...))
}

// FromContext returns the logger carried by ctx, or Default if it has none.
func FromContext(ctx context.Context) *log.Logger {
	if logger, _ := ctx.Value(loggerKey{}).(*log.Logger); logger != nil {
		return logger
	}
	return Default()
}
