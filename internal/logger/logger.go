// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package logger defines a type for writing to logs and helpers for carrying
// a [slog.Logger] in a context.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Logf is the basic logger type: a printf-like func. Like [log.Printf], the
// format need not end in a newline. Logf functions must be safe for concurrent
// use.
type Logf func(format string, args ...any)

// Write implements the [io.Writer] interface.
func (f Logf) Write(p []byte) (n int, err error) {
	f("%s", p)
	return len(p), nil
}

type ctxKey struct{}

// Put returns a copy of ctx that carries l.
func Put(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// Get returns the logger carried by ctx. If there is none, it returns a
// logger that discards everything.
func Get(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// New returns a text [slog.Logger] writing to w. level is one of "debug",
// "info", "warn" or "error" (case-insensitive); anything else means "warn".
func New(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil || level == "" {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// Debug logs at [slog.LevelDebug] using the logger from ctx.
func Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	log(ctx, slog.LevelDebug, msg, attrs...)
}

// Info logs at [slog.LevelInfo] using the logger from ctx.
func Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	log(ctx, slog.LevelInfo, msg, attrs...)
}

// Warn logs at [slog.LevelWarn] using the logger from ctx.
func Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	log(ctx, slog.LevelWarn, msg, attrs...)
}

// Error logs at [slog.LevelError] using the logger from ctx.
func Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	log(ctx, slog.LevelError, msg, attrs...)
}

func log(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr) {
	Get(ctx).LogAttrs(ctx, level, msg, attrs...)
}

// ErrorLogf returns a [Logf] that logs each formatted line at error level
// using the logger from ctx. It's meant for APIs like [http.Server.ErrorLog].
func ErrorLogf(ctx context.Context) Logf {
	return func(format string, args ...any) {
		l := Get(ctx)
		if !l.Enabled(ctx, slog.LevelError) {
			return
		}
		l.Error(strings.TrimSuffix(fmt.Sprintf(format, args...), "\n"))
	}
}
