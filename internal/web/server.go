// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"time"

	"go.printburn.dev/burntuner/internal/logger"
)

// ListenAndServeConfig is used to configure the HTTP server started by
// [ListenAndServe].
//
// All fields of ListenAndServeConfig can't be modified after [ListenAndServe]
// is called.
type ListenAndServeConfig struct {
	// Addr is a network address to listen on (in the form of "host:port").
	Addr string
	// Handler is a handler to serve.
	Handler http.Handler
	// Ready, if not nil, is called with the bound address once the listener
	// is accepting connections. ListenAndServe doesn't watch the context
	// until Ready returns.
	Ready func(addr net.Addr)
}

// shutdownTimeout limits how long in-flight requests are waited for after the
// context is done.
const shutdownTimeout = 30 * time.Second

var (
	errNoAddr     = errors.New("c.Addr is empty")
	errNilHandler = errors.New("c.Handler is nil")
)

// ListenAndServe starts the HTTP server based on the provided
// [ListenAndServeConfig] and blocks until ctx is done or the server fails.
//
// The listener is owned by ListenAndServe and is closed on every return path.
// Requests are not logged; server errors go to the logger in ctx at error
// level. Handlers see a context that carries the values of ctx, but is not
// cancelled with it.
func ListenAndServe(ctx context.Context, c *ListenAndServeConfig) error {
	if c.Addr == "" {
		return errNoAddr
	}
	if c.Handler == nil {
		return errNilHandler
	}

	l, err := net.Listen("tcp", c.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	defer l.Close()
	logger.Debug(ctx, "listening", slog.String("addr", l.Addr().String()))

	baseCtx := context.WithoutCancel(ctx)
	// Connections are served concurrently; handlers must not share mutable state.
	s := &http.Server{
		Handler:           securityHeaders(c.Handler),
		ErrorLog:          log.New(logger.ErrorLogf(ctx), "", 0),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	if c.Ready != nil {
		c.Ready(l.Addr())
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Debug(ctx, "gracefully shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}

	return nil
}

func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
