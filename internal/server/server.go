package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"
)

// Start runs the HTTP server on the given host and port until the context is
// cancelled, then shuts it down gracefully.
func Start(ctx context.Context, log *slog.Logger, handler http.Handler, host string, port int) error {
	var (
		readHeaderTO = 5 * time.Second
		idleTO       = 60 * time.Second
		shutdownTO   = 10 * time.Second
	)

	srv := &http.Server{
		Addr:              net.JoinHostPort(host, strconv.Itoa(port)),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTO,
		IdleTimeout:       idleTO,
	}

	errCh := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to serve HTTP: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTO)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}

	log.InfoContext(ctx, "HTTP server stopped.")

	return nil
}
