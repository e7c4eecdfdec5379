package ui

import (
	"context"
	stderrors "errors"
	"net"
	"net/http"
	"time"

	"econhub/internal"
	"econhub/internal/errors"
)

// Serve listens on addr and serves handler until ctx is cancelled, then
// shuts down gracefully within shutdownTimeout.
func Serve(ctx context.Context, name, addr string, handler http.Handler, shutdownTimeout time.Duration, logger *internal.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "failed to listen on %s", addr)
	}
	return ServeListener(ctx, name, ln, handler, shutdownTimeout, logger)
}

// ServeListener is Serve on an existing listener. The listener is closed on
// return.
func ServeListener(ctx context.Context, name string, ln net.Listener, handler http.Handler, shutdownTimeout time.Duration, logger *internal.Logger) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	served := make(chan error, 1)
	go func() {
		served <- srv.Serve(ln)
	}()
	logger.Info("[%s] listening at http://%s", name, ln.Addr())

	select {
	case err := <-served:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrapf(err, "%s server stopped", name)
	case <-ctx.Done():
	}

	logger.Info("[%s] shutting down", name)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		_ = srv.Close()
		<-served
		return errors.Wrapf(err, "%s server shutdown", name)
	}
	<-served
	return nil
}
