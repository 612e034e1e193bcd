// Package metrics serves the statsviz runtime dashboard next to the game server.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/arl/statsviz"
)

// DashboardPath is where statsviz mounts its UI.
const DashboardPath = "/debug/statsviz/"

// Handler returns a mux with the dashboard registered.
func Handler() (*http.ServeMux, error) {
	mux := http.NewServeMux()
	if err := statsviz.Register(mux); err != nil {
		return nil, fmt.Errorf("register statsviz: %w", err)
	}
	return mux, nil
}

// Serve blocks serving the dashboard on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string) error {
	mux, err := Handler()
	if err != nil {
		return err
	}
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
