// Package health runs the liveness endpoint uptime monitors poll. It has no
// data dependency on the rest of the bot and never blocks conversation
// processing.
package health

import (
	"context"
	"errors"
	"net/http"
	"time"
)

const body = "Bot is running!"

// Server is a minimal HTTP server answering GET / with a static body.
type Server struct {
	srv *http.Server
}

// New builds a liveness server listening on addr.
func New(addr string) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/", Handler)
	return &Server{srv: &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}}
}

// Handler answers the liveness probe.
func Handler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
