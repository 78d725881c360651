package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/health-vault/internal/config"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// httpListener serves the portal REST API.
type httpListener struct {
	server *http.Server
}

func newHTTPServer(router http.Handler, cfg config.Server) *httpListener {
	return &httpListener{server: &http.Server{
		Addr:              cfg.HTTPAddress,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}}
}

func (h *httpListener) name() string { return "http" }

func (h *httpListener) address() string { return h.server.Addr }

func (h *httpListener) serve() error {
	err := h.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (h *httpListener) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	return h.server.Shutdown(ctx)
}
