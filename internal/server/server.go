// Package server exposes the comparison pipeline over HTTP. It is thin
// plumbing: uploads in, the core compare call, JSON out.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	pdfcompare "github.com/naanu1/pdf-comparison"
	"github.com/naanu1/pdf-comparison/config"
)

// Comparer is the core operation this server wires to HTTP. The root
// pdfcompare.Comparer satisfies it; tests substitute a stub.
type Comparer interface {
	Compare(ctx context.Context, oldPDF, newPDF []byte) (*pdfcompare.Result, error)
}

// Server holds the HTTP interface around a Comparer.
type Server struct {
	cfg      *config.Config
	comparer Comparer

	httpServer *http.Server
}

// New builds the server with its routes and middleware chain.
func New(cfg *config.Config, comparer Comparer) *Server {
	s := &Server{
		cfg:      cfg,
		comparer: comparer,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/compare", s.handleCompare)

	// Recovery must be outermost so it also catches panics in logging.
	var handler http.Handler = mux
	handler = s.loggingMiddleware(handler)
	handler = s.recoveryMiddleware(handler)

	rootMux := http.NewServeMux()
	rootMux.HandleFunc("GET /healthz", s.handleHealthz)
	rootMux.Handle("GET /metrics", promhttp.Handler())
	rootMux.Handle("/", handler)

	s.httpServer = &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: rootMux,
	}

	return s
}

// Run starts serving and blocks until the listener closes.
func (s *Server) Run() error {
	slog.Info("HTTP server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the full handler tree for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
