// Package api exposes parsed JSON documents over HTTP. Clients upload raw
// JSON, then fetch the rendered tree or run substring searches against the
// stored document until it expires.
package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/LizeLing/JSONVisualizer/internal/config"
	"github.com/LizeLing/JSONVisualizer/pkg/observability"
)

// Server routes document upload, tree, and search requests.
type Server struct {
	router chi.Router
	store  *Store
	logger *log.Logger
	cfg    config.Config
}

// NewServer wires the HTTP routes around the given store.
func NewServer(store *Store, logger *log.Logger, cfg config.Config) *Server {
	s := &Server{
		router: chi.NewRouter(),
		store:  store,
		logger: logger,
		cfg:    cfg,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger(s.logger))
	s.router.Use(middleware.Recoverer)

	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api/documents", func(r chi.Router) {
		r.Post("/", s.handleUpload)
		r.Route("/{docID}", func(r chi.Router) {
			r.Get("/tree", s.handleTree)
			r.Get("/search", s.handleSearch)
			r.Delete("/", s.handleDelete)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// requestLogger logs one line per request after it completes.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path, ww.Status(), time.Since(start))
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
