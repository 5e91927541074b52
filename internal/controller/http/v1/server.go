package v1

import (
	"context"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/kurochkinivan/vulnscan/internal/config"
)

type Server struct {
	httpServer *http.Server
}

// NewServer serves the scan API under /api and, when frontend is not nil,
// everything else through frontend.
func NewServer(cfg config.HTTP, h *ScansHandler, frontend http.Handler) *Server {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", Health)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"*"},
		}))

		Routes(r, h)
	})

	if frontend != nil {
		r.Mount("/", frontend)
	}

	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      r,
		},
	}
}

// Routes registers the scan API on r.
func Routes(r chi.Router, h *ScansHandler) {
	r.Post("/parse-scan", h.ParseScan)
	r.Get("/scans", h.ListScans)
	r.Get("/scan/{scan_id}", h.GetScan)
	r.Delete("/scan/{scan_id}", h.DeleteScan)
	r.Get("/scan/{scan_id}/report/{format}", h.GetReport)
	r.Post("/generate-script/{scan_id}", h.GenerateScript)
}

func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Serve(l net.Listener) error {
	return s.httpServer.Serve(l)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
