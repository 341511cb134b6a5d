/* health.go
 * Contains the router and the health endpoint handler
 */

package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// NewServer creates the operator server
func NewServer(cfg Config, sessions SessionCounter, logger zerolog.Logger) *Server {
	return &Server{
		cfg:      cfg,
		sessions: sessions,
		logger:   logger.With().Str("component", "web").Logger(),
	}
}

// Router returns the handler with every route the server exposes
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)

	r.Get("/healthz", s.HealthHandler)
	return r
}

// HealthHandler reports liveness and the number of open sessions
// Preconditions: HTTP server has been started, receives HTTP ResponseWriter and Http Request
// Postconditions: writes {"status":"ok","sessions":N} with status 200
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok"}
	if s.sessions != nil {
		resp.Sessions = s.sessions.OpenSessions()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error().Err(err).Msg("failed to write health response")
	}
}
