/* models.go
 * Contains the types used by the operator HTTP server
 */

package web

import "github.com/rs/zerolog"

// Config holds the configuration for the web server
type Config struct {
	Addr string
}

// SessionCounter reports the number of open lookup sessions, implemented by *api.API
type SessionCounter interface {
	OpenSessions() int
}

// Server is the HTTP server that serves the health endpoint
type Server struct {
	cfg      Config
	sessions SessionCounter
	logger   zerolog.Logger
}

// HealthResponse is the body of GET /healthz
type HealthResponse struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}
