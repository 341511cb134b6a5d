/* server_test.go
 * Contains unit tests for the health endpoint
 */

package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounter int

func (f fakeCounter) OpenSessions() int { return int(f) }

// region Server tests

func TestNewServer(t *testing.T) {
	s := NewServer(Config{Addr: ":8080"}, fakeCounter(0), zerolog.Nop())

	assert.Equal(t, ":8080", s.cfg.Addr)
	assert.NotNil(t, s.sessions)
}

// endregion

// region HealthHandler tests

func TestHealthHandler_ReportsSessions(t *testing.T) {
	s := NewServer(Config{}, fakeCounter(3), zerolog.Nop())
	rec := httptest.NewRecorder()

	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var body HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, HealthResponse{Status: "ok", Sessions: 3}, body)
}

func TestHealthHandler_NoCounter(t *testing.T) {
	s := NewServer(Config{}, nil, zerolog.Nop())
	rec := httptest.NewRecorder()

	s.HealthHandler(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.JSONEq(t, `{"status":"ok","sessions":0}`, rec.Body.String())
}

func TestRouter_WrongMethod(t *testing.T) {
	s := NewServer(Config{}, fakeCounter(0), zerolog.Nop())
	rec := httptest.NewRecorder()

	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/healthz", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_UnknownPath(t *testing.T) {
	s := NewServer(Config{}, fakeCounter(0), zerolog.Nop())
	rec := httptest.NewRecorder()

	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/webhooks/liquipedia", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// endregion
