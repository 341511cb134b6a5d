//go:build !test

/* server.go
 * Contains the HTTP server lifecycle that listens for incoming connections.
 * Excluded from test coverage as it blocks and requires real network binding.
 */

package web

import (
	"context"
	"errors"
	"net/http"
	"time"
	"valorant-bot/api/api"
	"valorant-bot/config"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// Register starts the health server with the application when HEALTH_ADDR is set
func Register(lc fx.Lifecycle, cfg *config.Config, apiPtr *api.API, logger zerolog.Logger) {
	if cfg.HealthAddr == "" {
		return
	}
	s := NewServer(Config{Addr: cfg.HealthAddr}, apiPtr, logger)

	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				s.logger.Info().Str("addr", s.cfg.Addr).Msg("HTTP server listening")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					s.logger.Error().Err(err).Msg("HTTP server stopped")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

var Module = fx.Invoke(Register)
