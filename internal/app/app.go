package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/YannKr/watermarkengine/internal/config"
	"github.com/YannKr/watermarkengine/internal/handler"
	"golang.org/x/time/rate"
)

// Run builds and serves the watermarking engine's HTTP adapter, blocking
// until ctx is canceled.
func Run(ctx context.Context, cfg *config.Config) error {
	authRL := handler.NewRateLimiter(rate.Limit(cfg.RateLimitPerSecond), cfg.RateLimitBurst)
	defer authRL.Stop()

	h := handler.New(cfg)
	router := h.Routes(authRL)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	go func() {
		<-ctx.Done()
		slog.Info("shutting down server")
		srv.Shutdown(context.Background())
	}()

	slog.Info("server starting", "addr", cfg.ListenAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
