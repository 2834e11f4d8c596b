package di

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"oldphonepad/internal/config"
	"oldphonepad/internal/metrics"
	"oldphonepad/internal/web"

	"github.com/go-chi/chi/v5"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func NewRouter(h *web.PadHandler, m *metrics.Decoder) http.Handler {
	router := chi.NewRouter()
	web.RegisterRoutes(router, h, m)
	return router
}

func StartHttpServer(lc fx.Lifecycle, handler *web.PadHandler, m *metrics.Decoder, config *config.Config, logger *zap.Logger) {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.HttpPort),
		Handler: NewRouter(handler, m),
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("server started", zap.String("addr", server.Addr))
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("ListenAndServe error", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("shutting down server")
			defer logger.Sync() //nolint:errcheck
			return server.Shutdown(ctx)
		},
	})
}
