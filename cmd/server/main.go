package main

import (
	"oldphonepad/internal/config"
	"oldphonepad/internal/di"
	"oldphonepad/internal/logger"
	"oldphonepad/internal/metrics"
	"oldphonepad/internal/repository"
	"oldphonepad/internal/web"

	"go.uber.org/fx"
)

// @title Old phone pad API
// @version 1.0
// @description Decodes multi-tap keypad presses into text.
// @BasePath /
func main() {
	app := fx.New(
		fx.Provide(
			config.MustLoad,
			logger.ProvideLogger,
			metrics.NewDecoder,
			func(cfg *config.Config) repository.History {
				return repository.NewInMemoryHistory(cfg.HistorySize)
			},
			web.NewPadHandler,
		),

		fx.Invoke(
			di.StartHttpServer,
		),
	)
	app.Run()
}
