package web

import (
	_ "oldphonepad/docs"
	"oldphonepad/internal/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

func RegisterRoutes(r chi.Router, h *PadHandler, m *metrics.Decoder) {
	r.Use(middleware.Recoverer)
	r.Group(func(r chi.Router) {
		r.Use(LoggerMiddleware(h.logger))
		r.Post("/decode", h.Decode)
		r.Get("/decode/{id}", h.GetDecoding)
		r.Get("/history", h.History)
	})
	r.Method("GET", "/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)
}
