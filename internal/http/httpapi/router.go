package httpapi

import (
	"net/http"

	"giftcard/internal/http/handlers"
	"giftcard/internal/metrics"
	"giftcard/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func NewRouter(app *handlers.App, logger zerolog.Logger, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		middleware.Logger(logger),
		middleware.Metrics(m),
		chimw.Recoverer,
	)

	r.Get("/health", app.Health)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	// Unknown tier ids reach the handlers and come back as 404.
	r.Route("/{tier}", func(r chi.Router) {
		r.Post("/describe", app.Describe)
		r.Post("/image", app.Image)
	})

	return r
}
