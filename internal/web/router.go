// Package web wires the HTTP API: translation requests plus read access
// to the recorded history.
package web

import (
	"log/slog"
	"net/http"

	"github.com/crackalamoo/futhorc/internal/db"
	"github.com/crackalamoo/futhorc/internal/runic"
	"github.com/crackalamoo/futhorc/internal/web/handlers"
	"github.com/crackalamoo/futhorc/internal/web/middleware"
)

type Router struct {
	repo       db.Repository
	log        *slog.Logger
	translator *runic.Translator
}

func NewRouter(repo db.Repository, log *slog.Logger, translator *runic.Translator) *Router {
	return &Router{
		repo:       repo,
		log:        log,
		translator: translator,
	}
}

func (r *Router) Handler() http.Handler {
	mux := http.NewServeMux()

	translateHandler := handlers.NewTranslateHandler(r.repo, r.log, r.translator)
	historyHandler := handlers.NewHistoryHandler(r.repo, r.log)

	rateLimiter := middleware.NewRateLimiter(30, 60)

	mux.Handle("POST /api/v1/translate",
		middleware.Chain(
			http.HandlerFunc(translateHandler.Translate),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.RateLimit(rateLimiter),
		),
	)

	mux.Handle("GET /api/v1/translations",
		middleware.Chain(
			http.HandlerFunc(historyHandler.List),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.CacheControl("public, s-maxage=5, max-age=0"),
		),
	)

	mux.Handle("GET /api/v1/translations/{id}",
		middleware.Chain(
			http.HandlerFunc(historyHandler.Get),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.CacheControl("public, s-maxage=5, max-age=0"),
		),
	)

	return middleware.CORS(mux)
}
