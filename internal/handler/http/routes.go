package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	router.Get("/api/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}

		r.Put("/api/settings/repository", h.saveRepositorySettings)
		r.Put("/api/settings/judge", h.saveJudgeSettings)
		r.Post("/api/sync", h.sync)
		r.Get("/api/submissions", h.listSubmissions)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
