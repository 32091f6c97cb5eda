package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pathwaylabs/schoolscout/internal/api"
	"github.com/pathwaylabs/schoolscout/internal/api/handlers"
	"github.com/pathwaylabs/schoolscout/internal/api/middleware"
	"go.uber.org/zap"
)

type RouterConfig struct {
	DirectoryHandler *handlers.DirectoryHandler
	Logger           *zap.Logger
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	const maxBodyBytes int64 = 1 * 1024 * 1024

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r.Use(middleware.RequestID)
	r.Use(middleware.SentryMiddleware)
	r.Use(middleware.AccessLog(logger))
	r.Use(middleware.MaxBodyBytes(maxBodyBytes))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		api.Success(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/institutions", cfg.DirectoryHandler.GetView)

	r.Route("/search", func(r chi.Router) {
		r.Get("/", cfg.DirectoryHandler.GetSearchState)
		r.Put("/query", cfg.DirectoryHandler.SetQuery)
		r.Patch("/filters", cfg.DirectoryHandler.MergeFilters)
		r.Delete("/filters", cfg.DirectoryHandler.ResetFilters)
	})

	r.Route("/selection", func(r chi.Router) {
		r.Put("/", cfg.DirectoryHandler.Select)
		r.Delete("/", cfg.DirectoryHandler.ClearSelection)
	})

	return r
}
