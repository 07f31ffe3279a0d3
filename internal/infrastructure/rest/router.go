package rest

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/narwhalmedia/catalog/pkg/interfaces"
	"github.com/narwhalmedia/catalog/pkg/logger"
)

// Pinger reports whether the database is reachable.
type Pinger func(ctx context.Context) error

// Handlers groups the resource handlers mounted by the router.
type Handlers struct {
	Categories  *CategoryHandler
	Genres      *GenreHandler
	CastMembers *CastMemberHandler
	Videos      *VideoHandler
}

// NewRouter builds the catalog API. metricsPath may be empty to leave
// the Prometheus endpoint out.
func NewRouter(handlers Handlers, metrics *Metrics, metricsPath string, ping Pinger, log interfaces.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logger.RequestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	r.Get("/healthz", healthz(ping))
	if metricsPath != "" {
		r.Method(http.MethodGet, metricsPath, metrics.Handler())
	}

	r.Mount("/categories", handlers.Categories.Routes())
	r.Mount("/genres", handlers.Genres.Routes())
	r.Mount("/cast_members", handlers.CastMembers.Routes())
	r.Mount("/videos", handlers.Videos.Routes())

	return r
}

type healthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func healthz(ping Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ping(r.Context()); err != nil {
			logger.FromContext(r.Context()).Warn("database ping failed", interfaces.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable", Error: "database unreachable"})
			return
		}
		writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
	}
}
