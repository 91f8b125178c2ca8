package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shared-ledger/internal/config"
	"shared-ledger/internal/transport/httpserver/handler"
	"shared-ledger/internal/transport/httpserver/middleware"
	"shared-ledger/pkg/logger"
)

// NewRouter mounts one route per ledger operation under /api. When reg is
// non-nil, request metrics are collected into it and exposed on /metrics.
func NewRouter(cfg config.Config, handlers *handler.Handlers, reg *prometheus.Registry, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.NewCORS(cfg.CORSOrigins))

	if reg != nil {
		r.Use(middleware.NewMetrics(reg).Middleware)
		r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Post("/register", handlers.Register)
		r.Post("/login", handlers.Login)

		r.Post("/create_group", handlers.CreateGroup)
		r.Post("/join_group", handlers.JoinGroup)
		r.Get("/get_my_groups", handlers.GetMyGroups)

		r.Get("/get_categories", handlers.GetCategories)
		r.Post("/add_category", handlers.AddCategory)

		r.Post("/add_record", handlers.AddRecord)
		r.Delete("/delete_record", handlers.DeleteRecord)
		r.Get("/search_records", handlers.SearchRecords)
		r.Get("/get_summary", handlers.GetSummary)
		r.Get("/get_records", handlers.GetRecords)
		r.Get("/get_analytics", handlers.GetAnalytics)
	})

	return r
}
