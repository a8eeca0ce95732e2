package web

import (
	"log/slog"
	"net/http"

	"github.com/jusunglee/hangulsearch/internal/db"
	"github.com/jusunglee/hangulsearch/internal/index"
	"github.com/jusunglee/hangulsearch/internal/web/handlers"
	"github.com/jusunglee/hangulsearch/internal/web/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	repo    db.Repository
	log     *slog.Logger
	indexer *index.Indexer
}

func NewRouter(repo db.Repository, log *slog.Logger, indexer *index.Indexer) *Router {
	return &Router{
		repo:    repo,
		log:     log,
		indexer: indexer,
	}
}

func (r *Router) Handler() http.Handler {
	mux := http.NewServeMux()

	documentHandler := handlers.NewDocumentHandler(r.repo, r.log, r.indexer)
	searchHandler := handlers.NewSearchHandler(r.log, r.indexer)
	analyzeHandler := handlers.NewAnalyzeHandler(r.log)

	rateLimiter := middleware.NewRateLimiter(30, 60)

	mux.Handle("GET /health", http.HandlerFunc(handlers.Health))
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.Handle("GET /api/v1/documents",
		middleware.Chain(
			http.HandlerFunc(documentHandler.List),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.CacheControl("public, s-maxage=5, max-age=0"),
		),
	)

	mux.Handle("GET /api/v1/documents/{id}",
		middleware.Chain(
			http.HandlerFunc(documentHandler.Get),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.CacheControl("public, s-maxage=5, max-age=0"),
		),
	)

	mux.Handle("POST /api/v1/documents",
		middleware.Chain(
			http.HandlerFunc(documentHandler.Create),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.RateLimit(rateLimiter),
		),
	)

	mux.Handle("DELETE /api/v1/documents/{id}",
		middleware.Chain(
			http.HandlerFunc(documentHandler.Delete),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.RateLimit(rateLimiter),
		),
	)

	mux.Handle("GET /api/v1/search",
		middleware.Chain(
			http.HandlerFunc(searchHandler.Search),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.CacheControl("public, s-maxage=5, max-age=0"),
		),
	)

	mux.Handle("POST /api/v1/analyze",
		middleware.Chain(
			http.HandlerFunc(analyzeHandler.Analyze),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.RateLimit(rateLimiter),
		),
	)

	return middleware.CORS(mux)
}
