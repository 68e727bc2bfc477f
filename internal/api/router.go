package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/meur/substrate/internal/matcher"
	"github.com/meur/substrate/internal/metrics"
	"github.com/meur/substrate/internal/models"
)

// Server holds the HTTP server dependencies
type Server struct {
	engine     *matcher.Engine
	vocabulary *models.Vocabulary
	key        string
	metrics    *metrics.Metrics
	gatherer   prometheus.Gatherer
	logger     *slog.Logger
	router     chi.Router
}

// Options configures optional server dependencies
type Options struct {
	// CollectionKey names the collection in /api/catalog output
	CollectionKey string
	// Registry receives the lookup metrics; a fresh registry is used when nil
	Registry *prometheus.Registry
	Logger   *slog.Logger
}

// New creates a new API server
func New(engine *matcher.Engine, vocabulary *models.Vocabulary, opts Options) *Server {
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		engine:     engine,
		vocabulary: vocabulary,
		key:        opts.CollectionKey,
		metrics:    metrics.New(reg),
		gatherer:   reg,
		logger:     logger,
		router:     chi.NewRouter(),
	}
	s.metrics.SetCatalogItems(engine.Catalog().Len())

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "https://*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/items", s.handleGetItems)
		r.Get("/catalog", s.handleGetCatalog)
		r.Get("/vocabulary", s.handleGetVocabulary)

		r.Get("/match", s.handleMatch)
		r.Get("/match/exact", s.handleExactMatch)
	})

	s.router.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	// Health check
	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

// --- Response helpers ---

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
