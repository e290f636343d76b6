// Package rest exposes the trade route analysis over HTTP.
package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/everoutes/eve-routes-go/internal/adapters/cache"
	"github.com/everoutes/eve-routes-go/internal/application/common"
	"github.com/everoutes/eve-routes-go/internal/infrastructure/config"
)

// Server is the HTTP front end: parameter validation, result caching and
// rate limiting around the opportunity query.
type Server struct {
	cfg      config.ServerConfig
	trading  config.TradingConfig
	mediator common.Mediator
	cache    *cache.ResultCache
	validate *validator.Validate
	router   *mux.Router
	logger   *zap.Logger
	httpSrv  *http.Server
}

// NewServer creates the API server and wires its routes.
func NewServer(
	cfg config.ServerConfig,
	trading config.TradingConfig,
	m common.Mediator,
	resultCache *cache.ResultCache,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		cfg:      cfg,
		trading:  trading,
		mediator: m,
		cache:    resultCache,
		validate: validator.New(),
		router:   mux.NewRouter(),
		logger:   logger,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/opportunities", s.handleOpportunities).Methods(http.MethodGet)
	api.HandleFunc("/stations", s.handleStations).Methods(http.MethodGet)
	api.HandleFunc("/cache/stats", s.handleCacheStats).Methods(http.MethodGet)
	api.HandleFunc("/cache/clear", s.handleCacheClear).Methods(http.MethodGet)

	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Endpoint not found")
	})
}

// Handler returns the fully wrapped HTTP handler: CORS, request logging
// and per-IP rate limiting around the router.
func (s *Server) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: s.cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	handler := s.rateLimitMiddleware(s.router)
	handler = s.requestLoggingMiddleware(handler)
	return c.Handler(handler)
}

// Start begins serving and blocks until the listener fails or Shutdown is
// called.
func (s *Server) Start() error {
	s.httpSrv = &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.Handler(),
	}

	s.logger.Info("api server starting", zap.String("addr", s.cfg.Addr))
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("api server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
