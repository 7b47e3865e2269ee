package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/windfall/lingua_service/internal/config"
	httphandler "github.com/windfall/lingua_service/internal/handler/http"
	"github.com/windfall/lingua_service/internal/middleware"
	"github.com/windfall/lingua_service/pkg/models"
	"github.com/windfall/lingua_service/pkg/response"
)

// FunctionsPrefix is the mount point of the analysis functions.
const FunctionsPrefix = "/functions/v1"

// HTTPServer represents the HTTP server.
type HTTPServer struct {
	server *http.Server
	log    zerolog.Logger
}

// NewHTTPServer creates a new HTTP server. A nil validator leaves the function
// routes public.
func NewHTTPServer(
	cfg *config.Config,
	log zerolog.Logger,
	healthHandler *httphandler.HealthHandler,
	functionsHandler *httphandler.FunctionsHandler,
	validator middleware.TokenValidator,
) *HTTPServer {
	server := &http.Server{
		Addr:         cfg.HTTPAddress(),
		Handler:      NewRouter(cfg, log, healthHandler, functionsHandler, validator),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &HTTPServer{
		server: server,
		log:    log,
	}
}

// NewRouter builds the chi router serving health checks and the functions.
func NewRouter(
	cfg *config.Config,
	log zerolog.Logger,
	healthHandler *httphandler.HealthHandler,
	functionsHandler *httphandler.FunctionsHandler,
	validator middleware.TokenValidator,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))

	// CORS; preflights still reach FunctionsHandler.Preflight.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:     cfg.CORSAllowedOrigins,
		AllowedMethods:     cfg.CORSAllowedMethods,
		AllowedHeaders:     cfg.CORSAllowedHeaders,
		AllowCredentials:   false,
		MaxAge:             300,
		OptionsPassthrough: true,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	// Health endpoints (public)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)
	r.Get("/live", healthHandler.Live)

	r.Route(FunctionsPrefix, func(r chi.Router) {
		if validator != nil {
			r.Use(middleware.Auth(validator))
		}

		routes := map[string]http.HandlerFunc{
			models.FunctionCheckGrammar:         functionsHandler.CheckGrammar,
			models.FunctionAnalyzePronunciation: functionsHandler.AnalyzePronunciation,
			models.FunctionLookupWord:           functionsHandler.LookupWord,
		}
		for name, handler := range routes {
			r.Post("/"+name, handler)
			r.Options("/"+name, functionsHandler.Preflight)
		}
	})

	return r
}

// Start starts the HTTP server.
func (s *HTTPServer) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("Starting HTTP server")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
