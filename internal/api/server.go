package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/sada/internal/api/handlers"
	"github.com/RMahshie/sada/internal/config"
	"github.com/RMahshie/sada/internal/metrics"
	"github.com/RMahshie/sada/internal/processing"
)

// NewRouter builds the chi router with middleware, the huma API and the metrics endpoint
func NewRouter(svc processing.CalculationService, allowedOrigins []string) *chi.Mux {
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(zerologLogger())
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))
	router.Use(metrics.Middleware)

	// Create Huma API, OpenAPI docs served at /api/docs
	humaConfig := huma.DefaultConfig("SADA API", handlers.Version)
	humaConfig.Info.Description = "Fire alarm sounder audibility calculations"
	humaConfig.DocsPath = "/api/docs"
	api := humachi.New(router, humaConfig)

	RegisterRoutes(api, svc)

	router.Handle("/metrics", promhttp.Handler())

	return router
}

// ListenAndServe serves the API on the configured port until ctx is canceled
func ListenAndServe(ctx context.Context, cfg config.ServerConfig, svc processing.CalculationService) error {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewRouter(svc, cfg.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return Serve(ctx, srv, cfg.ShutdownTimeout)
}

// Serve runs srv until ctx is canceled, then shuts it down within shutdownTimeout
func Serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Starting SADA API server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info().Msg("Server exited")
	return nil
}
