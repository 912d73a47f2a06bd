package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/heartmarshall/marketing-studio/internal/adapter/collection"
	"github.com/heartmarshall/marketing-studio/internal/auth"
	"github.com/heartmarshall/marketing-studio/internal/config"
	"github.com/heartmarshall/marketing-studio/internal/domain"
	"github.com/heartmarshall/marketing-studio/internal/generation"
	"github.com/heartmarshall/marketing-studio/internal/metrics"
	"github.com/heartmarshall/marketing-studio/internal/service/analytics"
	"github.com/heartmarshall/marketing-studio/internal/service/clients"
	"github.com/heartmarshall/marketing-studio/internal/service/history"
	"github.com/heartmarshall/marketing-studio/internal/service/studio"
	"github.com/heartmarshall/marketing-studio/internal/transport/middleware"
	"github.com/heartmarshall/marketing-studio/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, opens the
// configured store, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage_driver", cfg.Storage.NormalizedDriver()),
		slog.String("llm_provider", cfg.LLM.Provider),
	)

	// 1. Storage.
	store, closeStore, err := OpenStore(ctx, cfg.Storage, logger)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer closeStore()

	// 2. Metrics.
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	// 3. Providers and generation client.
	textGen, imageGen, err := newGenerators(cfg.LLM, cfg.Image, logger)
	if err != nil {
		return err
	}
	genClient := generation.NewClient(logger, textGen, imageGen, m, cfg.Image.MIMEType)

	// 4. Services.
	historyService := history.NewService(logger, collection.New[domain.HistoryItem](store, domain.KeyHistory), m)
	historyService.Load(ctx)

	clientService := clients.NewService(logger, collection.New[domain.Client](store, domain.KeyClients), m)
	clientService.Load(ctx)

	analyticsService := analytics.NewService(logger, historyService, clientService)

	studioService := studio.NewService(logger, genClient, historyService, studio.Config{
		MinImagePromptLength: cfg.Studio.MinImagePromptLength,
		TwitterCharLimit:     cfg.Studio.TwitterCharLimit,
	})

	// 5. Transport.
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer rateLimiter.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Health:    rest.NewHealthHandler(store, BuildVersion()),
		Generate:  rest.NewGenerateHandler(studioService, logger),
		History:   rest.NewHistoryHandler(historyService, logger),
		Clients:   rest.NewClientsHandler(clientService, cfg.Server.MaxUploadBytes, logger),
		Analytics: rest.NewAnalyticsHandler(analyticsService, logger),
		Metrics:   m.Handler(),
		Middleware: []middleware.Middleware{
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CORS(cfg.CORS),
			middleware.Metrics(m),
		},
		// Probes stay out of the access log; Auth runs first so the log
		// carries the caller.
		APIMiddleware: []middleware.Middleware{
			middleware.Auth(jwtManager, cfg.Auth.Required),
			middleware.Logger(logger),
		},
		GenerateLimit: rateLimiter.Limit(cfg.RateLimit.GeneratePerMinute),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("http server stopped")
	return nil
}
