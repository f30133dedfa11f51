package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Erudhir101/Tabela-Particular/internal/adapters/cache"
	"github.com/Erudhir101/Tabela-Particular/internal/adapters/pdf"
	"github.com/Erudhir101/Tabela-Particular/internal/adapters/spreadsheet"
	"github.com/Erudhir101/Tabela-Particular/internal/api/handlers"
	"github.com/Erudhir101/Tabela-Particular/internal/api/routes"
	"github.com/Erudhir101/Tabela-Particular/internal/application/services"
	"github.com/Erudhir101/Tabela-Particular/internal/domain/repositories"
	"github.com/Erudhir101/Tabela-Particular/internal/infrastructure/clients/gemini"
	"github.com/Erudhir101/Tabela-Particular/internal/infrastructure/clients/redis"
	"github.com/Erudhir101/Tabela-Particular/internal/infrastructure/clients/sheets"
	"github.com/Erudhir101/Tabela-Particular/internal/infrastructure/observability"
	"github.com/Erudhir101/Tabela-Particular/pkg/config"
	"github.com/Erudhir101/Tabela-Particular/pkg/retry"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Env)
	logger := observability.GetLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			logger.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// The spreadsheet is the system of record; without it nothing works
	if !cfg.GoogleSheets.Configured() {
		logger.Fatal().Msg("Google Sheets credentials are not configured")
	}

	sheetsClient, err := sheets.NewClient(ctx, cfg.GoogleSheets, *logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize Google Sheets client")
	}

	// Redis is optional; without it reads go straight to the Sheets API
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		logger.Warn().Err(err).Msg("Redis unavailable, price list cache disabled")
		redisClient = nil
	} else {
		defer redisClient.Close()
		logger.Info().Msg("Redis client initialized")
	}

	var priceListRepo repositories.PriceListRepository = spreadsheet.NewGoogleAdapter(
		sheetsClient, cfg.GoogleSheets.ReadRange, *logger)
	if redisClient != nil {
		priceListRepo = spreadsheet.NewCachedAdapter(
			priceListRepo,
			cache.NewRedisAdapter(redisClient),
			cfg.GoogleSheets.CacheTTLSeconds,
			*logger,
		)
	}

	// Probe the sheet so credential problems surface at startup, not on the
	// first operator request
	probe := func() error {
		_, err := priceListRepo.GetGrid(ctx)
		return err
	}
	if err := retry.Do(ctx, retry.DefaultConfig(), probe); err != nil {
		logger.Fatal().Err(err).Msg("price list is unreachable")
	}
	logger.Info().Msg("price list reachable")

	priceListService := services.NewPriceListService(priceListRepo, *logger)
	quoteService := services.NewQuoteService(
		priceListService,
		pdf.NewRenderer(),
		cfg.Lab,
		cfg.Pricing.UncoveredPreset,
		*logger,
	)

	// Gemini is optional; without it the analyze endpoint answers 503
	var analysisService *services.AnalysisService
	if cfg.Gemini.APIKey != "" {
		geminiClient, err := gemini.NewClient(&cfg.Gemini)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to initialize Gemini client, order analysis disabled")
		} else {
			analysisService = services.NewAnalysisService(priceListService, geminiClient, *logger)
			logger.Info().Str("model", cfg.Gemini.Model).Msg("Gemini client initialized")
		}
	} else {
		logger.Warn().Msg("GEMINI_API_KEY not set, order analysis disabled")
	}

	router := routes.NewRouter(
		handlers.NewPriceListHandler(priceListService),
		handlers.NewQuoteHandler(quoteService),
		handlers.NewAnalyzeHandler(analysisService),
		metrics,
	)
	handler := router.SetupRoutes()

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("error during server shutdown")
	}

	logger.Info().Msg("server stopped")
}
