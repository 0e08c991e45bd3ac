package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"hmrc-rates/internal/adapters/ratesource"
	portsrepo "hmrc-rates/internal/core/ports/repositories"
	portssvc "hmrc-rates/internal/core/ports/services"
	"hmrc-rates/internal/core/services"
	"hmrc-rates/internal/handlers"
	"hmrc-rates/internal/middleware"
	"hmrc-rates/internal/platform/config"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Pick the rate document source: a configured directory overrides the
	// bundle compiled into the binary.
	var source portsrepo.RateDocumentSource = ratesource.Embedded{}
	if cfg.RatesDataDir != "" {
		source = ratesource.Dir{Path: cfg.RatesDataDir}
		logger.Info("Loading rate documents from directory", slog.String("dir", cfg.RatesDataDir))
	}

	converter, err := services.NewConverterServiceFromSource(source)
	if err != nil {
		logger.Error("Failed to build rate table", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Rate table loaded", slog.Int("periods", len(converter.Periods(context.Background()))))

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(corsMiddleware(cfg))
	r.Use(rateLimitMiddleware(cfg, logger))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	svcContainer := &portssvc.ServiceContainer{Converter: converter}
	handlers.RegisterRoutes(r, cfg, svcContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	if cfg.CORSAllowOrigins == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = strings.Split(cfg.CORSAllowOrigins, ",")
	}
	return cors.New(corsCfg)
}

func rateLimitMiddleware(cfg *config.Config, logger *slog.Logger) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Warn("Invalid RATE_LIMIT value, defaulting to 100-M", slog.String("value", cfg.RateLimit))
		rate, _ = limiter.NewRateFromFormatted("100-M")
	}
	return middleware.RateLimit(limiter.New(memory.NewStore(), rate))
}
