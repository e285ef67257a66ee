package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/seo-optimizer/blogseo/analyzer"
	"github.com/seo-optimizer/blogseo/api"
	"github.com/seo-optimizer/blogseo/config"
	"github.com/seo-optimizer/blogseo/logging"
	"github.com/seo-optimizer/blogseo/middleware"
)

func main() {
	foundEnv := config.LoadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		logging.NewLogger("main", false).Error("invalid configuration", logging.F("error", err))
		os.Exit(1)
	}

	gin.SetMode(cfg.GinMode)
	logger := logging.NewLogger("main", cfg.GinMode == gin.DebugMode)
	if !foundEnv {
		logger.Info("No .env file found, using environment variables")
	}

	seoAnalyzer, err := analyzer.New(cfg.DataDir, logger)
	if err != nil {
		logger.Error("failed to initialize analyzer", logging.F("error", err))
		os.Exit(1)
	}

	stats, err := logging.NewStatistics(filepath.Join(cfg.DataDir, "statistics.json"), cfg.DevMode)
	if err != nil {
		logger.Warn("could not load existing statistics", logging.F("error", err))
		stats, _ = logging.NewStatistics("", cfg.DevMode)
	}

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	server := api.NewServer(api.Options{
		Analyzer:    seoAnalyzer,
		Site:        cfg.Site,
		Statistics:  stats,
		RateLimiter: rateLimiter,
		Logger:      logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := rateLimiter.Prune(time.Hour); n > 0 {
					logger.Debug("pruned idle rate limit buckets", logging.F("count", n))
				}
				seoAnalyzer.GetStats().Cleanup(12)
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		logger.Info("server starting", logging.F("addr", "http://localhost:"+cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to start server", logging.F("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", logging.F("error", err))
	}
	if err := stats.Save(); err != nil {
		logger.Warn("failed to save statistics", logging.F("error", err))
	}
	if err := seoAnalyzer.Shutdown(); err != nil {
		logger.Error("analyzer shutdown failed", logging.F("error", err))
	}
}
