// Package config loads the service settings from the environment. Values in
// .env.development or .env are loaded first when those files exist.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/seo-optimizer/blogseo/meta"
)

// Config holds all runtime configuration for the service.
type Config struct {
	Port           string
	GinMode        string
	DataDir        string
	DevMode        bool
	RateLimitRPS   float64
	RateLimitBurst float64
	Site           meta.Site
}

// LoadEnvFiles loads .env.development, falling back to .env. It reports
// whether a file was found.
func LoadEnvFiles() bool {
	if err := godotenv.Load(".env.development"); err == nil {
		return true
	}
	return godotenv.Load() == nil
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	cfg := &Config{
		Port:    getEnv("PORT", "8082"),
		GinMode: getEnv("GIN_MODE", gin.ReleaseMode),
		DataDir: getEnv("DATA_DIR", "./data"),
		DevMode: os.Getenv("DEV_MODE") == "true",
		Site: meta.Site{
			Name:         getEnv("SITE_NAME", "LikhoVerse"),
			Origin:       getEnv("SITE_ORIGIN", "http://localhost:5173"),
			APIURL:       getEnv("API_URL", "http://localhost:8082"),
			DefaultImage: getEnv("SITE_DEFAULT_IMAGE", "/LikhoVerse.png"),
			Description:  getEnv("SITE_DESCRIPTION", "A platform for insightful blogs, articles, and knowledge sharing."),
		},
	}

	var err error
	if cfg.RateLimitRPS, err = getFloat("RATE_LIMIT_RPS", 10); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getFloat("RATE_LIMIT_BURST", 20); err != nil {
		return nil, err
	}

	switch cfg.GinMode {
	case gin.ReleaseMode, gin.DebugMode, gin.TestMode:
	default:
		return nil, fmt.Errorf("GIN_MODE must be one of %s, %s, %s; got %q",
			gin.ReleaseMode, gin.DebugMode, gin.TestMode, cfg.GinMode)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q: %w", key, v, err)
	}
	if f <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %v", key, f)
	}
	return f, nil
}
