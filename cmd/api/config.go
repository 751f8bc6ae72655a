package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type config struct {
	Addr               string
	ResponseDelay      time.Duration
	SeedFile           string
	MaxBodyBytes       int64
	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
}

func loadEnvFiles() {
	// Do not override environment provided by the runtime (e.g. Docker).
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func loadConfig() (config, error) {
	cfg := config{
		Addr:     getEnv("APP_ADDR", ":3000"),
		SeedFile: os.Getenv("SEED_FILE"),
	}

	var err error
	if cfg.ResponseDelay, err = time.ParseDuration(getEnv("RESPONSE_DELAY", "500ms")); err != nil {
		return config{}, fmt.Errorf("RESPONSE_DELAY: %w", err)
	}
	if cfg.ResponseDelay <= 0 {
		return config{}, fmt.Errorf("RESPONSE_DELAY must be positive, got %s", cfg.ResponseDelay)
	}
	if cfg.MaxBodyBytes, err = strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64); err != nil {
		return config{}, fmt.Errorf("MAX_BODY_BYTES: %w", err)
	}
	if cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "0"), 64); err != nil {
		return config{}, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "1")); err != nil {
		return config{}, fmt.Errorf("RATE_LIMIT_BURST: %w", err)
	}

	for _, origin := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}
	return cfg, nil
}

// writeTimeout leaves room for the delayed endpoints to answer.
func (c config) writeTimeout() time.Duration {
	return c.ResponseDelay + 10*time.Second
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
