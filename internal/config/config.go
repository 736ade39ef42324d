package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// ProviderAPIKey authenticates against OpenWeatherMap. Read from
	// OWM_API_KEY with OWA as a legacy fallback alias. An empty key is a
	// valid startup state; queries fail per call instead.
	ProviderAPIKey string

	// HTTPTimeout bounds each outbound provider request.
	HTTPTimeout time.Duration

	// Provider availability probe; disabled when ProbeLocation is empty.
	ProbeInterval time.Duration
	ProbeLocation string

	// StaticDir holds the frontend files served at /.
	StaticDir string

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.ProviderAPIKey = os.Getenv("OWM_API_KEY")
	if cfg.ProviderAPIKey == "" {
		cfg.ProviderAPIKey = os.Getenv("OWA")
	}

	timeoutStr := getenvDefault("PROVIDER_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PROVIDER_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	probeStr := getenvDefault("PROBE_INTERVAL", "15m")
	probeInterval, err := time.ParseDuration(probeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PROBE_INTERVAL: %w", err)
	}
	cfg.ProbeInterval = probeInterval
	cfg.ProbeLocation = os.Getenv("PROBE_LOCATION")

	cfg.StaticDir = getenvDefault("STATIC_DIR", "./web")
	cfg.Port = getenvDefault("PORT", "8000")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
