package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	httpapi "github.com/i474232898/weather-intent-service/internal/api/http"
	"github.com/i474232898/weather-intent-service/internal/config"
	"github.com/i474232898/weather-intent-service/internal/scheduler"
	"github.com/i474232898/weather-intent-service/internal/weather"
	"github.com/i474232898/weather-intent-service/internal/weather/providers"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if cfg.ProviderAPIKey == "" {
		log.Println("INFO: no provider API key configured; metric queries will fail until OWM_API_KEY (or OWA) is set")
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	gateway := providers.NewOpenWeatherGateway(httpClient, cfg.ProviderAPIKey)

	// Core service orchestrating extraction and metric queries.
	service := weather.NewService(gateway)

	// Optional provider availability probe.
	probe := scheduler.New(gateway, cfg.ProbeLocation, cfg.ProbeInterval)
	if err := probe.Start(); err != nil {
		log.Fatalf("failed to start provider probe: %v", err)
	}
	defer probe.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "weather-intent-service",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-intent-service",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service)

	// Static frontend (collaborator only; the API works without it).
	app.Static("/static", cfg.StaticDir)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendFile(filepath.Join(cfg.StaticDir, "index.html"))
	})

	// Start server with graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
