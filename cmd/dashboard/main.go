package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fintech-dashboard/internal/api"
	"fintech-dashboard/internal/config"
	"fintech-dashboard/internal/handlers"
	"fintech-dashboard/internal/middleware"
	"fintech-dashboard/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	client := api.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.RequestTimeout)
	metrics := services.NewPrometheusMetrics()
	resolver := services.NewUserResolver(client, cfg.Upstream)
	controller := services.NewDashboardController(resolver, client, cfg.Upstream, metrics)

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := controller.Start(rootCtx); err != nil {
			slog.Error("dashboard startup load failed, serving degraded state", "error", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Server.RateLimitPerSec, cfg.Server.RateLimitBurst))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
	}))

	dashboardHandler := handlers.NewDashboardHandler(controller)
	healthHandler := handlers.NewHealthCheckHandler(client)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/api/dashboard", dashboardHandler.GetDashboard)
	e.POST("/api/refresh", dashboardHandler.Refresh)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	go func() {
		slog.Info("dashboard server starting",
			"addr", addr,
			"upstream", cfg.Upstream.BaseURL,
			"environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil {
			slog.Info("server stopped", "error", err)
		}
	}()

	<-rootCtx.Done()
	slog.Info("shutting down")

	controller.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
}
