package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/net/netutil"

	"simpleprofiler/internal/cache"
	"simpleprofiler/internal/config"
	"simpleprofiler/internal/handler"
	custommiddleware "simpleprofiler/internal/middleware"
	"simpleprofiler/internal/profiler"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(ctx, logger); err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := profiler.NewStore(cfg.Profiler.MaxRetained)
	if err != nil {
		return fmt.Errorf("failed to create metrics store: %w", err)
	}

	clock := profiler.NewClock()

	profilerCfg := profiler.Config{
		EnableByDefault: cfg.Profiler.EnableByDefault,
		QueryParam:      cfg.Profiler.QueryParam,
		EnvOverride:     cfg.Profiler.Enabled,
	}
	logger.Info("profiler configured",
		slog.Bool("enable_by_default", profilerCfg.EnableByDefault),
		slog.Bool("env_override", profilerCfg.EnvOverride),
		slog.String("query_param", profilerCfg.QueryParam),
		slog.Int("max_retained", cfg.Profiler.MaxRetained),
		slog.Bool("cpu_time", clock.CPUSupported()))

	itemCache, err := cache.New(cfg.Cache.MaxEntries)
	if err != nil {
		return fmt.Errorf("failed to create item cache: %w", err)
	}
	defer itemCache.Close()

	e := echo.New()
	e.HideBanner = true
	// The profiler wraps everything, including the recover middleware, so
	// panicking handlers are recorded with a 500 before being absorbed.
	e.Use(custommiddleware.Profiler(profilerCfg, store, clock, logger))
	e.Use(echomiddleware.Recover())
	e.Use(custommiddleware.RateLimit(&cfg.RateLimit, logger))

	handler.NewDemo(itemCache, logger).Register(e)
	handler.NewProfiler(store).Register(e)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting HTTP server",
		slog.String("addr", addr),
		slog.Int("max_connections", cfg.Server.MaxConnections))

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}
	if cfg.Server.MaxConnections > 0 {
		listener = netutil.LimitListener(listener, cfg.Server.MaxConnections)
	}

	server := &http.Server{
		Handler:        e,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 14, // 16KB
	}

	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}
