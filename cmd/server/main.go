package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mkarpov/metricserve/internal/app/server/archive"
	"github.com/mkarpov/metricserve/internal/app/server/config"
	"github.com/mkarpov/metricserve/internal/app/server/handlers"
	"github.com/mkarpov/metricserve/internal/app/server/metrics"
	"github.com/mkarpov/metricserve/internal/app/server/middleware"
	"github.com/mkarpov/metricserve/internal/app/server/render"
	"github.com/mkarpov/metricserve/internal/app/server/vmstats"
	"github.com/mkarpov/metricserve/internal/pkg/buildinfo"
)

var buildVersion string
var buildDate string
var buildCommit string

func printBuildInfo() {
	buildinfo.Print(buildVersion, buildDate, buildCommit)
}

// newRegistry creates the server's own instruments so the endpoint has
// live data from the first request.
func newRegistry() (*metrics.Registry, metrics.Timer, metrics.Counter) {
	registry := metrics.NewRegistry()

	requests := metrics.NewTimer()
	inflight := metrics.NewCounter()
	registry.MustRegister("http.requests", requests)
	registry.MustRegister("http.inflight", inflight)
	registry.MustRegister("runtime.goroutines", metrics.NewGaugeFunc(func() float64 {
		return float64(runtime.NumGoroutine())
	}))
	registry.MustRegister("runtime.heap_alloc", metrics.NewGaugeFunc(func() float64 {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		return float64(ms.HeapAlloc)
	}))

	return registry, requests, inflight
}

func setupServer(logger *logrus.Logger, cfg *config.Config) (*http.Server, *render.Serializer, error) {
	unit, err := render.ParseDurationUnit(cfg.DurationUnit)
	if err != nil {
		return nil, nil, err
	}

	registry, requests, inflight := newRegistry()
	vm := vmstats.NewProvider()
	serializer := render.NewSerializer(registry, func() any { return vm.Collect() }, logger, unit, cfg.ShowVMMetrics)

	handler := handlers.NewHandler(serializer)

	router := gin.New()
	router.Use(
		middleware.GzipMiddleware(),
		gin.Recovery(),
		middleware.LoggingMiddleware(logger),
		middleware.InstrumentMiddleware(requests, inflight),
	)
	handler.SetupRoutes(router)

	return &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
	}, serializer, nil
}

func main() {
	printBuildInfo()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg := config.NewConfig()
	srv, serializer, err := setupServer(logger, cfg)
	if err != nil {
		logger.Fatal(err)
	}

	var archiver *archive.Archiver
	if cfg.DatabaseDSN != "" && cfg.ArchiveInterval > 0 {
		archiver, err = archive.New(context.Background(), cfg.DatabaseDSN, serializer, cfg.ArchiveInterval, logger)
		if err != nil {
			logger.Fatalf("Failed to set up snapshot archiver: %v", err)
		}
		go archiver.Run()
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server shutdown error: %v", err)
	}

	if archiver != nil {
		if err := archiver.Shutdown(); err != nil {
			logger.Errorf("Failed to archive final snapshot during shutdown: %v", err)
		}
	}

	logger.Info("Server stopped gracefully")
}
