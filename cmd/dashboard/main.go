package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tair/disease-surveillance/internal/config"
	"github.com/tair/disease-surveillance/internal/dashboard"
	grpcDelivery "github.com/tair/disease-surveillance/internal/dashboard/delivery/grpc"
	httpDelivery "github.com/tair/disease-surveillance/internal/dashboard/delivery/http"
	"github.com/tair/disease-surveillance/internal/dashboard/repository"
	"github.com/tair/disease-surveillance/pkg/auth"
	"github.com/tair/disease-surveillance/pkg/database"
	"github.com/tair/disease-surveillance/pkg/logger"
	"github.com/tair/disease-surveillance/pkg/tracing"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Invalid configuration")
	}

	tp, err := tracing.InitTracer(cfg.Tracing)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to initialize tracer, continuing without export")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shut down tracer")
			}
		}()
	}

	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	if cfg.AutoMigrate {
		if err := repository.NewGormCountStore(db).AutoMigrate(); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
		}
		logger.Logger.Info().Msg("Database schema migrated")
	}

	dashboardHandler, err := dashboard.InitializeHTTPHandler(db, auth.NewValidator(cfg.JWTSecret), prometheus.DefaultRegisterer)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize HTTP handler")
	}

	healthServer, err := dashboard.InitializeHealthServer(db, 15*time.Second)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize gRPC health server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpServer := newHTTPServer(cfg, dashboardHandler)
	go func() {
		logger.Logger.Info().Str("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	go healthServer.Watch(ctx)
	go startGRPCServer(healthServer, cfg.GRPCPort)

	<-ctx.Done()
	logger.Logger.Info().Msg("Shutting down servers...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}
	healthServer.Shutdown()
}

func newHTTPServer(cfg *config.Config, dashboardHandler *httpDelivery.DashboardHandler) *http.Server {
	router := mux.NewRouter()

	middlewareConfig := httpDelivery.DefaultMiddlewareConfig(cfg.RequestTimeout, cfg.CORSOrigins)
	httpDelivery.RegisterMiddlewares(router, middlewareConfig)

	dashboardHandler.RegisterRoutes(router)
	dashboardHandler.RegisterHealthCheck(router)
	httpDelivery.NewLocationHandler().RegisterRoutes(router)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           httpDelivery.SetupCORS(middlewareConfig)(router),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
	}
}

func startGRPCServer(healthServer *grpcDelivery.HealthServer, port string) {
	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		logger.Logger.Fatal().Err(err).Str("port", port).Msg("Failed to listen")
	}

	logger.Logger.Info().Str("port", port).Msg("gRPC health server starting")
	if err := healthServer.Server().Serve(lis); err != nil {
		logger.Logger.Error().Err(err).Msg("gRPC server stopped")
		os.Exit(1)
	}
}
