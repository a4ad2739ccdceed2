package grpc

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/tair/disease-surveillance/pkg/logger"
)

// ServiceName is the name the dashboard reports its health under
const ServiceName = "surveillance.dashboard.v1.Dashboard"

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthServer serves the standard gRPC health protocol and keeps it in line with
// database reachability
type HealthServer struct {
	server   *grpc.Server
	health   *health.Server
	pinger   Pinger
	interval time.Duration

	mu      sync.Mutex
	serving bool
}

// NewHealthServer creates a gRPC server with health and reflection services registered
func NewHealthServer(pinger Pinger, interval time.Duration) *HealthServer {
	server := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(LoggingInterceptor),
	)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(server, hs)

	// Register reflection service (for grpcurl and grpc tools)
	reflection.Register(server)

	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &HealthServer{
		server:   server,
		health:   hs,
		pinger:   pinger,
		interval: interval,
	}
}

// Server returns the underlying gRPC server
func (s *HealthServer) Server() *grpc.Server {
	return s.server
}

// Check pings the store once and publishes the result
func (s *HealthServer) Check(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	err := s.pinger.Ping(ctx)
	serving := err == nil

	s.mu.Lock()
	changed := serving != s.serving
	s.serving = serving
	s.mu.Unlock()

	st := healthpb.HealthCheckResponse_SERVING
	if !serving {
		st = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus("", st)
	s.health.SetServingStatus(ServiceName, st)

	if changed {
		if err != nil {
			logger.Warn(ctx).Err(err).Str("status", st.String()).Msg("Health status changed")
		} else {
			logger.Info(ctx).Str("status", st.String()).Msg("Health status changed")
		}
	}
	return serving
}

// Watch re-checks health every interval until ctx is done
func (s *HealthServer) Watch(ctx context.Context) {
	s.Check(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Check(ctx)
		}
	}
}

// Shutdown marks every service as not serving and stops the server gracefully
func (s *HealthServer) Shutdown() {
	s.health.Shutdown()
	s.server.GracefulStop()
}
