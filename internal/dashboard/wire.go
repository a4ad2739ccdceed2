//go:build wireinject
// +build wireinject

package dashboard

import (
	"time"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/tair/disease-surveillance/internal/dashboard/delivery/grpc"
	"github.com/tair/disease-surveillance/internal/dashboard/delivery/http"
	"github.com/tair/disease-surveillance/internal/dashboard/repository"
	"github.com/tair/disease-surveillance/pkg/auth"
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, validator *auth.Validator, reg prometheus.Registerer) (*http.DashboardHandler, error) {
	wire.Build(HTTPSet)
	return nil, nil
}

// InitializeHealthServer initializes the gRPC health server
func InitializeHealthServer(db *gorm.DB, interval time.Duration) (*grpc.HealthServer, error) {
	wire.Build(
		ProvideGormStore,
		wire.Bind(new(grpc.Pinger), new(*repository.GormCountStore)),
		grpc.NewHealthServer,
	)
	return nil, nil
}
