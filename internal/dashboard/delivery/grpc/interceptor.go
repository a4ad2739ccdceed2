package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/tair/disease-surveillance/pkg/logger"
)

// LoggingInterceptor logs gRPC requests
func LoggingInterceptor(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (interface{}, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	duration := time.Since(start)
	if err != nil {
		logger.Warn(ctx).
			Str("method", info.FullMethod).
			Str("code", status.Code(err).String()).
			Dur("duration", duration).
			Err(err).
			Msg("gRPC request failed")
	} else {
		logger.Debug(ctx).
			Str("method", info.FullMethod).
			Dur("duration", duration).
			Msg("gRPC request completed")
	}

	return resp, err
}
