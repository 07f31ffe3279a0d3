package interceptors

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Health probes arrive every few seconds and are only logged at debug level.
const healthService = "/grpc.health.v1.Health/"

func levelFor(method string, err error) zapcore.Level {
	switch {
	case err != nil:
		return zapcore.WarnLevel
	case strings.HasPrefix(method, healthService):
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}

func codeOf(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	if s, ok := status.FromError(err); ok {
		return s.Code()
	}
	return codes.Unknown
}

// UnaryLoggingInterceptor logs unary RPC calls
func UnaryLoggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		if ce := logger.Check(levelFor(info.FullMethod, err), "grpc request"); ce != nil {
			ce.Write(
				zap.String("method", info.FullMethod),
				zap.Duration("duration", time.Since(start)),
				zap.String("code", codeOf(err).String()),
				zap.Error(err),
			)
		}
		return resp, err
	}
}

// StreamLoggingInterceptor logs streaming RPC calls when they end
func StreamLoggingInterceptor(logger *zap.Logger) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		err := handler(srv, ss)

		if ce := logger.Check(levelFor(info.FullMethod, err), "grpc stream"); ce != nil {
			ce.Write(
				zap.String("method", info.FullMethod),
				zap.Duration("duration", time.Since(start)),
				zap.String("code", codeOf(err).String()),
				zap.Error(err),
			)
		}
		return err
	}
}
