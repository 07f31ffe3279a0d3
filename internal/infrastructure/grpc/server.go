package grpc

import (
	"context"
	"fmt"
	"net"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/narwhalmedia/catalog/internal/infrastructure/grpc/interceptors"
)

// ServiceName is the health service name reported for the catalog.
const ServiceName = "catalog"

// HealthCheck reports whether the service can do useful work.
type HealthCheck func(ctx context.Context) error

// Server exposes gRPC health and reflection. Health follows the result of
// the probe, polled on an interval.
type Server struct {
	server   *grpc.Server
	health   *health.Server
	probe    HealthCheck
	interval time.Duration
	logger   *zap.Logger
}

// NewServer creates the gRPC server with logging and recovery interceptors.
func NewServer(probe HealthCheck, logger *zap.Logger) *Server {
	logger = logger.Named("grpc")
	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			interceptors.UnaryRecoveryInterceptor(logger),
			interceptors.UnaryLoggingInterceptor(logger),
		),
		grpc.ChainStreamInterceptor(
			interceptors.StreamRecoveryInterceptor(logger),
			interceptors.StreamLoggingInterceptor(logger),
		),
	)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)
	reflection.Register(server)

	return &Server{
		server:   server,
		health:   healthServer,
		probe:    probe,
		interval: 10 * time.Second,
		logger:   logger,
	}
}

// Serve accepts connections on lis until Stop is called or ctx ends.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	s.refresh(ctx)
	go s.watch(ctx)

	s.logger.Info("gRPC server listening", zap.String("addr", lis.Addr().String()))
	if err := s.server.Serve(lis); err != nil {
		return fmt.Errorf("serving gRPC: %w", err)
	}
	return nil
}

// Stop marks the service as not serving and drains in-flight calls.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.server.GracefulStop()
}

func (s *Server) watch(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

func (s *Server) refresh(ctx context.Context) {
	status := healthpb.HealthCheckResponse_SERVING
	if err := s.probe(ctx); err != nil {
		s.logger.Warn("health probe failed", zap.Error(err))
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}
