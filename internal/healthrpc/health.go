// Package healthrpc serves the standard gRPC health checking protocol,
// reporting SERVING while the database answers a ping.
package healthrpc

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// ServiceName is the service name clients may ask about besides "".
const ServiceName = "jexla.api.v1.API"

const pingTimeout = 2 * time.Second

// Pinger checks the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server implements grpc.health.v1.Health. Watch and List are left to the
// embedded unimplemented server.
type Server struct {
	healthpb.UnimplementedHealthServer

	log *zap.SugaredLogger
	db  Pinger
}

// NewServer returns a health Server backed by db.
func NewServer(log *zap.SugaredLogger, db Pinger) *Server {
	return &Server{log: log, db: db}
}

// Register registers srv on the given gRPC server.
func Register(s *grpc.Server, srv *Server) {
	healthpb.RegisterHealthServer(s, srv)
}

// Check reports SERVING when the database answers and NOT_SERVING otherwise.
func (s *Server) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	if svc := req.GetService(); svc != "" && svc != ServiceName {
		return nil, status.Errorf(codes.NotFound, "unknown service %q", svc)
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := s.db.Ping(ctx); err != nil {
		s.log.Warnw("Database ping failed", "error", err)
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
	}
	return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}, nil
}
