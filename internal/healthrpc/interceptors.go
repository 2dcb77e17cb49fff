package healthrpc

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// requestIDKey is the metadata key a caller may use to correlate logs.
const requestIDKey = "x-request-id"

// LoggingUnaryInterceptor logs every unary call with its status code and duration.
func LoggingUnaryInterceptor(log *zap.SugaredLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		fields := []any{
			"method", info.FullMethod,
			"code", status.Code(err).String(),
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if ids := md.Get(requestIDKey); len(ids) > 0 {
				fields = append(fields, "request_id", ids[0])
			}
		}

		if err != nil {
			log.Warnw("grpc call failed", append(fields, "error", err)...)
			return resp, err
		}
		log.Infow("grpc call", fields...)
		return resp, nil
	}
}

// NewGRPCServer builds a gRPC server with the health service registered and
// every unary call logged. Extra options (credentials) are appended.
func NewGRPCServer(log *zap.SugaredLogger, db Pinger, opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(LoggingUnaryInterceptor(log)))
	s := grpc.NewServer(opts...)
	Register(s, NewServer(log, db))
	return s
}
