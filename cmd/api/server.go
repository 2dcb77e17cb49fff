package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/jexlaindia/app/internal/config"
	"github.com/jexlaindia/app/internal/data"
	"github.com/jexlaindia/app/internal/handler"
	"github.com/jexlaindia/app/internal/healthrpc"
	"github.com/jexlaindia/app/internal/router"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
)

const (
	shutdownTimeout = 10 * time.Second
	closeTimeout    = 5 * time.Second
)

// store is what the process needs from the database client.
type store interface {
	data.DocumentStore
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// application owns the servers and the store for the lifetime of the process.
type application struct {
	cfg   *config.Config
	log   *zap.SugaredLogger
	store store

	httpServer *http.Server
	grpcServer *grpc.Server // nil when GRPC_PORT is unset
}

// newApplication wires the stores, handlers and servers.
func newApplication(cfg *config.Config, log *zap.SugaredLogger, st store) (*application, error) {
	h := handler.New(data.NewStatusChecksStore(st), data.NewContactMessagesStore(st), st)
	engine := router.SetupRouter(router.Dependencies{
		CORSOrigins: cfg.CORSOrigins,
		Handler:     h,
		Logger:      log,
	})

	app := &application{
		cfg:   cfg,
		log:   log,
		store: st,
		httpServer: &http.Server{
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
	}

	if cfg.GRPCPort != "" {
		var opts []grpc.ServerOption
		if cfg.GRPCTLSEnabled() {
			creds, err := credentials.NewServerTLSFromFile(cfg.TLSCert, cfg.TLSKey)
			if err != nil {
				return nil, fmt.Errorf("failed to load TLS certs: %w", err)
			}
			opts = append(opts, grpc.Creds(creds))
		}
		app.grpcServer = healthrpc.NewGRPCServer(log, st, opts...)
	}

	return app, nil
}

// serve runs the servers until ctx is cancelled or one of them fails, then
// shuts everything down and releases the store.
func (app *application) serve(ctx context.Context) error {
	httpLis, err := net.Listen("tcp", ":"+app.cfg.Port)
	if err != nil {
		_ = app.closeStore()
		return fmt.Errorf("failed to listen on port %s: %w", app.cfg.Port, err)
	}

	errCh := make(chan error, 2)

	go func() {
		app.log.Infow("HTTP server listening", "addr", httpLis.Addr().String())
		if err := app.httpServer.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	if app.grpcServer != nil {
		grpcLis, err := net.Listen("tcp", ":"+app.cfg.GRPCPort)
		if err != nil {
			errCh <- fmt.Errorf("failed to listen on gRPC port %s: %w", app.cfg.GRPCPort, err)
		} else {
			go func() {
				app.log.Infow("gRPC health server listening", "addr", grpcLis.Addr().String(), "tls", app.cfg.GRPCTLSEnabled())
				if err := app.grpcServer.Serve(grpcLis); err != nil {
					errCh <- fmt.Errorf("grpc server: %w", err)
				}
			}()
		}
	}

	var serveErr error
	select {
	case <-ctx.Done():
		app.log.Info("Shutting down server...")
	case serveErr = <-errCh:
		app.log.Errorw("Server failed, shutting down", "error", serveErr)
	}

	return errors.Join(serveErr, app.shutdown())
}

func (app *application) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if err := app.httpServer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	if app.grpcServer != nil {
		app.grpcServer.GracefulStop()
	}
	if err := app.closeStore(); err != nil {
		errs = append(errs, err)
	}

	app.log.Info("Server exited")
	return errors.Join(errs...)
}

func (app *application) closeStore() error {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	if err := app.store.Close(ctx); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	app.log.Info("Database connection closed")
	return nil
}
