package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jexlaindia/app/internal/config"
	"github.com/jexlaindia/app/internal/db"
	"github.com/jexlaindia/app/internal/logger"
)

const connectTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real environment variables win
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.InitLogger(cfg)
	log := logger.GetLogger()
	defer func() {
		_ = logger.Close()
	}()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Infow("Starting JEXLA Group API",
		"environment", cfg.Environment,
		"database", cfg.DBName,
		"cors_origins", cfg.CORSOrigins,
		"mongo_url", logger.MaskConnectionString(cfg.MongoURL),
	)

	connectCtx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	dbClient, err := db.New(connectCtx, cfg.MongoURL, cfg.DBName)
	if err != nil {
		log.Errorw("Failed to connect to MongoDB", "error", err)
		return err
	}
	log.Infow("Connected to MongoDB", "database", dbClient.Name())

	// the API still works without indexes, only slower
	if err := dbClient.CreateIndexes(connectCtx); err != nil {
		log.Warnw("Failed to create indexes", "error", err)
	}

	app, err := newApplication(cfg, log, dbClient)
	if err != nil {
		_ = dbClient.Close(context.Background())
		return err
	}

	ctx, stopServing := context.WithCancel(context.Background())
	defer stopServing()

	// graceful shutdown on SIGINT/SIGTERM
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-stop
		log.Infow("Shutdown signal received", "signal", sig.String())
		stopServing()
	}()

	log.Infow("JEXLA Group API started successfully", "port", cfg.Port, "grpc_port", cfg.GRPCPort)
	return app.serve(ctx)
}
