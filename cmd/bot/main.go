package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"nfl-odds-bot/internal/config"
	"nfl-odds-bot/internal/engine"
	"nfl-odds-bot/internal/logger"
)

const serviceName = "nfl-odds-bot"

func main() {
	cfg := config.Load()

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	lg, err := logger.New(logger.Options{
		Service: serviceName,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
	})
	if err != nil {
		log.Fatalf("Building logger: %v", err)
	}
	defer lg.Sync()

	eng, err := engine.FromConfig(cfg, lg)
	if err != nil {
		lg.Fatal("initializing engine", zap.Error(err))
	}

	// A cron kill should still abort in-flight requests cleanly
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lg.Info("bot started", zap.String("config", cfg.Summary()))

	if _, err := eng.Run(ctx); err != nil {
		lg.Error("run failed", zap.Error(err))
		_ = lg.Sync()
		os.Exit(1)
	}
}
