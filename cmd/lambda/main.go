// Command lambda runs the weekly odds post as an AWS Lambda function, the
// way the job is deployed behind an EventBridge schedule.
package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"nfl-odds-bot/internal/config"
	"nfl-odds-bot/internal/engine"
	"nfl-odds-bot/internal/logger"
)

const serviceName = "nfl-odds-bot"

// handler loads configuration fresh for every invocation and returns the
// run's error so the scheduler records the failure.
func handler(ctx context.Context) error {
	cfg := config.Load()
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	lg, err := logger.New(logger.Options{
		Service: serviceName,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
	})
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer lg.Sync()

	eng, err := engine.FromConfig(cfg, lg)
	if err != nil {
		return err
	}

	res, err := eng.Run(ctx)
	if err != nil {
		lg.Error("error in handler", zap.Error(err))
		return err
	}
	lg.Info("handler finished", zap.String("run_id", res.RunID), zap.Int("week", res.Week))
	return nil
}

func main() {
	lambda.Start(handler)
}
