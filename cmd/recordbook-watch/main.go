package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"recordbook/internal/amqp"
	"recordbook/internal/cli"
	applog "recordbook/internal/log"
	"recordbook/internal/worker"
)

func main() {
	cli.LoadEnvFile()

	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		applog.New(applog.DefaultConfig()).Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}
	logger, err := cli.SetupLogger(cfg)
	if err != nil {
		applog.New(applog.DefaultConfig()).Error("Logger setup failed", applog.FieldError, err)
		os.Exit(1)
	}

	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required to watch change events")
		os.Exit(1)
	}

	client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", applog.FieldError, err)
		os.Exit(1)
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Watching change events", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)

	watcher := worker.NewChangeWatcher(os.Stdout, logger)
	if err := client.ConsumeChanges(ctx, logger, watcher.HandleChange); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Consumer stopped", applog.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Watcher stopped")
}
