package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"recordbook/internal/backend"
	"recordbook/internal/cli"
	applog "recordbook/internal/log"
	"recordbook/internal/store"
)

func main() {
	os.Exit(run())
}

func run() int {
	cli.LoadEnvFile()

	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return 1
	}

	logger, err := cli.SetupLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = applog.NewContext(ctx, logger)

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid backend configuration", applog.FieldError, err)
		return 1
	}

	s := store.New()
	res, err := backend.NewFactory(logger).Create(ctx, backendCfg, s)
	if err != nil {
		cli.RenderError(ctx, os.Stderr, err)
		return 1
	}
	defer func() {
		if err := res.Cleanup(); err != nil {
			logger.Warn("Cleanup failed", applog.FieldError, err)
		}
	}()

	app := cli.NewApp(cli.Deps{
		Store:     s,
		Persister: res.Persister,
		Notifier:  res.Notifier,
		ReportDir: cfg.ReportDir,
		Logger:    logger,
	})
	if err := app.LoadAll(ctx); err != nil {
		cli.RenderError(ctx, os.Stderr, err)
		return 1
	}

	if err := cli.NewRootCmd(app).ExecuteContext(ctx); err != nil {
		cli.RenderError(ctx, os.Stderr, err)
		return 1
	}
	return 0
}
