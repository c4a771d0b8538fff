package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/Roop3005/path-darshak/internal/cli"
	"github.com/Roop3005/path-darshak/internal/config"
	"github.com/Roop3005/path-darshak/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LoggingOptions(), os.Stderr)
	if err != nil {
		return err
	}
	if s, ok := log.(interface{ Sync() error }); ok {
		defer func() { _ = s.Sync() }()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Error(ctx, "close store", "error", err)
		}
	}()

	app.Run(ctx)
	return nil
}
