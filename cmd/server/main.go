package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adrianliechti/text2speech/config"
	"github.com/adrianliechti/text2speech/pkg/logger"
	"github.com/adrianliechti/text2speech/pkg/otel"
	"github.com/adrianliechti/text2speech/server"
)

var version = "dev"

func main() {
	configFlag := flag.String("config", "config.yaml", "config file")
	addressFlag := flag.String("address", "", "listen address, overrides config")
	logFileFlag := flag.String("log-file", "", "write JSON logs to this file")

	flag.Parse()

	level := slog.LevelInfo

	if otel.EnableDebug {
		level = slog.LevelDebug
	}

	slog.SetDefault(logger.New(
		logger.WithLevel(level),
		logger.WithLogToFile(*logFileFlag != ""),
		logger.WithLogFile(*logFileFlag),
	))

	if err := run(*configFlag, *addressFlag); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(path, address string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdown, err := otel.Setup(ctx, "text2speech", version)

	if err != nil {
		return err
	}

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := shutdown(ctx); err != nil {
			slog.Error("telemetry shutdown failed", "error", err)
		}
	}()

	cfg, err := config.Parse(path)

	if err != nil {
		return err
	}

	if address != "" {
		cfg.Address = address
	}

	s, err := server.New(cfg)

	if err != nil {
		return err
	}

	return s.ListenAndServe(ctx)
}
