package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/vancomm/pyrat/internal/app"
	"github.com/vancomm/pyrat/internal/config"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "game config file path")
	flag.StringVar(&configPath, "c", "", "game config file path (shorthand)")
	flag.Parse()

	envErr := godotenv.Load()

	var handler slog.Handler = slog.NewJSONHandler(os.Stderr, nil)
	if config.Development() {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level: slog.LevelDebug,
		})
	}
	logger := slog.New(handler)
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		logger.Error("failed to load .env", slog.Any("error", envErr))
		os.Exit(1)
	}

	game, err := config.ReadGame(configPath)
	if err != nil {
		logger.Error("failed to read game config", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a := app.New(logger, game)
	if err := a.Start(ctx); err != nil {
		logger.Error("failed to start app", slog.Any("error", err))
		os.Exit(1)
	}
}
