package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/lmittmann/tint"

	"github.com/vancomm/pyrat/internal/config"
	"github.com/vancomm/pyrat/internal/database"
)

func main() {
	down := flag.Int("down", 0, "roll back this many migrations instead of migrating up")
	flag.Parse()

	var logger *slog.Logger
	if config.Development() {
		logger = slog.New(tint.NewHandler(os.Stderr, nil))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}

	url, err := config.DbURL()
	if err != nil {
		logger.Error("failed to read db config", slog.Any("error", err))
		os.Exit(1)
	}

	if *down > 0 {
		err = database.Rollback(url, *down)
	} else {
		err = database.Migrate(url)
	}
	if err != nil {
		logger.Error("failed to migrate", slog.Any("error", err))
		os.Exit(1)
	}

	version, dirty, err := database.Version(url)
	if errors.Is(err, migrate.ErrNilVersion) {
		logger.Info("migration successful, no schema left")
		return
	} else if err != nil {
		logger.Error("failed to check migration version", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("migration successful", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
}
