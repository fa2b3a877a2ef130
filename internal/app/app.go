package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/pyrat/internal/config"
	"github.com/vancomm/pyrat/internal/database"
	"github.com/vancomm/pyrat/internal/middleware"
	"github.com/vancomm/pyrat/internal/repository"
	"github.com/vancomm/pyrat/internal/session"
	"github.com/vancomm/pyrat/internal/store"
)

type App struct {
	logger *slog.Logger
	router *http.ServeMux
	game   config.Game
	store  session.Store
	ws     *config.WebSocket
}

func New(logger *slog.Logger, game config.Game) *App {
	return &App{
		logger: logger,
		router: http.NewServeMux(),
		game:   game,
	}
}

// openStore connects the session backend chosen by the environment. The
// returned closer releases it.
func (a *App) openStore(ctx context.Context) (session.Store, io.Closer, error) {
	switch config.SessionStorage() {
	case config.PostgresStorage:
		db, err := database.ConnectAndMigrate(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to connect to db: %w", err)
		}
		a.logger.Info("storing sessions in postgres")
		return repository.New(db), closerFunc(db.Close), nil
	case config.SQLiteStorage:
		db, err := store.Open(config.SQLitePath())
		if err != nil {
			return nil, nil, err
		}
		s, err := store.NewSessionStore(ctx, db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		a.logger.Info("storing sessions in sqlite", slog.String("path", config.SQLitePath()))
		return s, db, nil
	}
	a.logger.Info("storing sessions in memory")
	return session.NewMemoryStore(), closerFunc(func() {}), nil
}

type closerFunc func()

func (f closerFunc) Close() error {
	f()
	return nil
}

func (a *App) Start(ctx context.Context) error {
	st, closer, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer closer.Close()

	a.store = st
	a.ws = config.NewWebSocket()
	a.loadRoutes()

	addr := config.Addr()
	server := &http.Server{
		Addr: addr,
		Handler: middleware.Wrap(
			a.router,
			middleware.Logging(a.logger),
			middleware.Cors(),
		),
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("server listening", slog.String("addr", addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("unable to listen and serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout())
		defer cancel()
		a.logger.Info("shutting down")
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
