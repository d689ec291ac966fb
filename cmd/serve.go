package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/budde25/partydj/internal/repositories"
	"github.com/budde25/partydj/internal/rooms"
	"github.com/budde25/partydj/internal/server"
	"github.com/budde25/partydj/internal/services"
	"github.com/budde25/partydj/internal/shared"
	"github.com/go-redis/redis"
	"github.com/urfave/cli/v3"
)

// Serve starts the HTTP server and blocks until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	store, cleanup, err := r.openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	factory := services.NewSpotifyFactory(r.config.Spotify.BaseURL, r.config.Spotify.RateLimit)
	engine := rooms.NewEngine(store, factory, r.logger, rooms.Options{
		CodeLength:     r.config.Rooms.CodeLength,
		PlaylistPrefix: r.config.Rooms.PlaylistPrefix,
	})

	router := server.NewBasicRouter()
	router.Use(server.RequestID(), server.Logging(r.logger))
	router.Handler(server.NewRoomsHandler(engine, r.logger))
	router.Handler(server.NewHealthHandler(version))

	addr := fmt.Sprintf("%s:%d", r.config.Server.Host, r.config.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info("listening", "addr", addr, "store", r.config.Store.Backend)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		r.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// openStore builds the configured room store backend and returns a
// cleanup function closing its connection.
func (r *Runner) openStore() (repositories.RoomStore, func(), error) {
	switch r.config.Store.Backend {
	case "", "sqlite":
		db, err := shared.NewDatabase(r.config.Store.SQLite.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", shared.ErrStoreUnavailable, err)
		}
		shared.ConfigureDatabase(db, r.config.Store.SQLite.MaxOpenConns, r.config.Store.SQLite.MaxIdleConns)

		if err := shared.RunMigrations(db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("%w: %v", shared.ErrStoreUnavailable, err)
		}

		return repositories.NewSQLiteStore(db), func() { db.Close() }, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     r.config.Store.Redis.Addr,
			Password: r.config.Store.Redis.Password,
			DB:       r.config.Store.Redis.DB,
		})
		if err := client.Ping().Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("%w: %v", shared.ErrStoreUnavailable, err)
		}

		return repositories.NewRedisStore(client), func() { client.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("%w: unknown store backend %q", shared.ErrInvalidConfig, r.config.Store.Backend)
	}
}

func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Run the room service HTTP server",
		Action: r.Serve,
	}
}
