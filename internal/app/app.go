// Package app wires configuration, logging, the paste client, the history
// store and the action router into one unit shared by the CLI and the agent.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"github.com/sharepad/sharepad/internal/config"
	"github.com/sharepad/sharepad/internal/dispatch"
	"github.com/sharepad/sharepad/internal/history"
	"github.com/sharepad/sharepad/internal/logging"
	"github.com/sharepad/sharepad/internal/pastebin"
)

// captureLimit bounds the log lines retained for the getLogs action.
const captureLimit = 200

// App owns every long-lived component.
type App struct {
	Config  *config.Config
	Log     logging.Logger
	Capture *logging.CaptureHandler
	Client  *pastebin.Client
	Store   history.Store
	Router  *dispatch.Router
}

// New builds the application from cfg. notify may be nil.
func New(ctx context.Context, cfg *config.Config, notify dispatch.Notifier) (*App, error) {
	capture := logging.NewCaptureHandler(
		slog.NewTextHandler(os.Stderr, nil), captureLimit)
	log := logging.NewSlogLogger(slog.New(capture))

	client := pastebin.NewClient(pastebin.Options{
		BaseURL:        cfg.APIBaseURL,
		RequestTimeout: cfg.RequestTimeout,
		MaxTextLength:  cfg.MaxTextLength,
		RetryAttempts:  cfg.RetryAttempts,
		RetryDelay:     cfg.RetryDelay,
	}, log.With("component", "pastebin"))

	store, err := newStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	router := dispatch.NewRouter(client, store, capture, notify, cfg.PreviewLength,
		log.With("component", "dispatch"))

	return &App{
		Config:  cfg,
		Log:     log,
		Capture: capture,
		Client:  client,
		Store:   store,
		Router:  router,
	}, nil
}

// Close releases the history store.
func (a *App) Close() error {
	return a.Store.Close()
}

func newStore(ctx context.Context, cfg *config.Config) (history.Store, error) {
	switch cfg.StoreType {
	case "memory":
		return history.NewMemoryStore(cfg.HistoryCapacity), nil
	case "sqlite":
		store, err := history.OpenSQLite(ctx, cfg.SQLitePath, cfg.HistoryCapacity)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite history: %w", err)
		}
		return store, nil
	case "redis":
		store, err := history.NewRedisStore(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, cfg.HistoryCapacity)
		if err != nil {
			return nil, fmt.Errorf("failed to open redis history: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown store type: %s", cfg.StoreType)
	}
}
