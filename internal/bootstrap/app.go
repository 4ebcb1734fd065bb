package bootstrap

import (
	"fmt"
	"log/slog"
	"time"

	"nexusbot/internal/cache"
	"nexusbot/internal/config"
	"nexusbot/internal/pkg/logging"
	"nexusbot/internal/store"
)

// App bundles everything the process keeps alive: config, logger, the
// in-memory document store, and the per-session conversation cache.
type App struct {
	Config        *config.Config
	Logger        *slog.Logger
	Store         *store.DocumentStore
	Conversations *cache.Conversations

	StartedAt time.Time
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	logger := logging.Init(cfg.App.Env)

	return &App{
		Config:        cfg,
		Logger:        logger,
		Store:         store.NewDocumentStore(),
		Conversations: cache.NewConversations(time.Duration(cfg.Session.HistoryTTLMinutes) * time.Minute),
		StartedAt:     time.Now(),
	}, nil
}

func (a *App) Close() error {
	if a.Conversations != nil {
		a.Conversations.Flush()
	}
	if a.Store != nil {
		a.Store.Clear()
	}
	return nil
}
