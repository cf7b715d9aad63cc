package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dori/todo/internal/config"
	"github.com/dori/todo/internal/journal"
	"github.com/dori/todo/internal/model"
	"github.com/dori/todo/internal/store"
	"github.com/google/uuid"
)

// App holds the application state and dependencies
type App struct {
	Store    *store.Store
	Journal  *journal.Journal
	Settings config.Config
	Session  string
	Log      *slog.Logger
}

// Config holds application configuration
type Config struct {
	Settings config.Config
	Seed     []model.Task
	Logger   *slog.Logger
}

// DefaultConfig returns the default application configuration
func DefaultConfig() *Config {
	return &Config{
		Settings: config.Default(),
		Seed:     model.Seed(),
		Logger:   DiscardLogger(),
	}
}

// New creates a new application instance
func New(cfg *Config) (*App, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = DiscardLogger()
	}

	if err := store.CheckSeed(cfg.Seed); err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}

	session := uuid.NewString()
	logger = logger.With("session", session)

	j, err := journal.Open(session)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	a := &App{
		Store:    store.New(cfg.Seed),
		Journal:  j,
		Settings: cfg.Settings,
		Session:  session,
		Log:      logger,
	}
	logger.Info("app started", "tasks", a.Store.Len())
	return a, nil
}

// Close cleans up application resources
func (a *App) Close() error {
	var errs []error

	if a.Journal != nil {
		if err := a.Journal.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close journal: %w", err))
		}
	}
	a.Log.Info("app closed")

	return errors.Join(errs...)
}
