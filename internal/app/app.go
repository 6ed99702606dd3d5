package app

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/logging"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/store"
	"github.com/hance08/tally/internal/store/postgres"
	"github.com/pterm/pterm"
)

type App struct {
	Config  *config.Config
	Service *service.Service
	Store   store.Backend
	Logger  *pterm.Logger
}

// NewApp initialize logger, database and core logic, then return App entity
func NewApp(ctx context.Context, cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	logger, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	backend, err := openBackend(ctx, cfg.Database, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	logger.Debug("database ready", logger.Args("driver", cfg.Database.Driver))

	svc := service.NewService(backend, cfg, logger)

	cleanup := func() {
		if err := backend.Close(); err != nil {
			logger.Error("error closing database", logger.Args("error", err.Error()))
		}
	}

	return &App{
		Config:  cfg,
		Service: svc,
		Store:   backend,
		Logger:  logger,
	}, cleanup, nil
}

func openBackend(ctx context.Context, cfg config.DatabaseConfig, migrationFS fs.FS) (store.Backend, error) {
	switch cfg.Driver {
	case "", config.DriverSQLite:
		dbPath := cfg.Path
		if dbPath == "" {
			appDir, err := GetAppDataDir()
			if err != nil {
				return nil, err
			}
			dbPath = filepath.Join(appDir, "tally.db")
		}
		return store.NewStore(dbPath, migrationFS, cfg.MaxOpenConns)
	case config.DriverPostgres:
		if cfg.URL == "" {
			return nil, fmt.Errorf("database.url is required for the %s driver", config.DriverPostgres)
		}
		return postgres.NewStore(ctx, cfg.URL, migrationFS, cfg.MaxOpenConns)
	default:
		return nil, fmt.Errorf("unknown database driver '%s' (must be %s or %s)", cfg.Driver, config.DriverSQLite, config.DriverPostgres)
	}
}

// GetAppDataDir is where tally keeps its config file and SQLite database.
func GetAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".tally"), nil
	}

	return filepath.Join(configDir, "tally"), nil
}
