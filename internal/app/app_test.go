package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/migrations"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppSQLite(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Database.Path = filepath.Join(t.TempDir(), "nested", "tally.db")
	cfg.Log.Level = "off"
	ctx := context.Background()

	a, cleanup, err := NewApp(ctx, cfg, migrations.FS)
	require.NoError(t, err)
	defer cleanup()

	_, err = a.Service.Account.CreateAccount(ctx, "acc-1", decimal.NewFromInt(5))
	require.NoError(t, err)
	assert.FileExists(t, cfg.Database.Path)
}

func TestNewAppRejectsBadConfig(t *testing.T) {
	ctx := context.Background()

	cfg := config.NewDefault()
	cfg.Database.Driver = "oracle"
	_, _, err := NewApp(ctx, cfg, migrations.FS)
	assert.ErrorContains(t, err, "unknown database driver")

	cfg = config.NewDefault()
	cfg.Database.Driver = config.DriverPostgres
	_, _, err = NewApp(ctx, cfg, migrations.FS)
	assert.ErrorContains(t, err, "database.url is required")

	cfg = config.NewDefault()
	cfg.Log.Format = "xml"
	_, _, err = NewApp(ctx, cfg, migrations.FS)
	assert.ErrorContains(t, err, "log format")
}
