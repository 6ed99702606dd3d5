package config

import (
	"strings"
	"time"

	"github.com/hance08/tally/internal/constants"
)

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Server     ServerConfig   `mapstructure:"server"`
	Transfer   TransferConfig `mapstructure:"transfer"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	// Driver is either DriverSQLite or DriverPostgres.
	Driver       string `mapstructure:"driver"`
	Path         string `mapstructure:"path"`
	URL          string `mapstructure:"url"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type TransferConfig struct {
	LockTimeout time.Duration `mapstructure:"lock_timeout"`
	AmountScale int32         `mapstructure:"amount_scale"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Driver: DriverSQLite, Path: "", MaxOpenConns: 1},
		Server:   ServerConfig{Addr: ":8080", ShutdownTimeout: 10 * time.Second},
		Transfer: TransferConfig{LockTimeout: 5 * time.Second, AmountScale: constants.DefaultAmountScale},
		Log:      LogConfig{Level: "info", Format: "colorful"},
	}
}

// Defaults flattens NewDefault into dotted keys, the shape viper.SetDefault expects.
func Defaults() map[string]any {
	d := NewDefault()
	return map[string]any{
		"database.driver":         d.Database.Driver,
		"database.path":           d.Database.Path,
		"database.url":            d.Database.URL,
		"database.max_open_conns": d.Database.MaxOpenConns,
		"server.addr":             d.Server.Addr,
		"server.shutdown_timeout": d.Server.ShutdownTimeout.String(),
		"transfer.lock_timeout":   d.Transfer.LockTimeout.String(),
		"transfer.amount_scale":   d.Transfer.AmountScale,
		"log.level":               d.Log.Level,
		"log.format":              d.Log.Format,
	}
}

var envKeyReplacer = strings.NewReplacer(".", "_")

// EnvKeyReplacer maps dotted config keys onto TALLY_* environment variable names.
func EnvKeyReplacer() *strings.Replacer {
	return envKeyReplacer
}
