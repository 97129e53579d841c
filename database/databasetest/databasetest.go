// Package databasetest opens throwaway in-memory stores for tests.
package databasetest

import (
	"testing"

	"planner/config"
	"planner/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Config describes an in-memory SQLite store.
func Config() *config.Config {
	return &config.Config{
		Port:           "8000",
		DBDriver:       config.DriverSQLite,
		DBName:         ":memory:",
		DBLogLevel:     "silent",
		DBMaxOpenConns: 1,
		CorsOrigins:    "*",
	}
}

// Open returns a migrated in-memory store that is closed when t finishes.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := Config()
	db, err := database.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.Migrate(db, cfg.DBDriver))
	return db
}
