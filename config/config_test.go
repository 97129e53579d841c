package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "DB_NAME", "DB_LOG_LEVEL", "DB_MAX_OPEN_CONNS", "STATIC_DIR", "CORS_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, ":8000", cfg.Addr())
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "db.sqlite", cfg.DBName)
	assert.Equal(t, "warn", cfg.DBLogLevel)
	assert.Equal(t, "*", cfg.CorsOrigins)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_NAME", "host=localhost user=planner dbname=planner")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("MAINTENANCE_CRON", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, 25, cfg.DBMaxOpenConns)
	assert.Empty(t, cfg.MaintenanceCron, "an explicitly empty schedule disables maintenance")
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Port:           "http",
		DBDriver:       DriverSQLite,
		DBName:         "db.sqlite",
		DBLogLevel:     "warn",
		DBMaxOpenConns: 1,
		CorsOrigins:    "*",
	}
	assert.Error(t, cfg.Validate(), "port must be numeric")

	cfg.Port = "8000"
	assert.NoError(t, cfg.Validate())

	cfg.DBLogLevel = "verbose"
	assert.Error(t, cfg.Validate())
}

func TestGetEnvIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("PLANNER_TEST_INT", "ten")
	assert.Equal(t, 10, getEnvInt("PLANNER_TEST_INT", 10))
}

func TestGetEnvTreatsBlankAsUnset(t *testing.T) {
	t.Setenv("PLANNER_TEST_STR", "   ")
	assert.Equal(t, "fallback", getEnv("PLANNER_TEST_STR", "fallback"))

	t.Setenv("PLANNER_TEST_STR", " value ")
	assert.Equal(t, "value", getEnv("PLANNER_TEST_STR", "fallback"))
}
