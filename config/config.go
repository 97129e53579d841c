package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds application configuration
type Config struct {
	Port     string `validate:"required,numeric"`
	DBDriver string `validate:"required,oneof=sqlite postgres"`
	DBName   string `validate:"required"` // SQLite file path or Postgres DSN

	DBLogLevel      string `validate:"oneof=silent error warn info"`
	DBMaxOpenConns  int    `validate:"gte=1"`
	StaticDir       string
	CorsOrigins     string `validate:"required"`
	MaintenanceCron string // empty disables the maintenance scheduler
}

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	cfg := &Config{
		Port:     getEnv("PORT", "8000"),
		DBDriver: getEnv("DB_DRIVER", DriverSQLite),
		DBName:   getEnv("DB_NAME", "db.sqlite"),

		DBLogLevel:      getEnv("DB_LOG_LEVEL", "warn"),
		DBMaxOpenConns:  getEnvInt("DB_MAX_OPEN_CONNS", 10),
		StaticDir:       getEnv("STATIC_DIR", "./public"),
		CorsOrigins:     getEnv("CORS_ORIGINS", "*"),
		MaintenanceCron: os.Getenv("MAINTENANCE_CRON"),
	}
	if _, set := os.LookupEnv("MAINTENANCE_CRON"); !set {
		cfg.MaintenanceCron = "0 3 * * *"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags on Config.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// getEnv returns the value of key, or fallback when it is unset or blank.
func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// getEnvInt is getEnv for integer settings. A value that does not parse is
// logged and replaced by fallback.
func getEnvInt(key string, fallback int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("[CONFIG] %s=%q is not an integer, using %d", key, raw, fallback)
		return fallback
	}
	return n
}
