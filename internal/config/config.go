package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Postgres PostgresConfig
	SQLite   SQLiteConfig
	App      AppConfig
}

type PostgresConfig struct {
	Host           string
	Port           int
	User           string
	Password       string
	Name           string
	SSLMode        string
	ConnectTimeout int // seconds
}

// SQLiteConfig holds the embedded fallback engine configuration
type SQLiteConfig struct {
	Path string
}

// AppConfig holds application configuration
type AppConfig struct {
	Env      string
	LogLevel string
}

// Load reads configuration from an optional .env file and the environment.
// When envFile is empty a .env in the working directory is tried; a missing
// file is not an error, the environment alone is enough.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("loading env file %s: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	connectTimeout, err := strconv.Atoi(getEnv("DB_CONNECT_TIMEOUT", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_CONNECT_TIMEOUT: %w", err)
	}

	config.Postgres = PostgresConfig{
		Host:           getEnv("DB_HOST", "localhost"),
		Port:           dbPort,
		User:           getEnv("DB_USER", "postgres"),
		Password:       getEnv("DB_PASSWORD", ""),
		Name:           getEnv("DB_NAME", "staffdesk"),
		SSLMode:        getEnv("DB_SSL_MODE", "disable"),
		ConnectTimeout: connectTimeout,
	}

	config.SQLite = SQLiteConfig{
		Path: getEnv("SQLITE_PATH", "staffdesk.db"),
	}

	config.App = AppConfig{
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Postgres.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.Postgres.Port <= 0 || c.Postgres.Port > 65535 {
		return fmt.Errorf("DB_PORT must be between 1 and 65535")
	}
	if c.SQLite.Path == "" {
		return fmt.Errorf("SQLITE_PATH is required")
	}
	return nil
}

// PostgresURL returns the PostgreSQL connection string
func (c *Config) PostgresURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s&connect_timeout=%d",
		c.Postgres.User,
		c.Postgres.Password,
		c.Postgres.Host,
		c.Postgres.Port,
		c.Postgres.Name,
		c.Postgres.SSLMode,
		c.Postgres.ConnectTimeout,
	)
}

// SQLiteDSN returns the SQLite connection string. The pragmas keep the
// embedded engine behaviorally aligned with PostgreSQL: enforced foreign
// keys and case-sensitive LIKE.
func (c *Config) SQLiteDSN() string {
	return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=case_sensitive_like(1)",
		c.SQLite.Path,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
