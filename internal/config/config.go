package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the whole application configuration, populated from
// environment variables (a .env file is loaded by main in development).
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Server   ServerConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration

	MaxRetries     int
	RetryDelay     time.Duration
	ConnectTimeout time.Duration
}

type ServerConfig struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Load reads configuration from environment variables with sane defaults
// for local development.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "find-my-buddy-api"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "3000"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("PG_HOST", "localhost"),
			Port:     getEnvInt("PG_PORT", 5432),
			User:     getEnv("PG_USERNAME", "postgres"),
			Password: getEnv("PG_PASSWORD", "postgres"),
			Database: getEnv("PG_DBNAME", "find_my_buddy"),
			SSLMode:  getEnv("PG_SSLMODE", "disable"),

			MaxConns:          int32(getEnvInt("PG_MAX_CONNS", 10)),
			MinConns:          int32(getEnvInt("PG_MIN_CONNS", 2)),
			MaxConnLifetime:   getEnvDuration("PG_MAX_CONN_LIFETIME", time.Hour),
			MaxConnIdleTime:   getEnvDuration("PG_MAX_CONN_IDLE_TIME", 30*time.Minute),
			HealthCheckPeriod: getEnvDuration("PG_HEALTH_CHECK_PERIOD", time.Minute),

			MaxRetries:     getEnvInt("PG_MAX_RETRIES", 3),
			RetryDelay:     getEnvDuration("PG_RETRY_DELAY", time.Second),
			ConnectTimeout: getEnvDuration("PG_CONNECT_TIMEOUT", 10*time.Second),
		},
		Server: ServerConfig{
			ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
	}

	if cfg.Database.Host == "" {
		return nil, fmt.Errorf("config: PG_HOST must not be empty")
	}

	return cfg, nil
}

// DSN builds the postgres connection string used by pgx and the migration
// runner.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Database, d.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
