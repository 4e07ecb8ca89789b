package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Driver selects the storage backend.
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// PostgresConfig holds connection settings for the postgres backend.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// LogConfig controls the process-wide slog handler.
type LogConfig struct {
	Level  string
	Format string // "json" or "text"
	Output string // "stderr", "stdout" or a file path
	// UseCases enables per-operation service_use_case events.
	UseCases bool
}

// Config holds all runtime configuration.
type Config struct {
	Driver   Driver
	DBPath   string
	Postgres PostgresConfig
	Addr     string
	Log      LogConfig
}

// DefaultConfig returns a Config pointing at ~/.babylog/babylog.db.
func DefaultConfig() Config {
	dbPath := "babylog.db"
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".babylog", "babylog.db")
	}
	return Config{
		Driver: DriverSQLite,
		DBPath: dbPath,
		Postgres: PostgresConfig{
			Host:    "localhost",
			Port:    "5432",
			User:    "postgres",
			Name:    "babylog",
			SSLMode: "disable",
		},
		Addr: ":8080",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding values already set. Missing files are
// ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

// LoadConfig reads configuration from BABYLOG_* environment variables,
// falling back to defaults for any unset values.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("BABYLOG_DB_DRIVER"); v != "" {
		cfg.Driver = Driver(strings.ToLower(v))
	}
	if v := os.Getenv("BABYLOG_DB"); v != "" {
		cfg.DBPath = v
	}
	cfg.Postgres.Host = getEnvOrDefault("BABYLOG_PG_HOST", cfg.Postgres.Host)
	cfg.Postgres.Port = getEnvOrDefault("BABYLOG_PG_PORT", cfg.Postgres.Port)
	cfg.Postgres.User = getEnvOrDefault("BABYLOG_PG_USER", cfg.Postgres.User)
	cfg.Postgres.Password = getEnvOrDefault("BABYLOG_PG_PASSWORD", cfg.Postgres.Password)
	cfg.Postgres.Name = getEnvOrDefault("BABYLOG_PG_NAME", cfg.Postgres.Name)
	cfg.Postgres.SSLMode = getEnvOrDefault("BABYLOG_PG_SSLMODE", cfg.Postgres.SSLMode)
	cfg.Addr = getEnvOrDefault("BABYLOG_ADDR", cfg.Addr)

	cfg.Log.Level = strings.ToLower(getEnvOrDefault("BABYLOG_LOG_LEVEL", cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(getEnvOrDefault("BABYLOG_LOG_FORMAT", cfg.Log.Format))
	cfg.Log.Output = getEnvOrDefault("BABYLOG_LOG_OUTPUT", cfg.Log.Output)
	if v := os.Getenv("BABYLOG_LOG_USE_CASES"); v != "" {
		cfg.Log.UseCases, _ = strconv.ParseBool(v)
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Driver {
	case DriverSQLite:
		if c.DBPath == "" {
			return errors.New("BABYLOG_DB must not be empty")
		}
	case DriverPostgres:
		if c.Postgres.Host == "" || c.Postgres.Name == "" {
			return errors.New("postgres driver needs BABYLOG_PG_HOST and BABYLOG_PG_NAME")
		}
	default:
		return fmt.Errorf("unknown BABYLOG_DB_DRIVER %q (want sqlite or postgres)", c.Driver)
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("unknown BABYLOG_LOG_FORMAT %q (want json or text)", c.Log.Format)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
