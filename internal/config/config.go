package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

var supportedDrivers = map[string]bool{
	"sqlite": true,
	"pgx":    true,
}

type Config struct {
	// Application
	AppName string
	AppEnv  string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Logging
	LogLevel slog.Level

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName: envString("APP_NAME", "FitTrack"),
		AppEnv:  envString("APP_ENV", "production"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/fittrack.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_time_format=sqlite"),

		// Logging
		LogLevel: envLevel("LOG_LEVEL", slog.LevelWarn),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),
	}

	validate(cfg)

	return cfg
}

// validate exits when the store cannot possibly be opened; the store
// location is fixed for the life of the process.
func validate(cfg *Config) {
	if !supportedDrivers[cfg.DBDriver] {
		slog.Error("unsupported DB_DRIVER", "driver", cfg.DBDriver, "hint", "use sqlite or pgx")
		os.Exit(1)
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envLevel(key string, def slog.Level) slog.Level {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	var level slog.Level
	err := level.UnmarshalText([]byte(v))
	if err != nil {
		slog.Warn("config invalid log level, using default", "key", key, "value", v, "default", def)
		return def
	}
	return level
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
