package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	AppURL                 string
	Environment            string
	DatabaseDriver         string
	DatabaseDSN            string
	RateLimit              int
	RedisAddr              string
	RedisKeyPrefix         string
	CORSAllowOrigins       []string
	ShutdownTimeoutSeconds int
	LogLevel               string
	LogEncoding            string
	LogFile                string
}

func (c Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

func Load() (Config, error) {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")

	rateLimit, err := getEnvAsInt("RATE_LIMIT_PER_MINUTE", 120)
	if err != nil {
		return Config{}, err
	}
	shutdownTimeout, err := getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		Environment:            strings.ToLower(getEnv("APP_ENV", EnvProduction)),
		DatabaseDriver:         strings.ToLower(getEnv("DATABASE_DRIVER", DriverSQLite)),
		DatabaseDSN:            getEnv("DATABASE_DSN", "tasks.db?_busy_timeout=5000&_txlock=immediate"),
		RateLimit:              rateLimit,
		RedisAddr:              getEnv("REDIS_ADDR", ""),
		RedisKeyPrefix:         getEnv("REDIS_KEY_PREFIX", "task_tracker:ratelimit"),
		CORSAllowOrigins:       splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
		ShutdownTimeoutSeconds: shutdownTimeout,
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		LogEncoding:            getEnv("LOG_ENCODING", "json"),
		LogFile:                getEnv("LOG_FILE", ""),
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.AppURL == "" {
		return errors.New("APP_HOST/APP_PORT must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.Environment != EnvDevelopment && cfg.Environment != EnvProduction {
		return fmt.Errorf("APP_ENV must be %q or %q", EnvDevelopment, EnvProduction)
	}
	if cfg.DatabaseDriver != DriverSQLite && cfg.DatabaseDriver != DriverPostgres {
		return fmt.Errorf("DATABASE_DRIVER must be %q or %q", DriverSQLite, DriverPostgres)
	}
	if cfg.DatabaseDSN == "" {
		return errors.New("DATABASE_DSN must not be empty")
	}
	if cfg.RateLimit <= 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
	if cfg.LogEncoding != "json" && cfg.LogEncoding != "console" {
		return errors.New("LOG_ENCODING must be json or console")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) (int, error) {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s", key)
		}
		return i, nil
	}
	return defaultVal, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
