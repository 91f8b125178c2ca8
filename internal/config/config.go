package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"shared-ledger/pkg/logger"
)

type Config struct {
	HTTPPort       string
	Env            string
	CORSOrigins    []string
	MetricsEnabled bool
	Cache          CacheConfig
	DB             DBConfig
}

type CacheConfig struct {
	CategoriesTTL time.Duration
	GroupsTTL     time.Duration
}

type DBConfig struct {
	URL             string
	SQLitePath      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func Load(log logger.Logger) (Config, error) {
	err := loadDotEnv(log)
	if err != nil {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	return Config{
		HTTPPort:       getEnv("HTTP_PORT", "8000"),
		Env:            getEnv("ENV", "development"),
		CORSOrigins:    getEnvList("CORS_ORIGINS", []string{"http://localhost:5173"}),
		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
		Cache: CacheConfig{
			CategoriesTTL: getEnvDuration("CATEGORIES_CACHE_TTL", time.Minute),
			GroupsTTL:     getEnvDuration("GROUPS_CACHE_TTL", time.Minute),
		},
		DB: DBConfig{
			URL:             getEnv("DATABASE_URL", ""),
			SQLitePath:      getEnv("SQLITE_PATH", "finance.db"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var items []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

// UsesPostgres reports whether a server database was configured. Without one
// the store falls back to a local SQLite file.
func (c DBConfig) UsesPostgres() bool {
	return strings.TrimSpace(c.URL) != ""
}

// PostgresDSN returns the connection URL with the legacy postgres:// scheme
// rewritten to postgresql://, which some hosting providers still emit.
func (c DBConfig) PostgresDSN() string {
	url := strings.TrimSpace(c.URL)
	if strings.HasPrefix(url, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(url, "postgres://")
	}
	return url
}
