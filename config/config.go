package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all runtime settings. Everything comes from the environment
// (optionally via a .env file loaded in main) with working defaults.
type Config struct {
	Port       string
	CORSOrigin string
	UploadDir  string

	Database DatabaseConfig

	RateLimitPerSec float64
	RateLimitBurst  int
}

// DatabaseConfig holds the MySQL connection and pool settings.
type DatabaseConfig struct {
	Host string
	Port string
	User string
	Pass string
	Name string

	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envIntOrDefault(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

func envFloatOrDefault(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return f
}

// Load reads the configuration from the environment.
func Load() *Config {
	return &Config{
		Port:       envOrDefault("PORT", "8080"),
		CORSOrigin: envOrDefault("CORS_ORIGIN", "http://localhost:5173"),
		UploadDir:  envOrDefault("UPLOAD_DIR", "./uploads"),
		Database: DatabaseConfig{
			Host:               envOrDefault("DB_HOST", "127.0.0.1"),
			Port:               envOrDefault("DB_PORT", "3306"),
			User:               envOrDefault("DB_USER", "root"),
			Pass:               envOrDefault("DB_PASS", ""),
			Name:               envOrDefault("DB_NAME", "booking_db"),
			MaxOpenConns:       envIntOrDefault("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       envIntOrDefault("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeMin: envIntOrDefault("DB_CONN_MAX_LIFETIME_MIN", 30),
		},
		RateLimitPerSec: envFloatOrDefault("RATE_LIMIT_PER_SEC", 50),
		RateLimitBurst:  envIntOrDefault("RATE_LIMIT_BURST", 100),
	}
}
