package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all process-wide settings, resolved once at startup.
type Config struct {
	Environment string `json:"environment"`
	ServerPort  string `json:"server_port"`
	CORSOrigins string `json:"cors_origins"`
	BaseURL     string `json:"base_url"`

	DBHost     string `json:"db_host"`
	DBPort     string `json:"db_port"`
	DBUser     string `json:"db_user"`
	DBPassword string `json:"-"`
	DBName     string `json:"db_name"`
	DBSSLMode  string `json:"db_ssl_mode"`

	// DATABASE_URL wins over the individual DB_* parameters when set.
	DatabaseURL string `json:"-"`

	DBMaxIdleConns int `json:"db_max_idle_conns"`
	DBMaxOpenConns int `json:"db_max_open_conns"`

	RateLimitMaxRequests  int `json:"rate_limit_max_requests"`
	RateLimitWindowSecond int `json:"rate_limit_window_seconds"`
}

// Load reads the environment (and .env, when present) into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("APP_ENV", "development"),
		ServerPort:  getEnv("PORT", "8000"),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      getEnv("DB_NAME", "octofit_db"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),

		DBMaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
		DBMaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 100),

		RateLimitMaxRequests:  getEnvAsInt("RATE_LIMIT_MAX_REQUESTS", 100),
		RateLimitWindowSecond: getEnvAsInt("RATE_LIMIT_WINDOW_MS", 900000) / 1000,
	}
	if cfg.RateLimitWindowSecond <= 0 {
		cfg.RateLimitWindowSecond = 900
	}

	cfg.BaseURL = resolveBaseURL(cfg.ServerPort)

	if cfg.Environment == "production" && cfg.DatabaseURL == "" && cfg.DBPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD or DATABASE_URL is required in production")
	}

	return cfg, nil
}

// resolveBaseURL builds the externally visible API base URL. Inside a GitHub
// codespace the forwarded port lives under app.github.dev.
func resolveBaseURL(port string) string {
	if codespace := os.Getenv("CODESPACE_NAME"); codespace != "" {
		return fmt.Sprintf("https://%s-8000.app.github.dev", codespace)
	}
	return "http://localhost:" + port
}

// DSN assembles the Postgres connection string.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
