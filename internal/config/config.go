package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Session SessionConfig
	Tax     TaxConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// SessionConfig holds the demo session slot configuration. Store selects the
// slot backend: "memory" or "file".
type SessionConfig struct {
	TTL      time.Duration
	Store    string
	FilePath string
}

// TaxConfig pins the tax slab the payroll engine evaluates against.
type TaxConfig struct {
	Jurisdiction  string
	FinancialYear string
}

func Load() (*Config, error) {
	// A missing .env file is fine; the environment may carry everything.
	_ = godotenv.Load()

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// Session configuration
	sessionTTL, err := time.ParseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	config.Session = SessionConfig{
		TTL:      sessionTTL,
		Store:    getEnv("SESSION_STORE", "memory"),
		FilePath: getEnv("SESSION_FILE_PATH", "./data/session.json"),
	}

	// Tax configuration
	config.Tax = TaxConfig{
		Jurisdiction:  getEnv("TAX_JURISDICTION", "India"),
		FinancialYear: getEnv("TAX_FINANCIAL_YEAR", "2025-26"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.Session.Store != "memory" && c.Session.Store != "file" {
		return fmt.Errorf("unsupported SESSION_STORE: %s", c.Session.Store)
	}
	if c.Session.Store == "file" && c.Session.FilePath == "" {
		return fmt.Errorf("SESSION_FILE_PATH is required for the file store")
	}
	if c.Tax.Jurisdiction == "" {
		return fmt.Errorf("TAX_JURISDICTION is required")
	}
	if c.Tax.FinancialYear == "" {
		return fmt.Errorf("TAX_FINANCIAL_YEAR is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
