package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	HTTPAddr   string
	Database   DatabaseConfig
	Translator TranslatorConfig
}

// DatabaseConfig holds store settings for the embedded SQLite database
// (the default) or an optional PostgreSQL server.
type DatabaseConfig struct {
	Driver   string
	Path     string
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// TranslatorConfig holds upstream translation API settings
type TranslatorConfig struct {
	BaseURL    string
	SourceLang string
	TargetLang string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "sqlite3"),
			Path:     getEnv("DB_PATH", "data/echolingo.db"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "echolingo"),
			User:     getEnv("DB_USER", "echolingo"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Translator: TranslatorConfig{
			BaseURL:    getEnv("TRANSLATOR_URL", "https://api.mymemory.translated.net/get"),
			SourceLang: getEnv("SOURCE_LANG", "zh"),
			TargetLang: getEnv("TARGET_LANG", "en"),
		},
	}

	// Validate per-driver requirements
	switch cfg.Database.Driver {
	case "sqlite3":
		if cfg.Database.Path == "" {
			return nil, fmt.Errorf("DB_PATH is required")
		}
	case "postgres":
		if cfg.Database.Password == "" {
			return nil, fmt.Errorf("DB_PASSWORD is required")
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}

	return cfg, nil
}

// DSN returns the connection string for the configured driver
func (c *Config) DSN() string {
	if c.Database.Driver == "sqlite3" {
		return c.Database.Path + "?_loc=Local&_foreign_keys=on"
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

// MigrationsURL returns the migration source for the configured driver
func (c *Config) MigrationsURL() string {
	if c.Database.Driver == "sqlite3" {
		return "file://migrations/sqlite"
	}
	return "file://migrations/postgres"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
