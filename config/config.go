package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	DatabaseURL        string   `envconfig:"DATABASE_URL"`
	Port               string   `envconfig:"PORT" default:"8080"`
	GoEnv              string   `envconfig:"GO_ENV" default:"development"`
	LogLevel           string   `envconfig:"LOG_LEVEL" default:"info"`
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	AWSRegion          string   `envconfig:"AWS_REGION" default:"us-east-1"`
	AWSS3Bucket        string   `envconfig:"AWS_S3_BUCKET"`
	AWSAccessKeyID     string   `envconfig:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string   `envconfig:"AWS_SECRET_ACCESS_KEY"`
	PDFArchiveEnabled  bool     `envconfig:"PDF_ARCHIVE_ENABLED" default:"false"`
}

var current *Config

// Load loads the configuration from environment variables
// It automatically determines which .env file to load based on GO_ENV
func Load() (*Config, error) {
	// Determine which environment file to load
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Try to load environment-specific file first
	envFile := fmt.Sprintf(".env.%s", env)
	if err := godotenv.Load(envFile); err != nil {
		// If environment-specific file doesn't exist, try .env
		if err := godotenv.Load(); err != nil {
			// In production environment variables are set directly
			slog.Info("No .env file found, using system environment variables")
		}
	} else {
		slog.Info("Loaded configuration", "file", envFile)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	current = &cfg
	return &cfg, nil
}

// Validate checks that configuration values are consistent
func (c *Config) Validate() error {
	if c.PDFArchiveEnabled && c.AWSS3Bucket == "" {
		return fmt.Errorf("AWS_S3_BUCKET is required when PDF_ARCHIVE_ENABLED is set")
	}
	return nil
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

// IsTest returns true if the application is running in test mode
func (c *Config) IsTest() bool {
	return c.GoEnv == "test"
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GoEnv == "development"
}

// GetConfig returns the configuration loaded by Load or set by SetConfig
func GetConfig() *Config {
	return current
}

// SetConfig replaces the current configuration (primarily for testing)
func SetConfig(cfg *Config) {
	current = cfg
}
