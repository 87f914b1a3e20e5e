package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Holiday provider configuration
	HolidayAPIBaseURL string `mapstructure:"HOLIDAY_API_BASE_URL"`

	// Import job configuration
	ImportTimeoutMinutes   int `mapstructure:"IMPORT_TIMEOUT_MINUTES"`
	ReclaimIntervalMinutes int `mapstructure:"RECLAIM_INTERVAL_MINUTES"`

	// Coverage configuration
	CoverageThresholdPercent int `mapstructure:"COVERAGE_THRESHOLD_PERCENT"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "staff_roster")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Holiday provider defaults
	viper.SetDefault("HOLIDAY_API_BASE_URL", "https://date.nager.at/api/v3")

	// Import job defaults
	viper.SetDefault("IMPORT_TIMEOUT_MINUTES", 15)
	viper.SetDefault("RECLAIM_INTERVAL_MINUTES", 5)

	// Coverage defaults
	viper.SetDefault("COVERAGE_THRESHOLD_PERCENT", 80)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}
	if config.HolidayAPIBaseURL == "" {
		return fmt.Errorf("holiday API base URL is required")
	}
	if config.ImportTimeoutMinutes < 1 {
		return fmt.Errorf("import timeout must be at least 1 minute")
	}
	if config.ReclaimIntervalMinutes < 1 {
		return fmt.Errorf("reclaim interval must be at least 1 minute")
	}
	if config.CoverageThresholdPercent < 0 || config.CoverageThresholdPercent > 100 {
		return fmt.Errorf("coverage threshold must be between 0 and 100")
	}
	return nil
}

// ImportTimeout returns the age after which a pending import job is reclaimed
func (c *Config) ImportTimeout() time.Duration {
	return time.Duration(c.ImportTimeoutMinutes) * time.Minute
}

// ReclaimInterval returns how often the background reclaimer sweeps
func (c *Config) ReclaimInterval() time.Duration {
	return time.Duration(c.ReclaimIntervalMinutes) * time.Minute
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
