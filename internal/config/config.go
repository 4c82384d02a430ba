package config

import (
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Storage
	DataDir    string `mapstructure:"DATA_DIR"`
	UploadsDir string `mapstructure:"UPLOADS_DIR"`
	PublicDir  string `mapstructure:"PUBLIC_DIR"`

	// Limits
	RateLimitPerMinute int `mapstructure:"RATE_LIMIT_PER_MINUTE"`

	// Orphan image sweep — off by default: deleting a recipe never removes
	// its uploaded image unless the operator opts in.
	CleanupEnabled         bool `mapstructure:"CLEANUP_ENABLED"`
	CleanupIntervalMinutes int  `mapstructure:"CLEANUP_INTERVAL_MINUTES"`
}

// RecipesFile is the JSON array file backing the recipes collection.
func (c *Config) RecipesFile() string { return filepath.Join(c.DataDir, "recipes.json") }

// InventoryFile is the JSON array file backing the inventory collection.
func (c *Config) InventoryFile() string { return filepath.Join(c.DataDir, "inventory.json") }

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 3000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("UPLOADS_DIR", "./uploads")
	viper.SetDefault("PUBLIC_DIR", "./public")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 1000)
	viper.SetDefault("CLEANUP_ENABLED", false)
	viper.SetDefault("CLEANUP_INTERVAL_MINUTES", 60)

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
