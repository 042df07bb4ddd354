package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool
	CompanyName  string

	// DepreciationRateLimit is a ulule/limiter formatted rate, e.g. "10-M"
	// for ten requests per minute, applied to the depreciation run endpoint.
	DepreciationRateLimit string

	// CORSAllowOrigins lists the origins allowed to call the API. Empty
	// means allow all, which is only sensible outside production.
	CORSAllowOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("COMPANY_NAME", "QUANTILYTIX")
	viper.SetDefault("DEPRECIATION_RATE_LIMIT", "10-M")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.CompanyName = viper.GetString("COMPANY_NAME")
	cfg.DepreciationRateLimit = viper.GetString("DEPRECIATION_RATE_LIMIT")

	if origins := viper.GetString("CORS_ALLOW_ORIGINS"); origins != "" {
		cfg.CORSAllowOrigins = viper.GetStringSlice("CORS_ALLOW_ORIGINS")
	}

	return cfg, nil
}
