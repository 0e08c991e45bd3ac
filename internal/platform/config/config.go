package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// RatesDataDir optionally points at a directory of monthly rate XML
	// documents. When set it overrides the bundle compiled into the
	// binary.
	RatesDataDir string

	// RateLimit is an ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string

	// CORSAllowOrigins is the comma-separated origin allow list; "*"
	// allows all origins.
	CORSAllowOrigins string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RATES_DATA_DIR", "")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:             viper.GetString("PORT"),
		IsProduction:     viper.GetBool("IS_PRODUCTION"),
		RatesDataDir:     viper.GetString("RATES_DATA_DIR"),
		RateLimit:        viper.GetString("RATE_LIMIT"),
		CORSAllowOrigins: viper.GetString("CORS_ALLOW_ORIGINS"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.RatesDataDir == "" {
		log.Println("RATES_DATA_DIR not set, using the rate documents bundled into the binary.")
	}

	return cfg, nil
}
