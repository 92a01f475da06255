package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Log     LogConfig
	Store   StoreConfig
	Metrics MetricsConfig
}

type LogConfig struct {
	Level  string
	Format string
}

type StoreConfig struct {
	// SeedFile is an optional JSON array of documents loaded at startup.
	SeedFile string
}

type MetricsConfig struct {
	Namespace string
}

// LoadConfig loads configuration from environment variables and an optional .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("DOCSTORE_SEED_FILE", "")
	v.SetDefault("METRICS_NAMESPACE", "docstore")

	cfg := &Config{
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
		},
		Store: StoreConfig{
			SeedFile: v.GetString("DOCSTORE_SEED_FILE"),
		},
		Metrics: MetricsConfig{
			Namespace: v.GetString("METRICS_NAMESPACE"),
		},
	}

	switch cfg.Log.Format {
	case "text", "json":
	default:
		return nil, fmt.Errorf("config: unsupported LOG_FORMAT %q", cfg.Log.Format)
	}

	return cfg, nil
}
