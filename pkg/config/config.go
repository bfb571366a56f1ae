// Package config loads service settings from the environment, an optional
// .env file and an optional config file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	BackendMemory   = "memory"
	BackendDynamoDB = "dynamodb"
)

// Config holds everything the binaries need to wire a savings service.
type Config struct {
	HTTPPort       string
	StorageBackend string
	TablePrefix    string
	MaxRetries     int
	EventsQueueURL string
	LogLevel       slog.Level
	AutoRepair     bool
}

// Defaults registers the default value of every setting on v.
func Defaults(v *viper.Viper) {
	v.SetDefault("http_port", "8080")
	v.SetDefault("storage_backend", BackendMemory)
	v.SetDefault("table_prefix", "pooled-savings-")
	v.SetDefault("max_retries", 5)
	v.SetDefault("events_queue_url", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("auto_repair", false)
}

// New returns a viper instance with defaults that reads settings from
// environment variables such as STORAGE_BACKEND or MAX_RETRIES.
func New() *viper.Viper {
	v := viper.New()
	Defaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads a .env file if present and builds a Config from the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}
	return FromViper(New())
}

// FromViper validates the settings held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		HTTPPort:       v.GetString("http_port"),
		StorageBackend: strings.ToLower(v.GetString("storage_backend")),
		TablePrefix:    v.GetString("table_prefix"),
		MaxRetries:     v.GetInt("max_retries"),
		EventsQueueURL: v.GetString("events_queue_url"),
		AutoRepair:     v.GetBool("auto_repair"),
	}

	switch cfg.StorageBackend {
	case BackendMemory, BackendDynamoDB:
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
	if cfg.MaxRetries < 0 {
		return nil, errors.New("max_retries must not be negative")
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("log_level"))); err != nil {
		return nil, fmt.Errorf("invalid log_level: %w", err)
	}
	return cfg, nil
}
