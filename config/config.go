// Package config loads service configuration from config.yaml and the
// environment, with environment variables taking precedence.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/viper"
)

// Config holds the service-level configuration.
type Config struct {
	HTTPAddr        string        `mapstructure:"http_addr"`
	MaxUploadBytes  int64         `mapstructure:"max_upload_bytes"`
	OCRLanguage     string        `mapstructure:"ocr_language"`
	FrontendOrigin  string        `mapstructure:"frontend_origin"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	LogLevel        string        `mapstructure:"log_level"`
}

// Load reads config.yaml from the given path (if present) and applies
// environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.SetEnvPrefix("pdfcompare")
	v.AutomaticEnv()

	v.SetDefault("http_addr", ":8000")
	v.SetDefault("max_upload_bytes", int64(10*1024*1024))
	v.SetDefault("ocr_language", "eng")
	v.SetDefault("frontend_origin", "http://localhost:8501")
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("log_level", "info")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		// No file is fine; defaults plus environment apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// SlogLevel maps the configured log level onto a slog level, defaulting to
// Info for unknown values.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
