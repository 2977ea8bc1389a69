// Package config provides environment-driven configuration for the
// service and CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultHost            = "0.0.0.0"
	DefaultPort            = 5000
	DefaultMaxFileSize     = 16 << 20
	DefaultProviderTimeout = 60 * time.Second
	DefaultFuzzyThreshold  = 0.8
	DefaultLogLevel        = "info"
)

// Config holds the runtime configuration. Provider keys are optional:
// with neither key set the service runs in fallback-only mode and still
// produces letters from the deterministic template.
type Config struct {
	Host string
	Port int

	GeminiAPIKey string
	OpenAIAPIKey string

	MaxFileSize     int64
	AllowedOrigins  []string
	ProviderTimeout time.Duration
	FuzzyThreshold  float64

	LogLevel string
	LogJSON  bool
}

// Load reads configuration from the environment, applying defaults for
// anything unset.
func Load() (*Config, error) {
	cfg := &Config{
		Host:            envOr("HOST", DefaultHost),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		LogLevel:        envOr("LOG_LEVEL", DefaultLogLevel),
		LogJSON:         envBool("LOG_JSON"),
		AllowedOrigins:  splitOrigins(os.Getenv("ALLOWED_ORIGINS")),
		MaxFileSize:     DefaultMaxFileSize,
		ProviderTimeout: DefaultProviderTimeout,
		FuzzyThreshold:  DefaultFuzzyThreshold,
		Port:            DefaultPort,
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("MAX_FILE_SIZE"); v != "" {
		size, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_FILE_SIZE %q: %w", v, err)
		}
		cfg.MaxFileSize = size
	}
	if v := os.Getenv("PROVIDER_TIMEOUT"); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PROVIDER_TIMEOUT %q: %w", v, err)
		}
		cfg.ProviderTimeout = timeout
	}
	if v := os.Getenv("FUZZY_THRESHOLD"); v != "" {
		threshold, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid FUZZY_THRESHOLD %q: %w", v, err)
		}
		cfg.FuzzyThreshold = threshold
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	if c.MaxFileSize <= 0 {
		return fmt.Errorf("config error: max file size must be positive")
	}
	if c.ProviderTimeout <= 0 {
		return fmt.Errorf("config error: provider timeout must be positive")
	}
	if c.FuzzyThreshold <= 0 || c.FuzzyThreshold > 1 {
		return fmt.Errorf("config error: fuzzy threshold must be in (0, 1]")
	}
	return nil
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// HasProvider reports whether any LLM provider key is configured.
func (c *Config) HasProvider() bool {
	return c.GeminiAPIKey != "" || c.OpenAIAPIKey != ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "1" || v == "true" || v == "yes"
}

func splitOrigins(v string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
