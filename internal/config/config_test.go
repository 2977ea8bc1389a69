package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultHost, cfg.Host)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, int64(DefaultMaxFileSize), cfg.MaxFileSize)
	assert.Equal(t, DefaultProviderTimeout, cfg.ProviderTimeout)
	assert.Equal(t, DefaultFuzzyThreshold, cfg.FuzzyThreshold)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogJSON)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "8080")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("MAX_FILE_SIZE", "1048576")
	t.Setenv("PROVIDER_TIMEOUT", "90s")
	t.Setenv("FUZZY_THRESHOLD", "0.9")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LOG_JSON", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.Equal(t, "g-key", cfg.GeminiAPIKey)
	assert.True(t, cfg.HasProvider())
	assert.Equal(t, int64(1048576), cfg.MaxFileSize)
	assert.Equal(t, 90*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, 0.9, cfg.FuzzyThreshold)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.True(t, cfg.LogJSON)
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"Bad port", "PORT", "not-a-number"},
		{"Port out of range", "PORT", "70000"},
		{"Bad file size", "MAX_FILE_SIZE", "huge"},
		{"Bad timeout", "PROVIDER_TIMEOUT", "soon"},
		{"Bad threshold", "FUZZY_THRESHOLD", "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestHasProvider(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.HasProvider())
	cfg.OpenAIAPIKey = "o-key"
	assert.True(t, cfg.HasProvider())
}
