package llm

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotConfigured is returned when no provider API key is available.
// Callers treat it as a signal to use the deterministic fallback rather
// than as a failure.
var ErrNotConfigured = errors.New("no LLM provider configured")

// Client is an abstraction over LLM providers
type Client interface {
	// Complete generates a text completion for the prompt
	Complete(ctx context.Context, prompt string) (string, error)
	// Model returns the underlying provider model name
	Model() string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if apiKey == "" {
		return nil, ErrNotConfigured
	}

	switch config.Provider {
	case ProviderOpenAI:
		return NewOpenAIClient(config, apiKey)
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", config.Provider)
	}
}
