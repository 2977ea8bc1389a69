// Package llm provides centralized LLM configuration and client abstractions.
// This package enables easy switching between providers without touching the
// generation pipeline.
package llm

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider
	ProviderOpenAI Provider = "openai"
)

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Model    string
	// Temperature applied to every completion. Low values keep the
	// letter output consistent across retries.
	Temperature float32
	// MaxTokens caps the completion length for providers that require
	// an explicit limit.
	MaxTokens int
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider:    ProviderGemini,
		Model:       "gemini-2.5-pro",
		Temperature: 0.1,
		MaxTokens:   4000,
	}
}

// DefaultOpenAIConfig returns the default OpenAI configuration
func DefaultOpenAIConfig() *Config {
	return &Config{
		Provider:    ProviderOpenAI,
		Model:       "gpt-4o",
		Temperature: 0.1,
		MaxTokens:   4000,
	}
}
