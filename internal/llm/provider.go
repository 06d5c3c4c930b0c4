package llm

import (
	"context"
	"errors"
)

// ErrUnavailable indicates no provider is configured or client
// initialization failed. Callers treat it as the signal to fall back to
// pattern extraction.
var ErrUnavailable = errors.New("llm provider unavailable")

// Provider defines the interface for language-model services. The core only
// needs a single operation: send a prompt, receive the raw completion text.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Generate sends a prompt and returns the model's raw text reply
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g. Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens limits the response length
	MaxTokens int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Model:     "",
		Timeout:   30,
		MaxTokens: 2000,
	}
}

// systemPrompt anchors every extraction request.
const systemPrompt = "You are an insurance claims processing assistant that extracts structured data from FNOL documents and replies with JSON only."
