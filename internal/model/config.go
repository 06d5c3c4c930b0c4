package model

import "time"

// Config is the complete runtime configuration, assembled by the CLI from
// defaults, config file, environment and flags.
type Config struct {
	LLM     LLMConfig     `yaml:"llm"`
	Extract ExtractConfig `yaml:"extract"`
	Batch   BatchConfig   `yaml:"batch"`
	Server  ServerConfig  `yaml:"server"`
	Output  OutputConfig  `yaml:"output"`
}

// LLMConfig holds AI provider settings. An empty Provider disables AI
// extraction entirely; the pattern fallback then handles every document.
type LLMConfig struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string `yaml:"provider"`

	// Model name (provider-specific)
	Model string `yaml:"model"`

	// APIKey for OpenAI/Anthropic. Absence is a valid state, not an error.
	APIKey string `yaml:"api_key,omitempty"`

	// BaseURL for custom endpoints (e.g. Ollama, OpenAI-compatible proxies)
	BaseURL string `yaml:"base_url,omitempty"`

	// Timeout for API requests in seconds
	Timeout int `yaml:"timeout"`

	// MaxTokens for response generation
	MaxTokens int `yaml:"max_tokens"`

	// RequestsPerSecond throttles model calls across concurrent claims
	RequestsPerSecond float64 `yaml:"requests_per_second"`

	// Burst for the model-call rate limiter
	Burst int `yaml:"burst"`
}

// ExtractConfig controls the extraction path.
type ExtractConfig struct {
	// Fallback enables pattern-based extraction when AI is absent or fails.
	// With fallback disabled, an AI failure propagates to the caller.
	Fallback bool `yaml:"fallback"`
}

// BatchConfig controls directory batch processing.
type BatchConfig struct {
	// Concurrency is the worker count. 1 keeps documents strictly
	// sequential, which is the upstream contract.
	Concurrency int `yaml:"concurrency"`

	// OutputDir receives one result JSON per processed document when set
	OutputDir string `yaml:"output_dir,omitempty"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr"`

	// ResultTTL bounds how long processed results stay retrievable by ID
	ResultTTL time.Duration `yaml:"result_ttl"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Pretty  bool `yaml:"pretty"`
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:          "",
			Model:             "",
			Timeout:           30,
			MaxTokens:         2000,
			RequestsPerSecond: 2,
			Burst:             2,
		},
		Extract: ExtractConfig{
			Fallback: true,
		},
		Batch: BatchConfig{
			Concurrency: 1,
		},
		Server: ServerConfig{
			Addr:      ":8080",
			ResultTTL: 30 * time.Minute,
		},
		Output: OutputConfig{
			Pretty: true,
		},
	}
}
