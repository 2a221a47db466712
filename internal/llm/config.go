package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// defaultModels is the model used when none is configured.
var defaultModels = map[string]string{
	ProviderAnthropic:  "claude-haiku",
	ProviderOpenAI:     "gpt-4o-mini",
	ProviderGemini:     "gemini-flash",
	ProviderOpenRouter: "google/gemini-2.0-flash-exp",
}

// Config holds LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "anthropic", "openai", "gemini", "openrouter", "mock"
	Provider string
	APIKey   string
	Model    string
	BaseURL  string // Optional. Override for OpenAI-compatible APIs.

	Retry RetryConfig

	// Timeout bounds a single Generate call including retries.
	Timeout time.Duration
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultRetryConfig returns the retry policy used by NewProvider.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Second,
		MaxWait:     10 * time.Second,
		Multiplier:  2.0,
	}
}

// ConfigFromEnv builds a Config from PATHDASH_LLM_* variables. When
// PATHDASH_LLM_PROVIDER is unset it probes the standard vendor key
// variables. ok is false when no provider could be determined.
func ConfigFromEnv() (Config, bool) {
	cfg := Config{
		Retry:   DefaultRetryConfig(),
		Timeout: 60 * time.Second,
	}

	if p := os.Getenv("PATHDASH_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
		cfg.APIKey = os.Getenv("PATHDASH_LLM_API_KEY")
	} else if !cfg.discover() {
		return Config{}, false
	}

	if m := os.Getenv("PATHDASH_LLM_MODEL"); m != "" {
		cfg.Model = m
	}
	if u := os.Getenv("PATHDASH_LLM_BASE_URL"); u != "" {
		cfg.BaseURL = u
	}
	if cfg.Model == "" {
		cfg.Model = defaultModels[cfg.Provider]
	}
	return cfg, true
}

// discover probes standard API key env vars in priority order
// (Gemini → OpenAI → Anthropic → OpenRouter).
func (c *Config) discover() bool {
	probes := []struct {
		env      string
		provider string
	}{
		{"GEMINI_API_KEY", ProviderGemini},
		{"OPENAI_API_KEY", ProviderOpenAI},
		{"ANTHROPIC_API_KEY", ProviderAnthropic},
		{"OPENROUTER_API_KEY", ProviderOpenRouter},
	}
	for _, p := range probes {
		if k := os.Getenv(p.env); k != "" {
			c.Provider = p.provider
			c.APIKey = k
			return true
		}
	}
	return false
}

// Validate checks that the selected provider has what it needs.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderAnthropic, ProviderOpenAI, ProviderGemini, ProviderOpenRouter:
		if c.APIKey == "" {
			return fmt.Errorf("PATHDASH_LLM_API_KEY is required for the %s provider", c.Provider)
		}
	case ProviderMock:
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
