package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/pathdash/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry and
// logging middleware. Calls are recorded to events when it is non-nil.
func NewProvider(ctx context.Context, cfg Config, events store.LLMEventRepo) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg)
	case ProviderMock:
		return NewMockProvider(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// caller → timeout → retry → logging → base
	var p Provider = WithLogging(base, cfg.Provider, events)
	p = WithRetry(p, cfg.Retry)
	if cfg.Timeout > 0 {
		p = WithTimeout(p, cfg.Timeout)
	}
	return p, nil
}

// NewProviderFromEnv builds a provider from environment configuration.
func NewProviderFromEnv(ctx context.Context, events store.LLMEventRepo) (Provider, error) {
	cfg, ok := ConfigFromEnv()
	if !ok {
		return nil, fmt.Errorf("no LLM provider configured (set PATHDASH_LLM_PROVIDER or a vendor API key)")
	}
	return NewProvider(ctx, cfg, events)
}
