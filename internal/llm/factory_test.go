package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearLLMEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PATHDASH_LLM_PROVIDER", "PATHDASH_LLM_API_KEY", "PATHDASH_LLM_MODEL", "PATHDASH_LLM_BASE_URL",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv_NothingSet(t *testing.T) {
	clearLLMEnv(t)
	_, ok := ConfigFromEnv()
	assert.False(t, ok)
}

func TestConfigFromEnv_Explicit(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("PATHDASH_LLM_PROVIDER", "openai")
	t.Setenv("PATHDASH_LLM_API_KEY", "sk-test")
	t.Setenv("PATHDASH_LLM_BASE_URL", "http://localhost:8080/v1")

	cfg, ok := ConfigFromEnv()
	require.True(t, ok)
	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, "http://localhost:8080/v1", cfg.BaseURL)
	assert.Equal(t, 60*time.Second, cfg.Timeout)
}

func TestConfigFromEnv_DiscoveryOrder(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "a")
	t.Setenv("OPENAI_API_KEY", "o")

	cfg, ok := ConfigFromEnv()
	require.True(t, ok)
	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "o", cfg.APIKey)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, Config{Provider: ProviderMock}.Validate())
	assert.Error(t, Config{Provider: ProviderGemini}.Validate())
	assert.Error(t, Config{Provider: "llama"}.Validate())
}

func TestNewProvider_Mock(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: ProviderMock}, nil)
	require.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())
}

func TestNewProvider_WrapsMiddleware(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{
		Provider: ProviderOpenAI,
		APIKey:   "sk-test",
		Model:    "gpt-4o",
		Retry:    DefaultRetryConfig(),
		Timeout:  time.Second,
	}, nil)
	require.NoError(t, err)
	_, ok := p.(*TimeoutProvider)
	assert.True(t, ok)
	assert.Equal(t, "gpt-4o", p.ModelID())
}

func TestPurposeFrom(t *testing.T) {
	assert.Equal(t, "unknown", PurposeFrom(context.Background()))
	assert.Equal(t, "chapter", PurposeFrom(WithPurpose(context.Background(), "chapter")))
}

func TestTimeoutProvider_SetsDeadline(t *testing.T) {
	var sawDeadline bool
	inner := providerFunc(func(ctx context.Context, _ Request) (*Response, error) {
		_, sawDeadline = ctx.Deadline()
		return &Response{Text: "ok"}, nil
	})
	_, err := WithTimeout(inner, time.Minute).Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.True(t, sawDeadline)
}

type providerFunc func(context.Context, Request) (*Response, error)

func (f providerFunc) Generate(ctx context.Context, req Request) (*Response, error) {
	return f(ctx, req)
}

func (f providerFunc) ModelID() string { return "func" }
