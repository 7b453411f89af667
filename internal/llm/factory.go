package llm

import (
	"context"
	"fmt"

	"github.com/harjot/proton/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with model-call
// logging. There is no retry middleware: answer resolution fails fast and
// the conversation continues; only the diagram providers retry.
func NewProvider(ctx context.Context, cfg Config, calls store.ModelCallRepo) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "groq":
		base, err = NewGroqProvider(cfg.Groq)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown model provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithLogging(base, calls), nil
}

// NewProviderFromEnv builds a provider from PROTON_* env vars, falling back
// to discovery of standard key variables.
func NewProviderFromEnv(ctx context.Context, calls store.ModelCallRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if cfg.Validate() != nil {
		if discovered, ok := DiscoverConfig(); ok {
			cfg = discovered
		}
	}
	return NewProvider(ctx, cfg, calls)
}
