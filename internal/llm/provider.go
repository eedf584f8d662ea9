package llm

import (
	"context"
	"fmt"

	"rental-planner/internal/config"
)

// noopCloser lets providers without resources satisfy Closer.
type noopCloser struct{}

func (noopCloser) Close() error { return nil }

// NewFromConfig builds the TextGenerator selected by cfg.LLMProvider. The
// returned Closer must be closed on shutdown.
func NewFromConfig(ctx context.Context, cfg *config.Config) (TextGenerator, Closer, error) {
	switch cfg.LLMProvider {
	case config.ProviderGemini:
		c, err := NewGeminiClient(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return c, c, nil
	case config.ProviderGroq:
		return NewGroqClient(cfg), noopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported llm provider %q", cfg.LLMProvider)
	}
}
