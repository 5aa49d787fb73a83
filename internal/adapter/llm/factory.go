package llm

import (
	"context"
	"fmt"

	"quiz-coach/internal/config"
	"quiz-coach/internal/domain"
)

// New builds the configured generator wrapped with the call timeout.
func New(ctx context.Context, cfg config.LLMConfig) (domain.TextGenerator, error) {
	var (
		base domain.TextGenerator
		err  error
	)
	switch cfg.Provider {
	case "gemini", "":
		base, err = NewGeminiGenerator(ctx, cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Temperature, cfg.MaxTokens)
	case "openai":
		base, err = NewOpenAIGenerator(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Temperature, cfg.MaxTokens)
	case "anthropic":
		base, err = NewAnthropicGenerator(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Temperature, cfg.MaxTokens)
	case "ollama":
		base, err = NewOllamaGenerator(cfg.BaseURL, cfg.Model, cfg.Temperature)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}
	return WithTimeout(base, cfg.Provider, cfg.Timeout), nil
}
