package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

const (
	thinkOpen  = "<think>"
	thinkClose = "</think>"
)

// OllamaGenerator calls a local Ollama server through langchaingo.
type OllamaGenerator struct {
	llm         llms.Model
	temperature float64
}

func NewOllamaGenerator(serverURL, model string, temperature float64) (*OllamaGenerator, error) {
	if model == "" {
		return nil, fmt.Errorf("ollama model name cannot be empty")
	}
	opts := []ollama.Option{ollama.WithModel(model)}
	if serverURL != "" {
		opts = append(opts, ollama.WithServerURL(serverURL))
	}
	client, err := ollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create ollama client: %w", err)
	}
	return &OllamaGenerator{llm: client, temperature: temperature}, nil
}

func (g *OllamaGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	response, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt, llms.WithTemperature(g.temperature))
	if err != nil {
		return "", fmt.Errorf("ollama call failed: %w", err)
	}
	return StripThinkBlock(response), nil
}

// StripThinkBlock removes a leading reasoning block emitted by qwen-style models.
func StripThinkBlock(s string) string {
	cleaned := strings.TrimSpace(s)
	start := strings.Index(cleaned, thinkOpen)
	if start == -1 {
		return cleaned
	}
	end := strings.Index(cleaned, thinkClose)
	if end == -1 || end < start {
		return cleaned
	}
	return strings.TrimSpace(cleaned[:start] + cleaned[end+len(thinkClose):])
}
