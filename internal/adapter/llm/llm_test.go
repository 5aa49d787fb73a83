package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiz-coach/internal/config"
)

const reply = "문제: 다음에서 사용된 음운의 변동은?\n힌트: ㄴ이 ㄹ로\n정답: 유음화"

func TestStripThinkBlock(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no block", "  문제: q  ", "문제: q"},
		{"leading block", "<think>reasoning\nmore</think>\n문제: q", "문제: q"},
		{"unterminated block", "<think>reasoning 문제: q", "<think>reasoning 문제: q"},
		{"close before open", "</think>x<think>", "</think>x<think>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripThinkBlock(tt.in))
		})
	}
}

func TestOpenAIGenerator_Generate(t *testing.T) {
	var gotPrompt string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if len(body.Messages) > 0 {
			gotPrompt = body.Messages[0].Content
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1234567890,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"index":         0,
					"message":       map[string]any{"role": "assistant", "content": reply},
					"finish_reason": "stop",
				},
			},
		})
	}))
	defer server.Close()

	g, err := NewOpenAIGenerator("test-key", server.URL+"/v1", "gpt-4o-mini", 0.7, 256)
	require.NoError(t, err)

	text, err := g.Generate(context.Background(), "prompt text")
	require.NoError(t, err)
	assert.Equal(t, reply, text)
	assert.Equal(t, "prompt text", gotPrompt)
}

func TestOpenAIGenerator_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "boom", "type": "server_error"},
		})
	}))
	defer server.Close()

	g, err := NewOpenAIGenerator("test-key", server.URL+"/v1", "gpt-4o-mini", 0, 0)
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), "prompt")
	assert.Error(t, err)
}

func TestAnthropicGenerator_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":   "msg_test",
			"type": "message",
			"role": "assistant",
			"content": []map[string]any{
				{"type": "text", "text": reply},
			},
			"model":       "claude-haiku-4-5",
			"stop_reason": "end_turn",
			"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
		})
	}))
	defer server.Close()

	g, err := NewAnthropicGenerator("test-key", server.URL, "claude-haiku-4-5", 0.5, 0)
	require.NoError(t, err)

	text, err := g.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, reply, text)
}

func TestGeminiGenerator_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.Contains(r.URL.Path, "gemini-2.0-flash:generateContent"), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{
					"content": map[string]any{
						"role":  "model",
						"parts": []map[string]any{{"text": reply}},
					},
					"finishReason": "STOP",
				},
			},
		})
	}))
	defer server.Close()

	g, err := NewGeminiGenerator(context.Background(), "test-key", server.URL, "gemini-2.0-flash", 0.7, 256)
	require.NoError(t, err)

	text, err := g.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, reply, text)
}

type stubGenerator struct {
	text  string
	err   error
	delay time.Duration
}

func (s stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return s.text, s.err
}

func TestTimedGenerator(t *testing.T) {
	t.Run("passes through", func(t *testing.T) {
		g := WithTimeout(stubGenerator{text: reply}, "stub", time.Second)
		text, err := g.Generate(context.Background(), "p")
		require.NoError(t, err)
		assert.Equal(t, reply, text)
	})

	t.Run("times out", func(t *testing.T) {
		g := WithTimeout(stubGenerator{text: reply, delay: time.Second}, "stub", 10*time.Millisecond)
		_, err := g.Generate(context.Background(), "p")
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("propagates failure", func(t *testing.T) {
		boom := errors.New("boom")
		g := WithTimeout(stubGenerator{err: boom}, "stub", 0)
		_, err := g.Generate(context.Background(), "p")
		assert.ErrorIs(t, err, boom)
	})
}

func TestNew(t *testing.T) {
	_, err := New(context.Background(), config.LLMConfig{Provider: "parrot"})
	assert.ErrorContains(t, err, "unknown LLM provider")

	_, err = New(context.Background(), config.LLMConfig{Provider: "openai"})
	assert.ErrorContains(t, err, "API key is required")

	g, err := New(context.Background(), config.LLMConfig{Provider: "anthropic", APIKey: "k", Model: "claude-haiku-4-5", Timeout: time.Second})
	require.NoError(t, err)
	assert.IsType(t, &TimedGenerator{}, g)
}
