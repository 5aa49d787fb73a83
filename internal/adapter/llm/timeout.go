package llm

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"quiz-coach/internal/domain"
	"quiz-coach/internal/logger"
)

// TimedGenerator bounds every call with a timeout and logs its outcome.
type TimedGenerator struct {
	inner    domain.TextGenerator
	provider string
	timeout  time.Duration
}

// WithTimeout wraps g. A non-positive timeout leaves calls bounded only by the caller's context.
func WithTimeout(g domain.TextGenerator, provider string, timeout time.Duration) *TimedGenerator {
	return &TimedGenerator{inner: g, provider: provider, timeout: timeout}
}

func (t *TimedGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	l := logger.Get()
	start := time.Now()
	text, err := t.inner.Generate(ctx, prompt)
	elapsed := time.Since(start)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			l.Warn("LLM request timed out", zap.String("provider", t.provider), zap.Duration("elapsed", elapsed), zap.Error(err))
		} else {
			l.Warn("LLM request failed", zap.String("provider", t.provider), zap.Duration("elapsed", elapsed), zap.Error(err))
		}
		return "", err
	}
	l.Debug("LLM request completed",
		zap.String("provider", t.provider),
		zap.Duration("elapsed", elapsed),
		zap.Int("response_len", len(text)))
	return text, nil
}
