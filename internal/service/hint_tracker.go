package service

import (
	"context"
	"errors"
	"time"

	"quiz-coach/internal/cache"
	"quiz-coach/internal/domain"
)

// HintTracker remembers which users opened the hint of which question.
type HintTracker interface {
	MarkViewed(ctx context.Context, userID int64, questionID string) error
	Viewed(ctx context.Context, userID int64, questionID string) (bool, error)
}

type cacheHintTracker struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewHintTracker returns a tracker backed by c whose marks expire after ttl.
// A nil cache yields a tracker that records nothing.
func NewHintTracker(c domain.Cache, ttl time.Duration) HintTracker {
	if c == nil {
		return noopHintTracker{}
	}
	return &cacheHintTracker{cache: c, ttl: ttl}
}

func (t *cacheHintTracker) MarkViewed(ctx context.Context, userID int64, questionID string) error {
	return t.cache.Set(ctx, cache.HintViewedKey(userID, questionID), "1", t.ttl)
}

func (t *cacheHintTracker) Viewed(ctx context.Context, userID int64, questionID string) (bool, error) {
	_, err := t.cache.Get(ctx, cache.HintViewedKey(userID, questionID))
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

type noopHintTracker struct{}

func (noopHintTracker) MarkViewed(context.Context, int64, string) error { return nil }

func (noopHintTracker) Viewed(context.Context, int64, string) (bool, error) { return false, nil }
