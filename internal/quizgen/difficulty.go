package quizgen

import (
	"math/rand/v2"
	"sync"

	"quiz-coach/internal/domain"
)

// Cumulative draw thresholds: 20% high, 40% medium, 40% low.
const (
	highThreshold   = 0.2
	mediumThreshold = 0.6
)

// RandSource yields uniform draws in [0, 1). *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// RandFunc adapts a plain function to RandSource.
type RandFunc func() float64

func (f RandFunc) Float64() float64 { return f() }

// DifficultySelector draws a difficulty tier for each generated question.
// Select is safe for concurrent use even when src is not.
type DifficultySelector struct {
	mu  sync.Mutex
	src RandSource
}

// NewDifficultySelector returns a selector over src, or over the global
// math/rand/v2 source when src is nil.
func NewDifficultySelector(src RandSource) *DifficultySelector {
	if src == nil {
		src = RandFunc(rand.Float64)
	}
	return &DifficultySelector{src: src}
}

// Select draws one tier and returns it with its score weight.
func (s *DifficultySelector) Select() (domain.Difficulty, float64) {
	s.mu.Lock()
	u := s.src.Float64()
	s.mu.Unlock()
	d := DifficultyFor(u)
	return d, d.Weight()
}

// DifficultyFor maps a draw u in [0, 1) to its tier.
func DifficultyFor(u float64) domain.Difficulty {
	switch {
	case u < highThreshold:
		return domain.DifficultyHigh
	case u < mediumThreshold:
		return domain.DifficultyMedium
	default:
		return domain.DifficultyLow
	}
}
