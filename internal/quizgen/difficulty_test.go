package quizgen_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"quiz-coach/internal/domain"
	"quiz-coach/internal/quizgen"
)

func TestDifficultyFor(t *testing.T) {
	tests := []struct {
		u      float64
		want   domain.Difficulty
		weight float64
	}{
		{0.0, domain.DifficultyHigh, 3.0},
		{0.1999, domain.DifficultyHigh, 3.0},
		{0.2, domain.DifficultyMedium, 2.0},
		{0.5999, domain.DifficultyMedium, 2.0},
		{0.6, domain.DifficultyLow, 1.0},
		{0.9999, domain.DifficultyLow, 1.0},
	}
	for _, tt := range tests {
		got := quizgen.DifficultyFor(tt.u)
		assert.Equal(t, tt.want, got, "u=%v", tt.u)
		assert.Equal(t, tt.weight, got.Weight(), "u=%v", tt.u)
	}
}

func TestDifficultySelector_InjectedSource(t *testing.T) {
	sel := quizgen.NewDifficultySelector(quizgen.RandFunc(func() float64 { return 0.25 }))
	d, w := sel.Select()
	assert.Equal(t, domain.DifficultyMedium, d)
	assert.Equal(t, 2.0, w)
}

func TestDifficultySelector_Distribution(t *testing.T) {
	sel := quizgen.NewDifficultySelector(rand.New(rand.NewPCG(42, 1024)))

	const draws = 100000
	counts := map[domain.Difficulty]int{}
	for i := 0; i < draws; i++ {
		d, w := sel.Select()
		assert.Equal(t, d.Weight(), w)
		counts[d]++
	}

	assert.InDelta(t, 0.2, float64(counts[domain.DifficultyHigh])/draws, 0.01)
	assert.InDelta(t, 0.4, float64(counts[domain.DifficultyMedium])/draws, 0.01)
	assert.InDelta(t, 0.4, float64(counts[domain.DifficultyLow])/draws, 0.01)
}

func TestNewDifficultySelector_DefaultSource(t *testing.T) {
	sel := quizgen.NewDifficultySelector(nil)
	for i := 0; i < 100; i++ {
		d, _ := sel.Select()
		assert.True(t, d.Valid())
	}
}
