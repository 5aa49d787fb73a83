package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name        string
		submitted   string
		canonical   string
		usedHint    bool
		wantCorrect bool
		wantScore   float64
		wantReveal  bool
	}{
		{"correct without hint", "유음화", "유음화", false, true, 2.0, false},
		{"correct with hint", "유음화", "유음화", true, true, 1.0, false},
		{"incorrect", "비음화", "유음화", false, false, 0, true},
		{"incorrect with hint", "비음화", "유음화", true, false, 0, true},
		{"surrounding whitespace is trimmed", " 유음화 ", "유음화", false, true, 2.0, false},
		{"canonical is trimmed too", "유음화", "  유음화\n", false, true, 2.0, false},
		{"inner whitespace matters", "유음 화", "유음화", false, false, 0, true},
		{"case matters", "h2o", "H2O", false, false, 0, true},
		{"numeric forms are not equated", "-4.0", "-4", false, false, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.submitted, tt.canonical, tt.usedHint, 2.0)
			assert.Equal(t, tt.wantCorrect, got.Correct)
			assert.Equal(t, tt.wantScore, got.Score)
			if tt.wantReveal {
				require.NotNil(t, got.RevealedAnswer)
				assert.Equal(t, tt.canonical, *got.RevealedAnswer)
			} else {
				assert.Nil(t, got.RevealedAnswer)
			}
		})
	}
}

func TestEvaluate_ScoreBounds(t *testing.T) {
	for _, w := range []float64{1.0, 2.0, 3.0} {
		for _, hint := range []bool{false, true} {
			ok := Evaluate("a", "a", hint, w)
			assert.Greater(t, ok.Score, 0.0)
			assert.LessOrEqual(t, ok.Score, w)

			bad := Evaluate("a", "b", hint, w)
			assert.Zero(t, bad.Score)
		}
	}
}
