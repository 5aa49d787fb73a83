package scoring

import "strings"

// HintPenalty is the fraction of the weight awarded for a correct answer given after a hint.
const HintPenalty = 0.5

// Evaluation is the outcome of checking one submission.
type Evaluation struct {
	Correct bool
	Score   float64
	// RevealedAnswer is the canonical answer, set only for incorrect submissions.
	RevealedAnswer *string
}

// Evaluate compares submitted against canonical after trimming surrounding
// whitespace on both sides. No other normalization is applied.
func Evaluate(submitted, canonical string, usedHint bool, weight float64) Evaluation {
	if strings.TrimSpace(submitted) != strings.TrimSpace(canonical) {
		answer := canonical
		return Evaluation{Correct: false, Score: 0, RevealedAnswer: &answer}
	}
	score := weight
	if usedHint {
		score = weight * HintPenalty
	}
	return Evaluation{Correct: true, Score: score}
}
