package domain

import "time"

// Difficulty is the tier a generated question is drawn at.
type Difficulty string

const (
	DifficultyHigh   Difficulty = "high"
	DifficultyMedium Difficulty = "medium"
	DifficultyLow    Difficulty = "low"
)

// Weight returns the score weight bound to the tier.
func (d Difficulty) Weight() float64 {
	switch d {
	case DifficultyHigh:
		return 3.0
	case DifficultyMedium:
		return 2.0
	case DifficultyLow:
		return 1.0
	default:
		return 0
	}
}

// Valid reports whether d is one of the three known tiers.
func (d Difficulty) Valid() bool {
	return d == DifficultyHigh || d == DifficultyMedium || d == DifficultyLow
}

// QuestionType selects the generation flow.
type QuestionType string

const (
	QuestionTypeFreeForm       QuestionType = "free_form"
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
)

// OptionCount is the fixed number of options of a multiple-choice question.
const OptionCount = 4

// Question is a generated quiz question. It is never modified after creation.
type Question struct {
	ID         string
	Subject    string
	Scope      string
	Question   string
	Options    []string // exactly OptionCount entries for multiple choice, empty otherwise
	Hint       string
	Answer     string
	Difficulty Difficulty
	Score      float64
	CreatedAt  time.Time
}

// IsMultipleChoice reports whether the question carries options.
func (q *Question) IsMultipleChoice() bool {
	return len(q.Options) > 0
}

// Validate validates the question before it is stored
func (q *Question) Validate() error {
	if q.Subject == "" {
		return NewInvalidInputError("subject is required")
	}
	if !q.Difficulty.Valid() {
		return NewInvalidInputError("unknown difficulty: " + string(q.Difficulty))
	}
	if len(q.Options) != 0 && len(q.Options) != OptionCount {
		return NewInvalidInputError("multiple choice questions need exactly 4 options")
	}
	return nil
}
