package domain

import "time"

// AnswerRecord is one immutable answer submission. Resubmissions create new records.
type AnswerRecord struct {
	ID         int64
	UserID     int64
	QuestionID string
	Answer     string
	UsedHint   bool
	Correct    bool
	Score      float64
	AnsweredAt time.Time
}

// AnswerFilter narrows ListAnswers. Zero values mean "no constraint".
type AnswerFilter struct {
	UserID     *int64
	QuestionID string
}
