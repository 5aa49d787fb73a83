package dto

import (
	"time"

	"quiz-coach/internal/domain"
)

// GenerateQuestionRequest asks for one new question.
// @Description Request body for question generation
type GenerateQuestionRequest struct {
	Subject string `json:"subject" example:"국어"` // 과목
	Scope   string `json:"scope" example:"음운"`   // 범위
}

// QuestionResponse is a generated or stored question.
// @Description Question information
type QuestionResponse struct {
	QuestionID     string   `json:"question_id"`
	Question       string   `json:"question"`
	Options        []string `json:"options"` // four entries for multiple choice, empty otherwise
	Hint           string   `json:"hint"`
	Answer         string   `json:"answer"`
	Difficulty     string   `json:"difficulty" example:"중"` // locale label
	DifficultyCode string   `json:"difficulty_code" example:"medium"`
	Score          float64  `json:"score" example:"2"`
}

// DifficultyLabeler renders a tier for display.
type DifficultyLabeler interface {
	DifficultyLabel(d domain.Difficulty) string
}

// NewQuestionResponse renders q with the tier label from labels, or the bare
// code when labels is nil. Options is never null in JSON.
func NewQuestionResponse(q *domain.Question, labels DifficultyLabeler) QuestionResponse {
	options := q.Options
	if options == nil {
		options = []string{}
	}
	label := string(q.Difficulty)
	if labels != nil {
		label = labels.DifficultyLabel(q.Difficulty)
	}
	return QuestionResponse{
		QuestionID:     q.ID,
		Question:       q.Question,
		Options:        options,
		Hint:           q.Hint,
		Answer:         q.Answer,
		Difficulty:     label,
		DifficultyCode: string(q.Difficulty),
		Score:          q.Score,
	}
}

// QuestionRefRequest names a question on behalf of a user (hint, show-answer, share).
type QuestionRefRequest struct {
	UserID     int64  `json:"user_id" example:"1001"`
	QuestionID string `json:"question_id" example:"42"`
}

// SubmitAnswerRequest is one answer submission.
// @Description Request body for answer submission
type SubmitAnswerRequest struct {
	UserID     int64  `json:"user_id" example:"1001"`
	QuestionID string `json:"question_id" example:"42"`
	Answer     string `json:"answer" example:"실라"`
	UsedHint   bool   `json:"used_hint"`
}

// SubmitAnswerResponse reports the evaluation. Answer is null when the submission was correct.
type SubmitAnswerResponse struct {
	Correct bool    `json:"correct"`
	Score   float64 `json:"score"`
	Answer  *string `json:"answer"`
}

type HintResponse struct {
	Hint string `json:"hint"`
}

type ShowAnswerResponse struct {
	Answer string `json:"answer"`
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// SharedQuestionResponse is one share entry with its question inlined.
type SharedQuestionResponse struct {
	SharedID int64  `json:"shared_id"`
	SharedAt string `json:"shared_at" example:"2025-03-02T09:00:00Z"`
	QuestionResponse
}

func NewSharedQuestionResponse(s *domain.SharedQuestion, labels DifficultyLabeler) SharedQuestionResponse {
	resp := SharedQuestionResponse{
		SharedID: s.ID,
		SharedAt: s.SharedAt.UTC().Format(time.RFC3339),
	}
	if s.Question != nil {
		resp.QuestionResponse = NewQuestionResponse(s.Question, labels)
	} else {
		resp.QuestionResponse = QuestionResponse{QuestionID: s.QuestionID, Options: []string{}}
	}
	return resp
}

// HealthResponse reports dependency reachability.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}
