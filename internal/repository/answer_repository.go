package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"quiz-coach/internal/domain"
	"quiz-coach/internal/repository/models"
	"quiz-coach/internal/util"
)

var answerInsertColumns = []string{"user_id", "question_id", "user_answer", "used_hint", "is_correct", "score", "answered_at"}

// AnswerRepository implements domain.AnswerRepository using sqlx.
type AnswerRepository struct {
	db *sqlx.DB
}

func NewAnswerRepository(db *sqlx.DB) *AnswerRepository {
	return &AnswerRepository{db: db}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func toDomainAnswer(m *models.UserAnswer) *domain.AnswerRecord {
	return &domain.AnswerRecord{
		ID:         m.ID,
		UserID:     m.UserID,
		QuestionID: strconv.FormatInt(m.QuestionID, 10),
		Answer:     m.UserAnswer.String,
		UsedHint:   m.UsedHint != 0,
		Correct:    m.IsCorrect != 0,
		Score:      m.Score,
		AnsweredAt: m.AnsweredAt,
	}
}

// RecordAnswer appends a submission and sets its ID and AnsweredAt.
func (r *AnswerRepository) RecordAnswer(ctx context.Context, a *domain.AnswerRecord) error {
	questionKey, ok := parseID(a.QuestionID)
	if !ok {
		return domain.NewQuestionNotFoundError(a.QuestionID)
	}
	if a.AnsweredAt.IsZero() {
		a.AnsweredAt = time.Now().UTC()
	}
	exec := GetExecutor(ctx, r.db)
	id, err := insertReturningID(ctx, exec, r.db.DriverName(), "user_answers", answerInsertColumns,
		a.UserID,
		questionKey,
		util.StringToNullString(a.Answer),
		boolToInt(a.UsedHint),
		boolToInt(a.Correct),
		a.Score,
		a.AnsweredAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record answer: %w", err)
	}
	a.ID = id
	return nil
}

// ListAnswers returns the answers matching filter in insertion order.
func (r *AnswerRepository) ListAnswers(ctx context.Context, filter domain.AnswerFilter) ([]*domain.AnswerRecord, error) {
	var (
		conds []string
		args  []interface{}
	)
	if filter.UserID != nil {
		conds = append(conds, "user_id = ?")
		args = append(args, *filter.UserID)
	}
	if filter.QuestionID != "" {
		key, ok := parseID(filter.QuestionID)
		if !ok {
			return []*domain.AnswerRecord{}, nil
		}
		conds = append(conds, "question_id = ?")
		args = append(args, key)
	}

	query := "SELECT id, user_id, question_id, user_answer, used_hint, is_correct, score, answered_at FROM user_answers"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id"

	exec := GetExecutor(ctx, r.db)
	var rows []models.UserAnswer
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list answers: %w", err)
	}
	out := make([]*domain.AnswerRecord, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainAnswer(&rows[i]))
	}
	return out, nil
}
