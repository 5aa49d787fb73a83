package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"quiz-coach/internal/domain"
	"quiz-coach/internal/repository/models"
)

const listSharedQuery = `SELECT s.id AS shared_id, s.shared_at,
       q.id, q.subject, q.scope, q.question, q.options, q.hint, q.answer, q.difficulty, q.score, q.created_at
FROM shared_questions s
JOIN questions q ON q.id = s.question_id`

// SharedQuestionRepository implements domain.SharedQuestionRepository using sqlx.
type SharedQuestionRepository struct {
	db *sqlx.DB
}

func NewSharedQuestionRepository(db *sqlx.DB) *SharedQuestionRepository {
	return &SharedQuestionRepository{db: db}
}

// ShareQuestion appends a share entry for questionID.
func (r *SharedQuestionRepository) ShareQuestion(ctx context.Context, questionID string) (*domain.SharedQuestion, error) {
	key, ok := parseID(questionID)
	if !ok {
		return nil, domain.NewQuestionNotFoundError(questionID)
	}
	sharedAt := time.Now().UTC()
	exec := GetExecutor(ctx, r.db)
	id, err := insertReturningID(ctx, exec, r.db.DriverName(), "shared_questions", []string{"question_id", "shared_at"}, key, sharedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to share question %s: %w", questionID, err)
	}
	return &domain.SharedQuestion{ID: id, QuestionID: questionID, SharedAt: sharedAt}, nil
}

// ListShared returns share entries with their questions, newest first.
func (r *SharedQuestionRepository) ListShared(ctx context.Context, filter domain.SharedFilter) ([]*domain.SharedQuestion, error) {
	query := listSharedQuery
	var args []interface{}
	if filter.Subject != "" {
		query += "\nWHERE q.subject = ?"
		args = append(args, filter.Subject)
	}
	query += "\nORDER BY s.shared_at DESC, s.id DESC"

	exec := GetExecutor(ctx, r.db)
	var rows []models.SharedQuestionRow
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list shared questions: %w", err)
	}

	out := make([]*domain.SharedQuestion, 0, len(rows))
	for i := range rows {
		q := toDomainQuestion(&rows[i].Question)
		out = append(out, &domain.SharedQuestion{
			ID:         rows[i].SharedID,
			QuestionID: q.ID,
			SharedAt:   rows[i].SharedAt,
			Question:   q,
		})
	}
	return out, nil
}
