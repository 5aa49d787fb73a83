package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"

	"quiz-coach/internal/domain"
	"quiz-coach/internal/repository/models"
	"quiz-coach/internal/util"
)

const questionColumns = "id, subject, scope, question, options, hint, answer, difficulty, score, created_at"

var questionInsertColumns = []string{"subject", "scope", "question", "options", "hint", "answer", "difficulty", "score", "created_at"}

// QuestionRepository implements domain.QuestionRepository using sqlx.
type QuestionRepository struct {
	db *sqlx.DB
}

func NewQuestionRepository(db *sqlx.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

func toDomainQuestion(m *models.Question) *domain.Question {
	if m == nil {
		return nil
	}
	var options []string
	if len(m.Options) > 0 {
		options = []string(m.Options)
	}
	return &domain.Question{
		ID:         strconv.FormatInt(m.ID, 10),
		Subject:    m.Subject,
		Scope:      m.Scope,
		Question:   m.Question,
		Options:    options,
		Hint:       m.Hint.String,
		Answer:     m.Answer.String,
		Difficulty: domain.Difficulty(m.Difficulty),
		Score:      m.Score,
		CreatedAt:  m.CreatedAt,
	}
}

// parseID converts a question id to its SQL key. ok is false for ids this store never issued.
func parseID(id string) (int64, bool) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// CreateQuestion inserts q and sets its ID and CreatedAt.
func (r *QuestionRepository) CreateQuestion(ctx context.Context, q *domain.Question) error {
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now().UTC()
	}
	exec := GetExecutor(ctx, r.db)
	id, err := insertReturningID(ctx, exec, r.db.DriverName(), "questions", questionInsertColumns,
		q.Subject,
		q.Scope,
		q.Question,
		models.StringSlice(q.Options),
		util.StringToNullString(q.Hint),
		util.StringToNullString(q.Answer),
		string(q.Difficulty),
		q.Score,
		q.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	q.ID = strconv.FormatInt(id, 10)
	return nil
}

// GetQuestion returns (nil, nil) when no question has the given id.
func (r *QuestionRepository) GetQuestion(ctx context.Context, id string) (*domain.Question, error) {
	key, ok := parseID(id)
	if !ok {
		return nil, nil
	}
	exec := GetExecutor(ctx, r.db)
	var m models.Question
	query := exec.Rebind("SELECT " + questionColumns + " FROM questions WHERE id = ?")
	if err := exec.GetContext(ctx, &m, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question %s: %w", id, err)
	}
	return toDomainQuestion(&m), nil
}

// GetQuestions loads the questions with the given ids, keyed by id. Unknown ids are absent.
func (r *QuestionRepository) GetQuestions(ctx context.Context, ids []string) (map[string]*domain.Question, error) {
	out := make(map[string]*domain.Question, len(ids))
	keys := make([]int64, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if key, ok := parseID(id); ok {
			if _, dup := seen[key]; !dup {
				seen[key] = struct{}{}
				keys = append(keys, key)
			}
		}
	}
	if len(keys) == 0 {
		return out, nil
	}

	query, args, err := sqlx.In("SELECT "+questionColumns+" FROM questions WHERE id IN (?)", keys)
	if err != nil {
		return nil, fmt.Errorf("failed to build questions query: %w", err)
	}
	exec := GetExecutor(ctx, r.db)
	var rows []models.Question
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}
	for i := range rows {
		q := toDomainQuestion(&rows[i])
		out[q.ID] = q
	}
	return out, nil
}
