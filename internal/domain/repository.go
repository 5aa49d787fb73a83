package domain

import "context"

// QuestionRepository stores generated questions.
// GetQuestion returns (nil, nil) when the id is unknown.
type QuestionRepository interface {
	CreateQuestion(ctx context.Context, q *Question) error
	GetQuestion(ctx context.Context, id string) (*Question, error)
	GetQuestions(ctx context.Context, ids []string) (map[string]*Question, error)
}

// AnswerRepository is the create-only answer log.
type AnswerRepository interface {
	RecordAnswer(ctx context.Context, a *AnswerRecord) error
	ListAnswers(ctx context.Context, filter AnswerFilter) ([]*AnswerRecord, error)
}

// SharedQuestionRepository is the append-only share log.
type SharedQuestionRepository interface {
	ShareQuestion(ctx context.Context, questionID string) (*SharedQuestion, error)
	ListShared(ctx context.Context, filter SharedFilter) ([]*SharedQuestion, error)
}

// RosterRepository reads user and student identity owned by another system.
// Lookups return (nil, nil) when there is no matching row.
type RosterRepository interface {
	GetUser(ctx context.Context, userID int64) (*User, error)
	GetStudent(ctx context.Context, userID int64) (*Student, error)
	FindStudent(ctx context.Context, filter StudentFilter) (*Student, error)
}

// TransactionManager runs fn inside a single unit of work.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
