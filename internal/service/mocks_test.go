package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"quiz-coach/internal/domain"
)

// --- MockQuestionRepository ---
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) CreateQuestion(ctx context.Context, q *domain.Question) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *MockQuestionRepository) GetQuestion(ctx context.Context, id string) (*domain.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) GetQuestions(ctx context.Context, ids []string) (map[string]*domain.Question, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]*domain.Question), args.Error(1)
}

// --- MockAnswerRepository ---
type MockAnswerRepository struct {
	mock.Mock
}

func (m *MockAnswerRepository) RecordAnswer(ctx context.Context, a *domain.AnswerRecord) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAnswerRepository) ListAnswers(ctx context.Context, filter domain.AnswerFilter) ([]*domain.AnswerRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AnswerRecord), args.Error(1)
}

// --- MockSharedQuestionRepository ---
type MockSharedQuestionRepository struct {
	mock.Mock
}

func (m *MockSharedQuestionRepository) ShareQuestion(ctx context.Context, questionID string) (*domain.SharedQuestion, error) {
	args := m.Called(ctx, questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SharedQuestion), args.Error(1)
}

func (m *MockSharedQuestionRepository) ListShared(ctx context.Context, filter domain.SharedFilter) ([]*domain.SharedQuestion, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SharedQuestion), args.Error(1)
}

// --- MockRosterRepository ---
type MockRosterRepository struct {
	mock.Mock
}

func (m *MockRosterRepository) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRosterRepository) GetStudent(ctx context.Context, userID int64) (*domain.Student, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}

func (m *MockRosterRepository) FindStudent(ctx context.Context, filter domain.StudentFilter) (*domain.Student, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}

// --- MockTextGenerator ---
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// passthroughTM runs fn without a transaction.
type passthroughTM struct{}

func (passthroughTM) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
