package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"quiz-coach/internal/config"
	"quiz-coach/internal/domain"
	"quiz-coach/internal/repository/memory"
)

func TestBatchService_GenerateNewQuestionsAndSave(t *testing.T) {
	gen := new(MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool {
		return !strings.Contains(p, "과목: 수학\n")
	})).Return("문제: q\n힌트: h\n정답: a\n1. 가\n2. 나\n3. 다\n4. 라", nil)
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, "과목: 수학\n")
	})).Return("", errors.New("model down"))

	store := memory.NewStore()
	svc := NewBatchService(fixedPipeline(gen, 0.9), store, config.BatchConfig{
		Topics: []config.TopicConfig{
			{Subject: "국어", Scope: "음운"},
			{Subject: "영어", Scope: "어휘", Choice: true},
			{Subject: "수학", Scope: "방정식"},
		},
		Count:       3,
		Concurrency: 2,
	}, zap.NewNop())

	summary, err := svc.GenerateNewQuestionsAndSave(context.Background())
	require.NoError(t, err)
	assert.Equal(t, BatchSummary{Generated: 6, Skipped: 3}, summary)
}

func TestBatchService_NoTopics(t *testing.T) {
	gen := new(MockTextGenerator)
	svc := NewBatchService(fixedPipeline(gen, 0.9), new(MockQuestionRepository), config.BatchConfig{Count: 5}, zap.NewNop())

	summary, err := svc.GenerateNewQuestionsAndSave(context.Background())
	require.NoError(t, err)
	assert.Equal(t, BatchSummary{}, summary)
	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestBatchService_SaveFailuresCounted(t *testing.T) {
	gen := new(MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).Return("문제: q\n정답: a", nil)
	repo := new(MockQuestionRepository)
	repo.On("CreateQuestion", mock.Anything, mock.AnythingOfType("*domain.Question")).Return(errors.New("db down"))

	svc := NewBatchService(fixedPipeline(gen, 0.1), repo, config.BatchConfig{
		Topics: []config.TopicConfig{{Subject: "국어", Scope: "문법"}},
		Count:  2,
	}, zap.NewNop())

	summary, err := svc.GenerateNewQuestionsAndSave(context.Background())
	require.NoError(t, err)
	assert.Equal(t, BatchSummary{Failed: 2}, summary)
}

func TestBatchService_Cancelled(t *testing.T) {
	gen := new(MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).Return("문제: q\n정답: a", nil).Maybe()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewBatchService(fixedPipeline(gen, 0.1), memory.NewStore(), config.BatchConfig{
		Topics:      []config.TopicConfig{{Subject: "국어", Scope: "문법"}},
		Count:       3,
		Concurrency: 1,
	}, zap.NewNop())

	_, err := svc.GenerateNewQuestionsAndSave(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

var _ domain.QuestionRepository = (*MockQuestionRepository)(nil)
