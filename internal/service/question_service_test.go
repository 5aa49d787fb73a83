package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quiz-coach/internal/config"
	"quiz-coach/internal/domain"
	"quiz-coach/internal/dto"
)

type questionFixture struct {
	gen       *MockTextGenerator
	questions *MockQuestionRepository
	shared    *MockSharedQuestionRepository
	cache     *MockCache
	svc       QuestionService
}

func newQuestionFixture(t *testing.T, cfg config.QuizConfig) *questionFixture {
	t.Helper()
	f := &questionFixture{
		gen:       new(MockTextGenerator),
		questions: new(MockQuestionRepository),
		shared:    new(MockSharedQuestionRepository),
		cache:     new(MockCache),
	}
	f.svc = NewQuestionService(fixedPipeline(f.gen, 0.3), f.questions, f.shared, passthroughTM{},
		NewHintTracker(f.cache, time.Hour), cfg)
	t.Cleanup(func() {
		f.gen.AssertExpectations(t)
		f.questions.AssertExpectations(t)
		f.shared.AssertExpectations(t)
		f.cache.AssertExpectations(t)
	})
	return f
}

func TestQuestionService_GenerateQuestion(t *testing.T) {
	f := newQuestionFixture(t, config.QuizConfig{})
	f.gen.On("Generate", mock.Anything, mock.AnythingOfType("string")).
		Return("문제: 다음 단어의 표준 발음은? 신라\n힌트: 유음화\n정답: 실라", nil).Once()
	f.questions.On("CreateQuestion", mock.Anything, mock.AnythingOfType("*domain.Question")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Question).ID = "42"
		}).Return(nil).Once()

	resp, err := f.svc.GenerateQuestion(context.Background(), &dto.GenerateQuestionRequest{Subject: "국어", Scope: "음운"}, domain.QuestionTypeFreeForm)
	require.NoError(t, err)
	assert.Equal(t, "42", resp.QuestionID)
	assert.Equal(t, "다음 단어의 표준 발음은? 신라", resp.Question)
	assert.Equal(t, "실라", resp.Answer)
	assert.Equal(t, "중", resp.Difficulty)
	assert.Equal(t, "medium", resp.DifficultyCode)
	assert.Equal(t, 2.0, resp.Score)
	assert.NotNil(t, resp.Options)
	assert.Empty(t, resp.Options)
}

func TestQuestionService_GenerateChoiceQuestion_Fallback(t *testing.T) {
	f := newQuestionFixture(t, config.QuizConfig{})
	f.gen.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("unavailable")).Once()
	f.questions.On("CreateQuestion", mock.Anything, mock.MatchedBy(func(q *domain.Question) bool {
		return len(q.Options) == domain.OptionCount && q.Answer == "1"
	})).Return(nil).Once()

	resp, err := f.svc.GenerateQuestion(context.Background(), &dto.GenerateQuestionRequest{Subject: "수학", Scope: "방정식"}, domain.QuestionTypeMultipleChoice)
	require.NoError(t, err)
	assert.Len(t, resp.Options, 4)
	assert.Contains(t, resp.Question, "수학")
}

func TestQuestionService_GenerateQuestion_SaveFails(t *testing.T) {
	f := newQuestionFixture(t, config.QuizConfig{})
	f.gen.On("Generate", mock.Anything, mock.Anything).Return("문제: q\n정답: a", nil).Once()
	f.questions.On("CreateQuestion", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

	_, err := f.svc.GenerateQuestion(context.Background(), &dto.GenerateQuestionRequest{Subject: "국어", Scope: "음운"}, domain.QuestionTypeFreeForm)
	var de *domain.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.CodeInternal, de.Code)
}

func TestQuestionService_GetHint(t *testing.T) {
	f := newQuestionFixture(t, config.QuizConfig{})
	f.questions.On("GetQuestion", mock.Anything, "42").Return(&domain.Question{ID: "42", Hint: "유음화"}, nil).Once()
	f.cache.On("Set", mock.Anything, "quizcoach:hint:viewed:7:42", "1", time.Hour).Return(nil).Once()

	resp, err := f.svc.GetHint(context.Background(), &dto.QuestionRefRequest{UserID: 7, QuestionID: "42"})
	require.NoError(t, err)
	assert.Equal(t, "유음화", resp.Hint)
}

func TestQuestionService_GetHint_CacheFailureIgnored(t *testing.T) {
	f := newQuestionFixture(t, config.QuizConfig{})
	f.questions.On("GetQuestion", mock.Anything, "42").Return(&domain.Question{ID: "42", Hint: "h"}, nil).Once()
	f.cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()

	resp, err := f.svc.GetHint(context.Background(), &dto.QuestionRefRequest{UserID: 7, QuestionID: "42"})
	require.NoError(t, err)
	assert.Equal(t, "h", resp.Hint)
}

func TestQuestionService_NotFound(t *testing.T) {
	f := newQuestionFixture(t, config.QuizConfig{})
	f.questions.On("GetQuestion", mock.Anything, "404").Return(nil, nil).Times(3)
	req := &dto.QuestionRefRequest{UserID: 1, QuestionID: "404"}

	_, err := f.svc.GetHint(context.Background(), req)
	assert.True(t, domain.IsNotFound(err))
	_, err = f.svc.ShowAnswer(context.Background(), req)
	assert.True(t, domain.IsNotFound(err))
	_, err = f.svc.ShareQuestion(context.Background(), req)
	assert.True(t, domain.IsNotFound(err))
}

func TestQuestionService_ShowAnswer(t *testing.T) {
	f := newQuestionFixture(t, config.QuizConfig{})
	f.questions.On("GetQuestion", mock.Anything, "42").Return(&domain.Question{ID: "42", Answer: "실라"}, nil).Once()

	resp, err := f.svc.ShowAnswer(context.Background(), &dto.QuestionRefRequest{UserID: 1, QuestionID: "42"})
	require.NoError(t, err)
	assert.Equal(t, "실라", resp.Answer)
}

func TestQuestionService_ShareQuestion(t *testing.T) {
	f := newQuestionFixture(t, config.QuizConfig{})
	f.questions.On("GetQuestion", mock.Anything, "42").Return(&domain.Question{ID: "42"}, nil).Once()
	f.shared.On("ShareQuestion", mock.Anything, "42").Return(&domain.SharedQuestion{ID: 1, QuestionID: "42", SharedAt: time.Now()}, nil).Once()

	resp, err := f.svc.ShareQuestion(context.Background(), &dto.QuestionRefRequest{UserID: 1, QuestionID: "42"})
	require.NoError(t, err)
	assert.Equal(t, "문제가 공유되었습니다.", resp.Message)
}

func TestQuestionService_ListShared(t *testing.T) {
	at := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)
	rows := []*domain.SharedQuestion{{
		ID: 3, QuestionID: "42", SharedAt: at,
		Question: &domain.Question{ID: "42", Subject: "국어", Question: "q", Difficulty: domain.DifficultyLow, Score: 1},
	}}

	t.Run("rows", func(t *testing.T) {
		f := newQuestionFixture(t, config.QuizConfig{SharedEmptyIsNotFound: true})
		f.shared.On("ListShared", mock.Anything, domain.SharedFilter{Subject: "국어"}).Return(rows, nil).Once()

		got, err := f.svc.ListShared(context.Background(), "국어")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(3), got[0].SharedID)
		assert.Equal(t, "2025-03-02T09:00:00Z", got[0].SharedAt)
		assert.Equal(t, "q", got[0].Question)
		assert.Equal(t, "하", got[0].Difficulty)
	})

	t.Run("empty is not found", func(t *testing.T) {
		f := newQuestionFixture(t, config.QuizConfig{SharedEmptyIsNotFound: true})
		f.shared.On("ListShared", mock.Anything, domain.SharedFilter{}).Return([]*domain.SharedQuestion{}, nil).Once()

		_, err := f.svc.ListShared(context.Background(), "")
		var de *domain.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, domain.CodeSharedQuestionNotFound, de.Code)
	})

	t.Run("empty list allowed", func(t *testing.T) {
		f := newQuestionFixture(t, config.QuizConfig{SharedEmptyIsNotFound: false})
		f.shared.On("ListShared", mock.Anything, domain.SharedFilter{}).Return([]*domain.SharedQuestion{}, nil).Once()

		got, err := f.svc.ListShared(context.Background(), "")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
