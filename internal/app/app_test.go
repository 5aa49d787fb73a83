package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiz-coach/internal/config"
	"quiz-coach/internal/database"
	"quiz-coach/internal/domain"
	"quiz-coach/internal/logger"
	"quiz-coach/internal/repository/memory"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Level: "error", Env: "test"}); err != nil {
		panic(err)
	}
	code := m.Run()
	_ = logger.Sync()
	os.Exit(code)
}

// exerciseStorage runs one question through the answer and share logs.
func exerciseStorage(t *testing.T, s *Storage) {
	t.Helper()
	ctx := context.Background()

	q := &domain.Question{
		Subject:    "국어",
		Scope:      "음운",
		Question:   "비음화의 예는?",
		Options:    []string{"국물", "신라", "좋다", "맑다"},
		Hint:       "ㄱ+ㅁ",
		Answer:     "1",
		Difficulty: domain.DifficultyMedium,
		Score:      2.0,
	}
	require.NoError(t, s.Questions.CreateQuestion(ctx, q))
	require.NotEmpty(t, q.ID)

	got, err := s.Questions.GetQuestion(ctx, q.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, q.Options, got.Options)
	assert.Equal(t, "ㄱ+ㅁ", got.Hint)

	require.NoError(t, s.Answers.RecordAnswer(ctx, &domain.AnswerRecord{
		UserID: 7, QuestionID: q.ID, Answer: "1", Correct: true, Score: 2.0, AnsweredAt: time.Now().UTC(),
	}))
	uid := int64(7)
	answers, err := s.Answers.ListAnswers(ctx, domain.AnswerFilter{UserID: &uid})
	require.NoError(t, err)
	require.Len(t, answers, 1)
	assert.Equal(t, q.ID, answers[0].QuestionID)

	err = s.TM.WithTransaction(ctx, func(ctx context.Context) error {
		_, err := s.Shared.ShareQuestion(ctx, q.ID)
		return err
	})
	require.NoError(t, err)

	shared, err := s.Shared.ListShared(ctx, domain.SharedFilter{Subject: "국어"})
	require.NoError(t, err)
	require.Len(t, shared, 1)
	require.NotNil(t, shared[0].Question)
	assert.Equal(t, q.Question, shared[0].Question.Question)

	student, err := s.Roster.GetStudent(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, student)

	assert.NoError(t, s.Ping(ctx))
}

func TestOpenStorage_Memory(t *testing.T) {
	s, err := OpenStorage(context.Background(), config.DBConfig{Driver: database.DriverMemory})
	require.NoError(t, err)
	defer s.Close()

	assert.Nil(t, s.DB)
	assert.IsType(t, &memory.Store{}, s.Questions)
	exerciseStorage(t, s)
}

func TestOpenStorage_SQLite(t *testing.T) {
	cfg := config.DBConfig{Driver: database.DriverSQLite, Path: filepath.Join(t.TempDir(), "quiz.db")}
	ctx := context.Background()

	migrationDB, err := database.Open(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(migrationDB.DB, database.DriverSQLite, database.Up))

	s, err := OpenStorage(ctx, cfg)
	require.NoError(t, err)
	defer s.Close()

	require.NotNil(t, s.DB)
	exerciseStorage(t, s)
}

func TestOpenStorage_UnknownDriver(t *testing.T) {
	_, err := OpenStorage(context.Background(), config.DBConfig{Driver: "postgres"})
	assert.Error(t, err)
}

func TestOpenCache(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		client, c, err := OpenCache(context.Background(), config.RedisConfig{})
		require.NoError(t, err)
		assert.Nil(t, client)
		assert.Nil(t, c)
	})

	t.Run("miniredis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client, c, err := OpenCache(context.Background(), config.RedisConfig{Address: mr.Addr()})
		require.NoError(t, err)
		defer client.Close()
		require.NotNil(t, c)
		assert.NoError(t, c.Ping(context.Background()))
	})
}

func TestNewPipeline(t *testing.T) {
	base := func() *config.Config {
		return &config.Config{
			LLM:  config.LLMConfig{Provider: "anthropic", APIKey: "k", Model: "claude-haiku-4-5", Timeout: time.Second},
			Quiz: config.QuizConfig{Locale: "ko"},
		}
	}

	p, err := NewPipeline(context.Background(), base())
	require.NoError(t, err)
	assert.NotNil(t, p)

	cfg := base()
	cfg.Quiz.Locale = "fr"
	_, err = NewPipeline(context.Background(), cfg)
	assert.ErrorContains(t, err, "unsupported locale")

	cfg = base()
	cfg.Quiz.ExemplarsFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = NewPipeline(context.Background(), cfg)
	assert.ErrorContains(t, err, "read exemplar file")

	cfg = base()
	cfg.LLM.Provider = "parrot"
	_, err = NewPipeline(context.Background(), cfg)
	assert.ErrorContains(t, err, "unknown LLM provider")
}
