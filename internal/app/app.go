// Package app assembles the storage, cache and generation components shared
// by the API server and the CLI.
package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"quiz-coach/internal/adapter"
	"quiz-coach/internal/adapter/llm"
	"quiz-coach/internal/cache"
	"quiz-coach/internal/config"
	"quiz-coach/internal/database"
	"quiz-coach/internal/domain"
	"quiz-coach/internal/logger"
	"quiz-coach/internal/quizgen"
	"quiz-coach/internal/repository"
	"quiz-coach/internal/repository/memory"
)

// Storage bundles the repository ports over one backend.
type Storage struct {
	DB        *sqlx.DB // nil for the memory driver
	Questions domain.QuestionRepository
	Answers   domain.AnswerRepository
	Shared    domain.SharedQuestionRepository
	Roster    domain.RosterRepository
	TM        domain.TransactionManager
}

// OpenStorage connects the configured database, or builds an in-memory store
// for the "memory" driver.
func OpenStorage(ctx context.Context, cfg config.DBConfig) (*Storage, error) {
	if cfg.Driver == database.DriverMemory {
		store := memory.NewStore()
		return &Storage{
			Questions: store,
			Answers:   store,
			Shared:    store,
			Roster:    store,
			TM:        store,
		}, nil
	}

	db, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Storage{
		DB:        db,
		Questions: repository.NewQuestionRepository(db),
		Answers:   repository.NewAnswerRepository(db),
		Shared:    repository.NewSharedQuestionRepository(db),
		Roster:    repository.NewRosterRepository(db),
		TM:        repository.NewTransactionManagerAdapter(db),
	}, nil
}

// Ping checks the database; the memory backend is always reachable.
func (s *Storage) Ping(ctx context.Context) error {
	if s.DB == nil {
		return nil
	}
	return s.DB.PingContext(ctx)
}

func (s *Storage) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

// OpenCache connects Redis when an address is configured. Both results are
// nil when it is not.
func OpenCache(ctx context.Context, cfg config.RedisConfig) (*redis.Client, domain.Cache, error) {
	if cfg.Address == "" {
		logger.Get().Info("Redis not configured, hint tracking relies on the client flag")
		return nil, nil, nil
	}
	client, err := cache.NewRedisClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Get().Info("Successfully connected to Redis", zap.String("address", cfg.Address))
	return client, adapter.NewRedisCacheAdapter(client), nil
}

// NewPipeline builds the generation pipeline for the configured locale,
// exemplars and model provider.
func NewPipeline(ctx context.Context, cfg *config.Config) (*quizgen.Pipeline, error) {
	locale, err := quizgen.LocaleByName(cfg.Quiz.Locale)
	if err != nil {
		return nil, err
	}

	exemplars := quizgen.DefaultExemplars()
	if cfg.Quiz.ExemplarsFile != "" {
		exemplars, err = quizgen.LoadExemplars(cfg.Quiz.ExemplarsFile)
		if err != nil {
			return nil, err
		}
		logger.Get().Info("Loaded exemplar pack", zap.String("path", cfg.Quiz.ExemplarsFile))
	}

	generator, err := llm.New(ctx, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM generator: %w", err)
	}
	logger.Get().Info("LLM generator initialized",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", cfg.LLM.Model),
		zap.Duration("timeout", cfg.LLM.Timeout))

	return quizgen.NewPipeline(generator,
		quizgen.NewDifficultySelector(nil),
		quizgen.NewPromptBuilder(locale, exemplars),
		quizgen.NewResponseParser(locale)), nil
}
