package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"quiz-coach/internal/config"
	"quiz-coach/internal/domain"
	"quiz-coach/internal/quizgen"
)

// BatchSummary counts the outcome of one batch run.
type BatchSummary struct {
	Generated int
	Skipped   int // fallback payloads, never stored
	Failed    int
}

// BatchService pre-generates questions for the configured topics.
type BatchService interface {
	GenerateNewQuestionsAndSave(ctx context.Context) (BatchSummary, error)
}

type batchService struct {
	pipeline  *quizgen.Pipeline
	questions domain.QuestionRepository
	cfg       config.BatchConfig
	logger    *zap.Logger
}

func NewBatchService(pipeline *quizgen.Pipeline, questions domain.QuestionRepository, cfg config.BatchConfig, logger *zap.Logger) BatchService {
	return &batchService{
		pipeline:  pipeline,
		questions: questions,
		cfg:       cfg,
		logger:    logger,
	}
}

// GenerateNewQuestionsAndSave generates batch.count questions per topic with at
// most batch.concurrency model calls in flight. Individual failures are
// counted and logged; only context cancellation aborts the run.
func (s *batchService) GenerateNewQuestionsAndSave(ctx context.Context) (BatchSummary, error) {
	start := time.Now()
	s.logger.Info("Starting batch question generation",
		zap.Int("topics", len(s.cfg.Topics)),
		zap.Int("count_per_topic", s.cfg.Count),
		zap.Int("concurrency", s.cfg.Concurrency))

	if len(s.cfg.Topics) == 0 || s.cfg.Count <= 0 {
		s.logger.Info("No batch topics configured. Batch process finishing early.")
		return BatchSummary{}, nil
	}

	var generated, skipped, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	limit := s.cfg.Concurrency
	if limit <= 0 {
		limit = 1
	}
	g.SetLimit(limit)

	for _, topic := range s.cfg.Topics {
		qt := domain.QuestionTypeFreeForm
		if topic.Choice {
			qt = domain.QuestionTypeMultipleChoice
		}
		for i := 0; i < s.cfg.Count; i++ {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				res := s.pipeline.Generate(gctx, topic.Subject, topic.Scope, qt)
				if res.Fallback {
					skipped.Add(1)
					return nil
				}
				if err := s.questions.CreateQuestion(gctx, res.Question); err != nil {
					failed.Add(1)
					s.logger.Error("Failed to save generated question",
						zap.String("subject", topic.Subject),
						zap.String("scope", topic.Scope),
						zap.Error(err))
					return nil
				}
				generated.Add(1)
				return nil
			})
		}
	}

	err := g.Wait()
	summary := BatchSummary{
		Generated: int(generated.Load()),
		Skipped:   int(skipped.Load()),
		Failed:    int(failed.Load()),
	}
	s.logger.Info("Batch question generation finished",
		zap.Int("generated", summary.Generated),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
		zap.Duration("elapsed", time.Since(start)))
	if err != nil {
		return summary, fmt.Errorf("batch generation interrupted: %w", err)
	}
	return summary, nil
}
