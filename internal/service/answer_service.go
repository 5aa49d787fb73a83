package service

import (
	"context"

	"go.uber.org/zap"

	"quiz-coach/internal/domain"
	"quiz-coach/internal/dto"
	"quiz-coach/internal/logger"
	"quiz-coach/internal/scoring"
)

// AnswerService evaluates and records answer submissions.
type AnswerService interface {
	SubmitAnswer(ctx context.Context, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error)
}

type answerService struct {
	questions domain.QuestionRepository
	answers   domain.AnswerRepository
	hints     HintTracker
}

func NewAnswerService(questions domain.QuestionRepository, answers domain.AnswerRepository, hints HintTracker) AnswerService {
	if hints == nil {
		hints = noopHintTracker{}
	}
	return &answerService{questions: questions, answers: answers, hints: hints}
}

// SubmitAnswer scores the submission and appends exactly one answer record.
func (s *answerService) SubmitAnswer(ctx context.Context, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	q, err := s.questions.GetQuestion(ctx, req.QuestionID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get question", err)
	}
	if q == nil {
		return nil, domain.NewQuestionNotFoundError(req.QuestionID)
	}

	usedHint := req.UsedHint
	if !usedHint {
		viewed, err := s.hints.Viewed(ctx, req.UserID, q.ID)
		if err != nil {
			logger.Get().Warn("Failed to read hint view",
				zap.Int64("user_id", req.UserID),
				zap.String("question_id", q.ID),
				zap.Error(err))
		}
		usedHint = viewed
	}

	eval := scoring.Evaluate(req.Answer, q.Answer, usedHint, q.Score)
	record := &domain.AnswerRecord{
		UserID:     req.UserID,
		QuestionID: q.ID,
		Answer:     req.Answer,
		UsedHint:   usedHint,
		Correct:    eval.Correct,
		Score:      eval.Score,
	}
	if err := s.answers.RecordAnswer(ctx, record); err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		return nil, domain.NewInternalError("Failed to record answer", err)
	}

	logger.Get().Info("Answer recorded",
		zap.Int64("answer_id", record.ID),
		zap.Int64("user_id", req.UserID),
		zap.String("question_id", q.ID),
		zap.Bool("correct", eval.Correct),
		zap.Bool("used_hint", usedHint),
		zap.Float64("score", eval.Score))

	return &dto.SubmitAnswerResponse{
		Correct: eval.Correct,
		Score:   eval.Score,
		Answer:  eval.RevealedAnswer,
	}, nil
}
