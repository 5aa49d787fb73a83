package service

import (
	"context"

	"go.uber.org/zap"

	"quiz-coach/internal/config"
	"quiz-coach/internal/domain"
	"quiz-coach/internal/dto"
	"quiz-coach/internal/logger"
	"quiz-coach/internal/quizgen"
)

const sharedMessage = "문제가 공유되었습니다."

// QuestionService generates questions and serves hint, answer and share requests.
type QuestionService interface {
	GenerateQuestion(ctx context.Context, req *dto.GenerateQuestionRequest, qt domain.QuestionType) (*dto.QuestionResponse, error)
	GetHint(ctx context.Context, req *dto.QuestionRefRequest) (*dto.HintResponse, error)
	ShowAnswer(ctx context.Context, req *dto.QuestionRefRequest) (*dto.ShowAnswerResponse, error)
	ShareQuestion(ctx context.Context, req *dto.QuestionRefRequest) (*dto.MessageResponse, error)
	ListShared(ctx context.Context, subject string) ([]dto.SharedQuestionResponse, error)
}

type questionService struct {
	pipeline  *quizgen.Pipeline
	questions domain.QuestionRepository
	shared    domain.SharedQuestionRepository
	tm        domain.TransactionManager
	hints     HintTracker
	cfg       config.QuizConfig
}

func NewQuestionService(
	pipeline *quizgen.Pipeline,
	questions domain.QuestionRepository,
	shared domain.SharedQuestionRepository,
	tm domain.TransactionManager,
	hints HintTracker,
	cfg config.QuizConfig,
) QuestionService {
	if hints == nil {
		hints = noopHintTracker{}
	}
	return &questionService{
		pipeline:  pipeline,
		questions: questions,
		shared:    shared,
		tm:        tm,
		hints:     hints,
		cfg:       cfg,
	}
}

func (s *questionService) GenerateQuestion(ctx context.Context, req *dto.GenerateQuestionRequest, qt domain.QuestionType) (*dto.QuestionResponse, error) {
	res := s.pipeline.Generate(ctx, req.Subject, req.Scope, qt)
	q := res.Question
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if err := s.questions.CreateQuestion(ctx, q); err != nil {
		return nil, domain.NewInternalError("Failed to save question", err)
	}

	logger.Get().Info("Question generated",
		zap.String("question_id", q.ID),
		zap.String("subject", q.Subject),
		zap.String("type", string(qt)),
		zap.String("difficulty", string(q.Difficulty)),
		zap.Bool("fallback", res.Fallback))

	resp := dto.NewQuestionResponse(q, s.pipeline.Locale())
	return &resp, nil
}

func (s *questionService) getQuestion(ctx context.Context, id string) (*domain.Question, error) {
	q, err := s.questions.GetQuestion(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get question", err)
	}
	if q == nil {
		return nil, domain.NewQuestionNotFoundError(id)
	}
	return q, nil
}

// GetHint returns the hint and records that the user has seen it, so a later
// submission is scored as hinted even if the client does not say so.
func (s *questionService) GetHint(ctx context.Context, req *dto.QuestionRefRequest) (*dto.HintResponse, error) {
	q, err := s.getQuestion(ctx, req.QuestionID)
	if err != nil {
		return nil, err
	}
	if err := s.hints.MarkViewed(ctx, req.UserID, q.ID); err != nil {
		logger.Get().Warn("Failed to record hint view",
			zap.Int64("user_id", req.UserID),
			zap.String("question_id", q.ID),
			zap.Error(err))
	}
	return &dto.HintResponse{Hint: q.Hint}, nil
}

func (s *questionService) ShowAnswer(ctx context.Context, req *dto.QuestionRefRequest) (*dto.ShowAnswerResponse, error) {
	q, err := s.getQuestion(ctx, req.QuestionID)
	if err != nil {
		return nil, err
	}
	return &dto.ShowAnswerResponse{Answer: q.Answer}, nil
}

func (s *questionService) ShareQuestion(ctx context.Context, req *dto.QuestionRefRequest) (*dto.MessageResponse, error) {
	err := s.tm.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.getQuestion(ctx, req.QuestionID); err != nil {
			return err
		}
		entry, err := s.shared.ShareQuestion(ctx, req.QuestionID)
		if err != nil {
			if domain.IsNotFound(err) {
				return err
			}
			return domain.NewInternalError("Failed to share question", err)
		}
		logger.Get().Info("Question shared",
			zap.Int64("shared_id", entry.ID),
			zap.Int64("user_id", req.UserID),
			zap.String("question_id", req.QuestionID))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: sharedMessage}, nil
}

// ListShared returns shared questions newest first. With
// quiz.shared_empty_is_not_found set, an empty result is a not-found error.
func (s *questionService) ListShared(ctx context.Context, subject string) ([]dto.SharedQuestionResponse, error) {
	entries, err := s.shared.ListShared(ctx, domain.SharedFilter{Subject: subject})
	if err != nil {
		return nil, domain.NewInternalError("Failed to list shared questions", err)
	}
	if len(entries) == 0 && s.cfg.SharedEmptyIsNotFound {
		return nil, domain.NewSharedQuestionsNotFoundError()
	}

	out := make([]dto.SharedQuestionResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.NewSharedQuestionResponse(e, s.pipeline.Locale()))
	}
	return out, nil
}
