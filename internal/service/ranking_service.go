package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"quiz-coach/internal/domain"
	"quiz-coach/internal/dto"
	"quiz-coach/internal/logger"
	"quiz-coach/internal/scoring"
)

// rosterLookupLimit bounds concurrent roster lookups per ranking request.
const rosterLookupLimit = 4

// RankingService builds leaderboards and per-student score breakdowns.
type RankingService interface {
	GetRanking(ctx context.Context, userID *int64) (*dto.RankingResponse, error)
	GetStudentScore(ctx context.Context, filter domain.StudentFilter) (*dto.StudentScoreResponse, error)
	GetStudentScoreByID(ctx context.Context, userID int64) (*dto.StudentScoreResponse, error)
}

type rankingService struct {
	answers         domain.AnswerRepository
	questions       domain.QuestionRepository
	roster          domain.RosterRepository
	leaderboardSize int
}

func NewRankingService(answers domain.AnswerRepository, questions domain.QuestionRepository, roster domain.RosterRepository, leaderboardSize int) RankingService {
	return &rankingService{
		answers:         answers,
		questions:       questions,
		roster:          roster,
		leaderboardSize: leaderboardSize,
	}
}

func derefRecords(in []*domain.AnswerRecord) []domain.AnswerRecord {
	out := make([]domain.AnswerRecord, 0, len(in))
	for _, r := range in {
		out = append(out, *r)
	}
	return out
}

// GetRanking recomputes the leaderboard from every answer record. When userID
// is set the response also carries that user's rank, or null without answers.
func (s *rankingService) GetRanking(ctx context.Context, userID *int64) (*dto.RankingResponse, error) {
	records, err := s.answers.ListAnswers(ctx, domain.AnswerFilter{})
	if err != nil {
		return nil, domain.NewInternalError("Failed to list answers", err)
	}

	entries := scoring.Aggregate(derefRecords(records))
	top := scoring.Leaderboard(entries, s.leaderboardSize)
	var mine *domain.RankingEntry
	if userID != nil {
		mine = scoring.FindRank(entries, *userID)
	}

	targets := make([]*domain.RankingEntry, 0, len(top)+1)
	for i := range top {
		targets = append(targets, &top[i])
	}
	if mine != nil {
		targets = append(targets, mine)
	}
	if err := s.enrich(ctx, targets); err != nil {
		return nil, domain.NewInternalError("Failed to load roster", err)
	}

	resp := &dto.RankingResponse{Top10: make([]dto.RankingEntryResponse, 0, len(top))}
	for _, e := range top {
		resp.Top10 = append(resp.Top10, dto.NewRankingEntryResponse(e))
	}
	if mine != nil {
		r := dto.NewRankingEntryResponse(*mine)
		resp.MyRank = &r
	}
	logger.Get().Debug("Ranking computed",
		zap.Int("users", len(entries)),
		zap.Int("records", len(records)))
	return resp, nil
}

// enrich attaches roster metadata to each entry. Users without a roster
// record keep null metadata.
func (s *rankingService) enrich(ctx context.Context, entries []*domain.RankingEntry) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(rosterLookupLimit)
	for _, e := range entries {
		g.Go(func() error {
			st, err := s.roster.GetStudent(ctx, e.UserID)
			if err != nil {
				return err
			}
			if st != nil {
				grade, classNum, num := st.Grade, st.ClassNum, st.Num
				e.Grade, e.ClassNum, e.Num = &grade, &classNum, &num
				if st.Username != "" {
					name := st.Username
					e.Username = &name
					return nil
				}
			}
			u, err := s.roster.GetUser(ctx, e.UserID)
			if err != nil {
				return err
			}
			if u != nil {
				name := u.Username
				e.Username = &name
			}
			return nil
		})
	}
	return g.Wait()
}

func (s *rankingService) GetStudentScore(ctx context.Context, filter domain.StudentFilter) (*dto.StudentScoreResponse, error) {
	st, err := s.roster.FindStudent(ctx, filter)
	if err != nil {
		return nil, domain.NewInternalError("Failed to find student", err)
	}
	if st == nil {
		return nil, domain.NewStudentNotFoundError().
			WithContext("grade", filter.Grade).
			WithContext("class_num", filter.ClassNum).
			WithContext("num", filter.Num)
	}
	return s.breakdown(ctx, st)
}

func (s *rankingService) GetStudentScoreByID(ctx context.Context, userID int64) (*dto.StudentScoreResponse, error) {
	st, err := s.roster.GetStudent(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get student", err)
	}
	if st == nil {
		return nil, domain.NewStudentNotFoundError().WithContext("user_id", userID)
	}
	return s.breakdown(ctx, st)
}

func (s *rankingService) breakdown(ctx context.Context, st *domain.Student) (*dto.StudentScoreResponse, error) {
	uid := st.UserID
	records, err := s.answers.ListAnswers(ctx, domain.AnswerFilter{UserID: &uid})
	if err != nil {
		return nil, domain.NewInternalError("Failed to list answers", err)
	}

	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.QuestionID)
	}
	questions, err := s.questions.GetQuestions(ctx, ids)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get questions", err)
	}

	subjects, total := scoring.SubjectBreakdown(derefRecords(records), func(id string) (string, bool) {
		q, ok := questions[id]
		if !ok {
			return "", false
		}
		return q.Subject, true
	})
	return dto.NewStudentScoreResponse(&domain.ScoreBreakdown{
		Student:       *st,
		TotalScore:    total,
		SubjectScores: subjects,
	}), nil
}
