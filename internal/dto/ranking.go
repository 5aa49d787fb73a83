package dto

import "quiz-coach/internal/domain"

// RankingEntryResponse is one leaderboard row. Roster fields are null for
// users without a roster record.
type RankingEntryResponse struct {
	Rank     int     `json:"rank"`
	UserID   int64   `json:"user_id"`
	Username *string `json:"username"`
	Score    float64 `json:"score"`
	Grade    *int    `json:"grade"`
	ClassNum *int    `json:"class_num"`
	Num      *int    `json:"num"`
}

func NewRankingEntryResponse(e domain.RankingEntry) RankingEntryResponse {
	return RankingEntryResponse{
		Rank:     e.Rank,
		UserID:   e.UserID,
		Username: e.Username,
		Score:    e.Score,
		Grade:    e.Grade,
		ClassNum: e.ClassNum,
		Num:      e.Num,
	}
}

// RankingResponse is the leaderboard plus, when requested, the caller's own rank.
type RankingResponse struct {
	Top10  []RankingEntryResponse `json:"top_10"`
	MyRank *RankingEntryResponse  `json:"my_rank"`
}

type StudentInfo struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Grade    int    `json:"grade"`
	ClassNum int    `json:"class_num"`
	Num      int    `json:"num"`
}

type SubjectScoreResponse struct {
	Subject string  `json:"subject"`
	Score   float64 `json:"score"`
}

// StudentScoreResponse is a student's per-subject score breakdown.
type StudentScoreResponse struct {
	StudentInfo   StudentInfo            `json:"student_info"`
	TotalScore    float64                `json:"total_score"`
	SubjectScores []SubjectScoreResponse `json:"subject_scores"`
}

func NewStudentScoreResponse(b *domain.ScoreBreakdown) *StudentScoreResponse {
	scores := make([]SubjectScoreResponse, 0, len(b.SubjectScores))
	for _, s := range b.SubjectScores {
		scores = append(scores, SubjectScoreResponse{Subject: s.Subject, Score: s.Score})
	}
	return &StudentScoreResponse{
		StudentInfo: StudentInfo{
			UserID:   b.Student.UserID,
			Username: b.Student.Username,
			Grade:    b.Student.Grade,
			ClassNum: b.Student.ClassNum,
			Num:      b.Student.Num,
		},
		TotalScore:    b.TotalScore,
		SubjectScores: scores,
	}
}
