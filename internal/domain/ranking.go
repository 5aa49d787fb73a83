package domain

// RankingEntry is a derived, never persisted, summary of one user's total score.
type RankingEntry struct {
	Rank   int
	UserID int64
	Score  float64

	// Roster metadata; nil when the user has no roster record.
	Username *string
	Grade    *int
	ClassNum *int
	Num      *int
}

// SubjectScore is one row of a per-student breakdown.
type SubjectScore struct {
	Subject string
	Score   float64
}

// ScoreBreakdown is a student's per-subject and total score.
type ScoreBreakdown struct {
	Student       Student
	TotalScore    float64
	SubjectScores []SubjectScore
}
