package scoring

import (
	"sort"

	"quiz-coach/internal/domain"
)

// DefaultLeaderboardSize is the number of entries returned as the leaderboard.
const DefaultLeaderboardSize = 10

// Aggregate sums scores per user and returns entries ranked by total score,
// highest first. Equal totals are ordered by ascending user id.
func Aggregate(records []domain.AnswerRecord) []domain.RankingEntry {
	totals := make(map[int64]float64)
	for _, r := range records {
		totals[r.UserID] += r.Score
	}

	entries := make([]domain.RankingEntry, 0, len(totals))
	for userID, score := range totals {
		entries = append(entries, domain.RankingEntry{UserID: userID, Score: score})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].UserID < entries[j].UserID
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// Leaderboard returns at most n leading entries. n <= 0 selects DefaultLeaderboardSize.
func Leaderboard(entries []domain.RankingEntry, n int) []domain.RankingEntry {
	if n <= 0 {
		n = DefaultLeaderboardSize
	}
	if len(entries) < n {
		n = len(entries)
	}
	out := make([]domain.RankingEntry, n)
	copy(out, entries[:n])
	return out
}

// FindRank returns the entry of userID, or nil when the user has no answers.
func FindRank(entries []domain.RankingEntry, userID int64) *domain.RankingEntry {
	for i := range entries {
		if entries[i].UserID == userID {
			e := entries[i]
			return &e
		}
	}
	return nil
}

// SubjectBreakdown sums the records' scores per subject, sorted by subject,
// and returns the grand total. subjectOf maps a question id to its subject;
// records of unknown questions are counted in the total only.
func SubjectBreakdown(records []domain.AnswerRecord, subjectOf func(questionID string) (string, bool)) ([]domain.SubjectScore, float64) {
	bySubject := make(map[string]float64)
	var total float64
	for _, r := range records {
		total += r.Score
		if subject, ok := subjectOf(r.QuestionID); ok {
			bySubject[subject] += r.Score
		}
	}

	out := make([]domain.SubjectScore, 0, len(bySubject))
	for subject, score := range bySubject {
		out = append(out, domain.SubjectScore{Subject: subject, Score: score})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Subject < out[j].Subject })
	return out, total
}
