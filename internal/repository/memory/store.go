package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"quiz-coach/internal/domain"
	"quiz-coach/internal/util"
)

// Store keeps questions, answers, shares and roster rows in process memory.
// It satisfies every repository port and is safe for concurrent use.
type Store struct {
	clock func() time.Time

	mu         sync.RWMutex
	questions  map[string]domain.Question
	answers    []domain.AnswerRecord
	shared     []domain.SharedQuestion
	users      map[int64]domain.User
	students   map[int64]domain.Student
	nextAnswer int64
	nextShare  int64
}

func NewStore() *Store {
	return &Store{
		clock:     func() time.Time { return time.Now().UTC() },
		questions: make(map[string]domain.Question),
		users:     make(map[int64]domain.User),
		students:  make(map[int64]domain.Student),
	}
}

// SeedStudents registers roster rows. A student with a Username also gets a user row.
func (s *Store) SeedStudents(students ...domain.Student) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range students {
		s.students[st.UserID] = st
		if st.Username != "" {
			s.users[st.UserID] = domain.User{UserID: st.UserID, Username: st.Username}
		}
	}
}

// SeedUsers registers user rows without class placement.
func (s *Store) SeedUsers(users ...domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range users {
		s.users[u.UserID] = u
	}
}

func cloneQuestion(q domain.Question) *domain.Question {
	if q.Options != nil {
		q.Options = append([]string(nil), q.Options...)
	}
	return &q
}

func (s *Store) CreateQuestion(_ context.Context, q *domain.Question) error {
	if q.CreatedAt.IsZero() {
		q.CreatedAt = s.clock()
	}
	q.ID = util.NewULID()

	s.mu.Lock()
	s.questions[q.ID] = *cloneQuestion(*q)
	s.mu.Unlock()
	return nil
}

func (s *Store) GetQuestion(_ context.Context, id string) (*domain.Question, error) {
	if !util.IsULID(id) {
		return nil, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.questions[id]
	if !ok {
		return nil, nil
	}
	return cloneQuestion(q), nil
}

func (s *Store) GetQuestions(_ context.Context, ids []string) (map[string]*domain.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]*domain.Question, len(ids))
	for _, id := range ids {
		if q, ok := s.questions[id]; ok {
			out[id] = cloneQuestion(q)
		}
	}
	return out, nil
}

func (s *Store) RecordAnswer(_ context.Context, a *domain.AnswerRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.questions[a.QuestionID]; !ok {
		return domain.NewQuestionNotFoundError(a.QuestionID)
	}
	if a.AnsweredAt.IsZero() {
		a.AnsweredAt = s.clock()
	}
	s.nextAnswer++
	a.ID = s.nextAnswer
	s.answers = append(s.answers, *a)
	return nil
}

// ListAnswers returns matching records in insertion order.
func (s *Store) ListAnswers(_ context.Context, filter domain.AnswerFilter) ([]*domain.AnswerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.AnswerRecord, 0)
	for i := range s.answers {
		a := s.answers[i]
		if filter.UserID != nil && a.UserID != *filter.UserID {
			continue
		}
		if filter.QuestionID != "" && a.QuestionID != filter.QuestionID {
			continue
		}
		out = append(out, &a)
	}
	return out, nil
}

func (s *Store) ShareQuestion(_ context.Context, questionID string) (*domain.SharedQuestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.questions[questionID]; !ok {
		return nil, domain.NewQuestionNotFoundError(questionID)
	}
	s.nextShare++
	entry := domain.SharedQuestion{ID: s.nextShare, QuestionID: questionID, SharedAt: s.clock()}
	s.shared = append(s.shared, entry)
	return &entry, nil
}

// ListShared returns share entries newest first, with their questions attached.
func (s *Store) ListShared(_ context.Context, filter domain.SharedFilter) ([]*domain.SharedQuestion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.SharedQuestion, 0, len(s.shared))
	for _, entry := range s.shared {
		q, ok := s.questions[entry.QuestionID]
		if !ok {
			continue
		}
		if filter.Subject != "" && q.Subject != filter.Subject {
			continue
		}
		e := entry
		e.Question = cloneQuestion(q)
		out = append(out, &e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].SharedAt.Equal(out[j].SharedAt) {
			return out[i].SharedAt.After(out[j].SharedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *Store) GetUser(_ context.Context, userID int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *Store) GetStudent(_ context.Context, userID int64) (*domain.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.students[userID]
	if !ok {
		return nil, nil
	}
	return s.withUsername(st), nil
}

// FindStudent returns the lowest user id placed at the given grade, class and number.
func (s *Store) FindStudent(_ context.Context, filter domain.StudentFilter) (*domain.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var found *domain.Student
	for _, st := range s.students {
		if st.Grade != filter.Grade || st.ClassNum != filter.ClassNum || st.Num != filter.Num {
			continue
		}
		if found == nil || st.UserID < found.UserID {
			found = s.withUsername(st)
		}
	}
	return found, nil
}

func (s *Store) withUsername(st domain.Student) *domain.Student {
	if u, ok := s.users[st.UserID]; ok {
		st.Username = u.Username
	}
	return &st
}

// WithTransaction runs fn directly; each Store call is already atomic.
func (s *Store) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var (
	_ domain.QuestionRepository       = (*Store)(nil)
	_ domain.AnswerRepository         = (*Store)(nil)
	_ domain.SharedQuestionRepository = (*Store)(nil)
	_ domain.RosterRepository         = (*Store)(nil)
	_ domain.TransactionManager       = (*Store)(nil)
)
