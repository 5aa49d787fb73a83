package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"quiz-coach/internal/domain"
	"quiz-coach/internal/repository/models"
)

const studentQuery = `SELECT s.user_id, u.username, s.grade, s.class_num, s.num
FROM tbl_student s
LEFT JOIN tbl_user u ON u.user_id = s.user_id`

// RosterRepository reads the school's user and student tables.
type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

func toDomainStudent(m *models.Student) *domain.Student {
	return &domain.Student{
		UserID:   m.UserID,
		Username: m.Username.String,
		Grade:    int(m.Grade.Int64),
		ClassNum: int(m.ClassNum.Int64),
		Num:      int(m.Num.Int64),
	}
}

func (r *RosterRepository) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	var m models.User
	if err := r.db.GetContext(ctx, &m, r.db.Rebind("SELECT user_id, username FROM tbl_user WHERE user_id = ?"), userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user %d: %w", userID, err)
	}
	return &domain.User{UserID: m.UserID, Username: m.Username.String}, nil
}

func (r *RosterRepository) GetStudent(ctx context.Context, userID int64) (*domain.Student, error) {
	return r.firstStudent(ctx, studentQuery+"\nWHERE s.user_id = ?", userID)
}

// FindStudent locates a student by grade, class and number.
func (r *RosterRepository) FindStudent(ctx context.Context, filter domain.StudentFilter) (*domain.Student, error) {
	return r.firstStudent(ctx, studentQuery+"\nWHERE s.grade = ? AND s.class_num = ? AND s.num = ?\nORDER BY s.user_id",
		filter.Grade, filter.ClassNum, filter.Num)
}

func (r *RosterRepository) firstStudent(ctx context.Context, query string, args ...interface{}) (*domain.Student, error) {
	var rows []models.Student
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return toDomainStudent(&rows[0]), nil
}
