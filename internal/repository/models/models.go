package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StringSlice stores a string list as a JSON array in a text column.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("StringSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	// Oracle stores "" as NULL and older rows may hold "null".
	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = StringSlice{}
		return nil
	}
	return json.Unmarshal(bytesToParse, s)
}

// Question maps the questions table.
type Question struct {
	ID         int64          `db:"id"`
	Subject    string         `db:"subject"`
	Scope      string         `db:"scope"`
	Question   string         `db:"question"`
	Options    StringSlice    `db:"options"`
	Hint       sql.NullString `db:"hint"`
	Answer     sql.NullString `db:"answer"`
	Difficulty string         `db:"difficulty"`
	Score      float64        `db:"score"`
	CreatedAt  time.Time      `db:"created_at"`
}

// UserAnswer maps the user_answers table. Flags are integer columns so the
// same model scans on every supported driver.
type UserAnswer struct {
	ID         int64          `db:"id"`
	UserID     int64          `db:"user_id"`
	QuestionID int64          `db:"question_id"`
	UserAnswer sql.NullString `db:"user_answer"`
	UsedHint   int            `db:"used_hint"`
	IsCorrect  int            `db:"is_correct"`
	Score      float64        `db:"score"`
	AnsweredAt time.Time      `db:"answered_at"`
}

// SharedQuestionRow is a shared_questions row joined with its question.
type SharedQuestionRow struct {
	SharedID int64     `db:"shared_id"`
	SharedAt time.Time `db:"shared_at"`
	Question
}

// Student is a tbl_student row joined with tbl_user.
type Student struct {
	UserID   int64          `db:"user_id"`
	Username sql.NullString `db:"username"`
	Grade    sql.NullInt64  `db:"grade"`
	ClassNum sql.NullInt64  `db:"class_num"`
	Num      sql.NullInt64  `db:"num"`
}

// User is a tbl_user row.
type User struct {
	UserID   int64          `db:"user_id"`
	Username sql.NullString `db:"username"`
}
