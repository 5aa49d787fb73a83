package domain

import "time"

// SharedQuestion is one entry of the append-only share log.
type SharedQuestion struct {
	ID         int64
	QuestionID string
	SharedAt   time.Time
	Question   *Question // populated by ListShared
}

// SharedFilter narrows ListShared.
type SharedFilter struct {
	Subject string
}
