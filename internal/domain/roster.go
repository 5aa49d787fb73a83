package domain

// User is a roster account as seen by this service (read-only).
type User struct {
	UserID   int64
	Username string
}

// Student is the class placement of a roster user.
type Student struct {
	UserID   int64
	Username string
	Grade    int
	ClassNum int
	Num      int
}

// StudentFilter locates a student by class placement.
type StudentFilter struct {
	Grade    int
	ClassNum int
	Num      int
}
