package validation

import (
	"strings"
	"unicode/utf8"

	"quiz-coach/internal/domain"
	"quiz-coach/internal/dto"
)

const (
	maxSubjectLength    = 50
	maxScopeLength      = 100
	maxQuestionIDLength = 64
	maxAnswerLength     = 500
	maxGrade            = 12
	maxClassNum         = 99
	maxNum              = 99
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerateRequest validates a question generation request
func (v *Validator) ValidateGenerateRequest(req *dto.GenerateQuestionRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	errors = append(errors, validateTopic("subject", req.Subject, maxSubjectLength)...)
	errors = append(errors, validateTopic("scope", req.Scope, maxScopeLength)...)
	return errors
}

// ValidateQuestionRef validates hint, show-answer and share requests
func (v *Validator) ValidateQuestionRef(req *dto.QuestionRefRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	errors = append(errors, validateUserID(req.UserID)...)
	errors = append(errors, validateQuestionID(req.QuestionID)...)
	return errors
}

// ValidateSubmitAnswer validates an answer submission
func (v *Validator) ValidateSubmitAnswer(req *dto.SubmitAnswerRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	errors = append(errors, validateUserID(req.UserID)...)
	errors = append(errors, validateQuestionID(req.QuestionID)...)

	if n := utf8.RuneCountInString(req.Answer); n > maxAnswerLength {
		errors = append(errors, domain.NewOutOfRangeError("answer", n, 0, maxAnswerLength))
	}
	return errors
}

// ValidateStudentFilter validates the grade/class/number lookup
func (v *Validator) ValidateStudentFilter(f domain.StudentFilter) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if f.Grade < 1 || f.Grade > maxGrade {
		errors = append(errors, domain.NewOutOfRangeError("grade", f.Grade, 1, maxGrade))
	}
	if f.ClassNum < 1 || f.ClassNum > maxClassNum {
		errors = append(errors, domain.NewOutOfRangeError("class_num", f.ClassNum, 1, maxClassNum))
	}
	if f.Num < 1 || f.Num > maxNum {
		errors = append(errors, domain.NewOutOfRangeError("num", f.Num, 1, maxNum))
	}
	return errors
}

// ValidateUserID validates a user id taken from a path or query parameter
func (v *Validator) ValidateUserID(userID int64) domain.ValidationErrors {
	return validateUserID(userID)
}

// Limits are in characters; the string columns use character semantics on every driver.
func validateTopic(field, value string, max int) domain.ValidationErrors {
	if strings.TrimSpace(value) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError(field)}
	}
	if n := utf8.RuneCountInString(value); n > max {
		return domain.ValidationErrors{domain.NewOutOfRangeError(field, n, 1, max)}
	}
	return nil
}

func validateUserID(userID int64) domain.ValidationErrors {
	if userID <= 0 {
		return domain.ValidationErrors{domain.NewMissingFieldError("user_id")}
	}
	return nil
}

// Question ids are opaque: an unknown id is a not-found, not a bad request.
func validateQuestionID(id string) domain.ValidationErrors {
	if strings.TrimSpace(id) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("question_id")}
	}
	if len(id) > maxQuestionIDLength {
		return domain.ValidationErrors{domain.NewInvalidFormatError("question_id", id)}
	}
	return nil
}
