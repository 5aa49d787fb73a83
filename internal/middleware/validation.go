package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"quiz-coach/internal/domain"
	"quiz-coach/internal/validation"
)

const (
	LocalStudentFilter = "validated_student_filter"
	LocalUserID        = "validated_user_id"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateStudentQuery validates grade, class_num and num query parameters
func (vm *ValidationMiddleware) ValidateStudentQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var errs domain.ValidationErrors
		filter := domain.StudentFilter{}
		for _, p := range []struct {
			name string
			dst  *int
		}{
			{"grade", &filter.Grade},
			{"class_num", &filter.ClassNum},
			{"num", &filter.Num},
		} {
			raw := c.Query(p.name)
			if raw == "" {
				errs = append(errs, domain.NewMissingFieldError(p.name))
				continue
			}
			n, err := strconv.Atoi(raw)
			if err != nil {
				errs = append(errs, domain.NewInvalidFormatError(p.name, raw))
				continue
			}
			*p.dst = n
		}
		if len(errs) > 0 {
			return errs
		}
		if errs := vm.validator.ValidateStudentFilter(filter); len(errs) > 0 {
			return errs
		}

		c.Locals(LocalStudentFilter, filter)
		return c.Next()
	}
}

// ValidateUserIDParam validates the :user_id path parameter
func (vm *ValidationMiddleware) ValidateUserIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Params("user_id")
		userID, err := parseUserID(raw)
		if err != nil {
			return domain.ValidationErrors{domain.NewInvalidFormatError("user_id", raw)}
		}
		if errs := vm.validator.ValidateUserID(userID); len(errs) > 0 {
			return errs
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// ValidateOptionalUserIDQuery validates ?user_id= when present
func (vm *ValidationMiddleware) ValidateOptionalUserIDQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Query("user_id")
		if raw == "" {
			return c.Next()
		}
		userID, err := parseUserID(raw)
		if err != nil {
			return domain.ValidationErrors{domain.NewInvalidFormatError("user_id", raw)}
		}
		if errs := vm.validator.ValidateUserID(userID); len(errs) > 0 {
			return errs
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

func parseUserID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
