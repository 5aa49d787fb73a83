package handler

import (
	"github.com/gofiber/fiber/v2"

	"quiz-coach/internal/dto"
	"quiz-coach/internal/service"
	"quiz-coach/internal/validation"
)

// AnswerHandler handles answer submissions
type AnswerHandler struct {
	service   service.AnswerService
	validator *validation.Validator
}

func NewAnswerHandler(service service.AnswerService) *AnswerHandler {
	return &AnswerHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// SubmitAnswer godoc
// @Summary Submit an answer
// @Description Exact match after trimming; a hint halves the score. The answer is revealed only when wrong.
// @Tags answer
// @Accept json
// @Produce json
// @Param request body dto.SubmitAnswerRequest true "Answer submission"
// @Success 200 {object} dto.SubmitAnswerResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /submit-answer [post]
func (h *AnswerHandler) SubmitAnswer(c *fiber.Ctx) error {
	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody()
	}
	if errs := h.validator.ValidateSubmitAnswer(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.SubmitAnswer(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
