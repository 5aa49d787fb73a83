package handler

import (
	"github.com/gofiber/fiber/v2"

	"quiz-coach/internal/domain"
	"quiz-coach/internal/dto"
	"quiz-coach/internal/service"
	"quiz-coach/internal/validation"
)

// QuestionHandler handles question generation, hint, answer and share requests
type QuestionHandler struct {
	service   service.QuestionService
	validator *validation.Validator
}

// NewQuestionHandler creates a new QuestionHandler instance
func NewQuestionHandler(service service.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

func invalidBody() error {
	return domain.NewInvalidInputError("request body must be valid JSON")
}

func (h *QuestionHandler) generate(c *fiber.Ctx, qt domain.QuestionType) error {
	var req dto.GenerateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody()
	}
	if errs := h.validator.ValidateGenerateRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.GenerateQuestion(c.UserContext(), &req, qt)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GenerateQuestion godoc
// @Summary Generate a free-form question
// @Description Prompts the model for a new question on the subject and scope and stores it
// @Tags question
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuestionRequest true "Subject and scope"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /generate-question [post]
func (h *QuestionHandler) GenerateQuestion(c *fiber.Ctx) error {
	return h.generate(c, domain.QuestionTypeFreeForm)
}

// GenerateChoiceQuestion godoc
// @Summary Generate a multiple-choice question
// @Description Like generate-question, but the question carries four options and the answer is an option number
// @Tags question
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuestionRequest true "Subject and scope"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /generate-choice-question [post]
func (h *QuestionHandler) GenerateChoiceQuestion(c *fiber.Ctx) error {
	return h.generate(c, domain.QuestionTypeMultipleChoice)
}

func (h *QuestionHandler) parseRef(c *fiber.Ctx) (*dto.QuestionRefRequest, error) {
	var req dto.QuestionRefRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, invalidBody()
	}
	if errs := h.validator.ValidateQuestionRef(&req); len(errs) > 0 {
		return nil, errs
	}
	return &req, nil
}

// GetHint godoc
// @Summary Get the hint of a question
// @Tags question
// @Accept json
// @Produce json
// @Param request body dto.QuestionRefRequest true "User and question"
// @Success 200 {object} dto.HintResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /get-hint [post]
func (h *QuestionHandler) GetHint(c *fiber.Ctx) error {
	req, err := h.parseRef(c)
	if err != nil {
		return err
	}
	resp, err := h.service.GetHint(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ShowAnswer godoc
// @Summary Reveal the answer of a question
// @Tags question
// @Accept json
// @Produce json
// @Param request body dto.QuestionRefRequest true "User and question"
// @Success 200 {object} dto.ShowAnswerResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /show-answer [post]
func (h *QuestionHandler) ShowAnswer(c *fiber.Ctx) error {
	req, err := h.parseRef(c)
	if err != nil {
		return err
	}
	resp, err := h.service.ShowAnswer(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ShareQuestion godoc
// @Summary Share a question
// @Tags share
// @Accept json
// @Produce json
// @Param request body dto.QuestionRefRequest true "User and question"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /share-question [post]
func (h *QuestionHandler) ShareQuestion(c *fiber.Ctx) error {
	req, err := h.parseRef(c)
	if err != nil {
		return err
	}
	resp, err := h.service.ShareQuestion(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListSharedQuestions godoc
// @Summary List shared questions
// @Description Newest first. An empty result is reported as 404 unless configured otherwise.
// @Tags share
// @Produce json
// @Param subject query string false "Only questions of this subject"
// @Success 200 {array} dto.SharedQuestionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /shared-questions [get]
func (h *QuestionHandler) ListSharedQuestions(c *fiber.Ctx) error {
	resp, err := h.service.ListShared(c.UserContext(), c.Query("subject"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
