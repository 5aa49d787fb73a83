package handler

import (
	"github.com/gofiber/fiber/v2"

	"quiz-coach/internal/domain"
	"quiz-coach/internal/middleware"
	"quiz-coach/internal/service"
)

// RankingHandler serves leaderboards and student score breakdowns
type RankingHandler struct {
	service service.RankingService
}

func NewRankingHandler(service service.RankingService) *RankingHandler {
	return &RankingHandler{service: service}
}

// GetRanking godoc
// @Summary Leaderboard
// @Description Top entries by total score, plus the requesting user's rank when user_id is given
// @Tags ranking
// @Produce json
// @Param user_id query int false "User to locate"
// @Success 200 {object} dto.RankingResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /ranking [get]
func (h *RankingHandler) GetRanking(c *fiber.Ctx) error {
	var userID *int64
	if id, ok := c.Locals(middleware.LocalUserID).(int64); ok {
		userID = &id
	}
	resp, err := h.service.GetRanking(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetStudentScore godoc
// @Summary Student score breakdown by class placement
// @Tags ranking
// @Produce json
// @Param grade query int true "Grade"
// @Param class_num query int true "Class"
// @Param num query int true "Number"
// @Success 200 {object} dto.StudentScoreResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /student-score [get]
func (h *RankingHandler) GetStudentScore(c *fiber.Ctx) error {
	filter, _ := c.Locals(middleware.LocalStudentFilter).(domain.StudentFilter)
	resp, err := h.service.GetStudentScore(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetStudentScoreByID godoc
// @Summary Student score breakdown by user id
// @Tags ranking
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} dto.StudentScoreResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /students/{user_id}/score [get]
func (h *RankingHandler) GetStudentScoreByID(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.LocalUserID).(int64)
	resp, err := h.service.GetStudentScoreByID(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
