package handler

import (
	"github.com/gofiber/fiber/v2"

	"quiz-coach/internal/middleware"
)

// Handlers groups everything RegisterRoutes mounts.
type Handlers struct {
	Question *QuestionHandler
	Answer   *AnswerHandler
	Ranking  *RankingHandler
	Health   *HealthHandler
}

// RegisterRoutes mounts the API under /api and the health probe at /healthz.
func RegisterRoutes(app *fiber.App, h Handlers) {
	vm := middleware.NewValidationMiddleware()

	app.Get("/healthz", h.Health.Health)

	api := app.Group("/api")
	api.Post("/generate-question", h.Question.GenerateQuestion)
	api.Post("/generate-choice-question", h.Question.GenerateChoiceQuestion)
	api.Post("/get-hint", h.Question.GetHint)
	api.Post("/show-answer", h.Question.ShowAnswer)
	api.Post("/share-question", h.Question.ShareQuestion)
	api.Get("/shared-questions", h.Question.ListSharedQuestions)

	api.Post("/submit-answer", h.Answer.SubmitAnswer)

	api.Get("/ranking", vm.ValidateOptionalUserIDQuery(), h.Ranking.GetRanking)
	api.Get("/student-score", vm.ValidateStudentQuery(), h.Ranking.GetStudentScore)
	api.Get("/students/:user_id/score", vm.ValidateUserIDParam(), h.Ranking.GetStudentScoreByID)
}
