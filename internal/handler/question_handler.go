package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"mathrush/internal/domain"
	"mathrush/internal/service"
)

type QuestionHandler struct {
	questionService service.QuestionService
}

func NewQuestionHandler(questionService service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// List handles GET /questions?level=N.
func (h *QuestionHandler) List(c *fiber.Ctx) error {
	level, err := strconv.Atoi(c.Query("level", "1"))
	if err != nil || level <= 0 {
		return domain.NewInvalidInputError("level must be a positive integer")
	}
	resp, err := h.questionService.ListByLevel(c.Context(), level)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Get handles GET /questions/:id.
func (h *QuestionHandler) Get(c *fiber.Ctx) error {
	resp, err := h.questionService.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
