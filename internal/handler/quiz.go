package handler

import (
	"autoquiz/internal/dto"
	"autoquiz/internal/middleware"
	"autoquiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// GenerateQuiz godoc
// @Summary Generate a quiz from text
// @Description Builds a three-question multiple-choice quiz from the given text. When the language model is unavailable a generic placeholder quiz is returned instead.
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuizRequest true "Source text"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /quiz/generate [post]
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	req, ok := c.Locals(middleware.ValidatedQuizRequestKey).(*dto.GenerateQuizRequest)
	if !ok {
		req = new(dto.GenerateQuizRequest)
		if err := c.BodyParser(req); err != nil {
			return fiber.ErrBadRequest
		}
	}

	resp, err := h.service.Generate(c.UserContext(), req.Text)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetDocumentQuiz godoc
// @Summary Generate a quiz from a stored document
// @Description Builds a quiz from the extracted text of a previously uploaded document
// @Tags quiz
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} dto.QuizResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quiz/document/{id} [get]
func (h *QuizHandler) GetDocumentQuiz(c *fiber.Ctx) error {
	resp, err := h.service.GenerateForDocument(c.UserContext(), documentID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
