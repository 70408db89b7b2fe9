package handler

import (
	"autoquiz/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes registers the health probe and the /api routes.
func SetupRoutes(app *fiber.App, healthHandler *HealthHandler, quizHandler *QuizHandler, documentHandler *DocumentHandler) {
	validate := middleware.NewValidationMiddleware()

	app.Get("/health", healthHandler.Health)

	api := app.Group("/api")

	quiz := api.Group("/quiz")
	quiz.Post("/generate", validate.ValidateGenerateQuizRequest(), quizHandler.GenerateQuiz)
	quiz.Get("/document/:id", validate.ValidateDocumentID(), quizHandler.GetDocumentQuiz)

	documents := api.Group("/documents")
	documents.Post("", documentHandler.UploadDocument)
	documents.Get("", documentHandler.ListDocuments)
	documents.Get("/:id", validate.ValidateDocumentID(), documentHandler.GetDocument)
	documents.Delete("/:id", validate.ValidateDocumentID(), documentHandler.DeleteDocument)
}
