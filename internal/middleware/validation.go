package middleware

import (
	"autoquiz/internal/domain"
	"autoquiz/internal/dto"
	"autoquiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the validation middleware.
const (
	ValidatedQuizRequestKey = "validated_quiz_request"
	ValidatedDocumentIDKey  = "validated_document_id"
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

// ValidateGenerateQuizRequest parses and validates the POST /api/quiz/generate body.
func (vm *ValidationMiddleware) ValidateGenerateQuizRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.GenerateQuizRequest
		if err := c.BodyParser(&req); err != nil {
			return domain.NewInvalidInputError("Invalid request body")
		}

		if errors := vm.validator.ValidateGenerateQuizRequest(req.Text); len(errors) > 0 {
			return errors
		}

		c.Locals(ValidatedQuizRequestKey, &req)
		return c.Next()
	}
}

// ValidateDocumentID rejects ids that cannot exist with the same 404 a missing
// document gets.
func (vm *ValidationMiddleware) ValidateDocumentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !vm.validator.IsValidDocumentID(id) {
			return domain.NewDocumentNotFoundError(id)
		}
		c.Locals(ValidatedDocumentIDKey, id)
		return c.Next()
	}
}
