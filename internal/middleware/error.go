package middleware

import (
	"errors"
	"net/http"
	"strings"

	"autoquiz/internal/domain"
	"autoquiz/internal/dto"
	"autoquiz/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler is a centralized error handler. Every error body carries the message
// under "error".
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		logger := logger.Get()

		// Handle validation errors
		var validationErrs domain.ValidationErrors
		var single domain.ValidationError
		if errors.As(err, &single) {
			validationErrs = domain.ValidationErrors{single}
		}
		if len(validationErrs) > 0 || errors.As(err, &validationErrs) {
			logger.Warn("Validation errors occurred",
				zap.String("path", c.Path()),
				zap.Int("error_count", len(validationErrs)),
			)
			return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{
				Error:   validationMessage(validationErrs),
				Code:    string(domain.CodeValidation),
				Status:  http.StatusBadRequest,
				Details: validationErrs,
			})
		}

		// Handle domain errors
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			statusCode := mapDomainErrorToHTTPStatus(domainErr)

			fields := []zap.Field{
				zap.String("code", string(domainErr.Code)),
				zap.String("message", domainErr.Message),
				zap.Int("status", statusCode),
				zap.Error(domainErr.Err),
			}
			if statusCode >= http.StatusInternalServerError {
				logger.Error("Domain error occurred", fields...)
			} else {
				logger.Info("Request rejected", fields...)
			}

			return c.Status(statusCode).JSON(dto.ErrorResponse{
				Error:  domainErr.Message,
				Code:   string(domainErr.Code),
				Status: statusCode,
			})
		}

		// Handle fiber errors
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			logger.Warn("Fiber error occurred",
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
			)
			return c.Status(fiberErr.Code).JSON(dto.ErrorResponse{
				Error:  fiberErr.Message,
				Code:   "HTTP_ERROR",
				Status: fiberErr.Code,
			})
		}

		// Handle unknown errors
		logger.Error("Unknown error occurred",
			zap.String("path", c.Path()),
			zap.Error(err),
		)

		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:  "Internal server error",
			Code:   string(domain.CodeInternal),
			Status: http.StatusInternalServerError,
		})
	}
}

func validationMessage(errs domain.ValidationErrors) string {
	if len(errs) == 0 {
		return "Request validation failed"
	}
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, "; ")
}

// mapDomainErrorToHTTPStatus maps domain errors to HTTP status codes
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.CodeDocumentNotFound:
		return http.StatusNotFound
	case domain.CodeInvalidInput, domain.CodeValidation, domain.CodeUnsupportedFile:
		return http.StatusBadRequest
	case domain.CodeFileTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
