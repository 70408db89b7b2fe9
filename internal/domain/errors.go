package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeValidation   ErrorCode = "VALIDATION_ERROR"

	// Document specific errors
	CodeDocumentNotFound   ErrorCode = "DOCUMENT_NOT_FOUND"
	CodeUnsupportedFile    ErrorCode = "UNSUPPORTED_FILE"
	CodeFileTooLarge       ErrorCode = "FILE_TOO_LARGE"
	CodeDocumentProcessing ErrorCode = "DOCUMENT_PROCESSING_FAILED"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewDocumentNotFoundError(id string) *DomainError {
	return NewError(CodeDocumentNotFound, fmt.Sprintf("Document with ID %s not found", id), nil)
}

func NewUnsupportedFileError(message string) *DomainError {
	return NewError(CodeUnsupportedFile, message, nil)
}

func NewFileTooLargeError(limit int) *DomainError {
	return NewError(CodeFileTooLarge, fmt.Sprintf("File exceeds the %d byte upload limit", limit), nil)
}

// NewDocumentProcessingError keeps the cause in the client-visible message.
func NewDocumentProcessingError(err error) *DomainError {
	return NewError(CodeDocumentProcessing, fmt.Sprintf("Error processing document: %v", err), err)
}

// ValidationError is a single field-level validation failure.
type ValidationError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a validation error that is not tied to a field.
func NewValidationError(message string) error {
	return ValidationError{Message: message}
}

// ValidationErrors collects every failure found in a request.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}
