package validation

import (
	"autoquiz/internal/domain"
	"autoquiz/internal/util"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerateQuizRequest requires a non-empty text. Whitespace-only text is
// accepted and handed to the generator as is.
func (v *Validator) ValidateGenerateQuizRequest(text string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if text == "" {
		errors = append(errors, domain.ValidationError{Field: "text", Message: "No input text provided"})
	}
	return errors
}

// IsValidDocumentID reports whether id could name a stored document.
func (v *Validator) IsValidDocumentID(id string) bool {
	return util.IsValidULID(id)
}
