package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateGenerateQuizRequest(t *testing.T) {
	v := NewValidator()

	errs := v.ValidateGenerateQuizRequest("")
	require.Len(t, errs, 1)
	assert.Equal(t, "text", errs[0].Field)
	assert.Equal(t, "No input text provided", errs[0].Message)

	assert.Empty(t, v.ValidateGenerateQuizRequest("Cells divide by mitosis."))
	assert.Empty(t, v.ValidateGenerateQuizRequest("   "))
}

func TestIsValidDocumentID(t *testing.T) {
	v := NewValidator()
	assert.True(t, v.IsValidDocumentID("01ARZ3NDEKTSV4RRFFQ69G5FAV"))
	assert.False(t, v.IsValidDocumentID("42"))
	assert.False(t, v.IsValidDocumentID(""))
}
