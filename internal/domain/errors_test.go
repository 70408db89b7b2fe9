package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternalError("Error generating quiz", cause)

	assert.Equal(t, "Error generating quiz: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)

	var domainErr *DomainError
	require.True(t, errors.As(error(err), &domainErr))
	assert.Equal(t, CodeInternal, domainErr.Code)
}

func TestDomainError_MarshalJSONHidesCause(t *testing.T) {
	err := NewInternalError("boom", errors.New("secret detail"))

	data, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)
	assert.JSONEq(t, `{"code":"INTERNAL_ERROR","message":"boom"}`, string(data))
}

func TestNewDocumentNotFoundError(t *testing.T) {
	err := NewDocumentNotFoundError("01HZX")
	assert.Equal(t, CodeDocumentNotFound, err.Code)
	assert.Equal(t, "Document with ID 01HZX not found", err.Message)
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "text", Message: "No input text provided"},
		{Message: "file data is required"},
	}
	assert.Equal(t, "text: No input text provided; file data is required", errs.Error())
}

func TestQuizQuestion_Validate(t *testing.T) {
	valid := QuizQuestion{Question: "What is 2+2?", Options: []string{"3", "4", "5", "6"}, Answer: "4"}
	assert.NoError(t, valid.Validate())

	noStem := valid
	noStem.Question = ""
	assert.Error(t, noStem.Validate())

	threeOptions := valid
	threeOptions.Options = []string{"3", "4", "5"}
	assert.Error(t, threeOptions.Validate())

	foreignAnswer := valid
	foreignAnswer.Answer = "7"
	assert.Error(t, foreignAnswer.Validate())
}

func TestDocument(t *testing.T) {
	doc := NewDocument("notes.pdf", "hello", "aGVsbG8=")
	assert.Equal(t, 5, doc.ContentLength())
	assert.False(t, doc.UploadDate.IsZero())
	assert.NoError(t, doc.Validate())

	doc.FileData = ""
	assert.Error(t, doc.Validate())
}

func TestDocument_ContentLengthCountsCharacters(t *testing.T) {
	doc := NewDocument("résumé.pdf", "Größe über 5 €", "eA==")
	assert.Equal(t, 14, doc.ContentLength())
}
