package dto

import (
	"encoding/json"
	"testing"
	"time"

	"autoquiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuizResponse_NilBecomesEmptyArray(t *testing.T) {
	body, err := json.Marshal(NewQuizResponse(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"quiz": []}`, string(body))
}

func TestToDocumentResponse(t *testing.T) {
	doc := &domain.Document{
		ID:         "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		Filename:   "notes.pdf",
		Content:    "hello world",
		FileData:   "ZGF0YQ==",
		UploadDate: time.Date(2024, 3, 1, 12, 30, 0, 0, time.FixedZone("KST", 9*3600)),
	}

	resp := ToDocumentResponse(doc)
	assert.Equal(t, "2024-03-01T03:30:00Z", resp.UploadDate)
	assert.Equal(t, 11, resp.ContentLength)

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "ZGF0YQ==")
	assert.NotContains(t, string(body), "message")
}
