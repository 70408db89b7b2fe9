package dto

import (
	"time"

	"autoquiz/internal/domain"
)

// DocumentResponse is the public view of a stored document. The file itself is never
// returned.
// @Description Document information
type DocumentResponse struct {
	ID            string `json:"id"`
	Filename      string `json:"filename"`
	UploadDate    string `json:"upload_date"`
	ContentLength int    `json:"content_length"`
	Message       string `json:"message,omitempty"`
}

// DocumentListResponse represents GET /api/documents
type DocumentListResponse struct {
	Documents []DocumentResponse `json:"documents"`
	Count     int                `json:"count"`
}

// MessageResponse carries a plain status message
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Error   string                   `json:"error"`
	Code    string                   `json:"code"`
	Status  int                      `json:"status"`
	Details []domain.ValidationError `json:"details,omitempty"`
}

// HealthResponse represents GET /health
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Redis  string `json:"redis" example:"up"`
}

// ToDocumentResponse converts a domain document into its API view.
func ToDocumentResponse(doc *domain.Document) DocumentResponse {
	return DocumentResponse{
		ID:            doc.ID,
		Filename:      doc.Filename,
		UploadDate:    doc.UploadDate.UTC().Format(time.RFC3339),
		ContentLength: doc.ContentLength(),
	}
}
