package domain

import (
	"context"
	"time"
	"unicode/utf8"
)

// Document is an uploaded PDF together with its extracted text.
type Document struct {
	ID         string
	Filename   string
	Content    string
	FileData   string // base64 of the original file
	UploadDate time.Time
}

// NewDocument creates a new Document stamped with the current UTC time.
func NewDocument(filename, content, fileData string) *Document {
	return &Document{
		Filename:   filename,
		Content:    content,
		FileData:   fileData,
		UploadDate: time.Now().UTC(),
	}
}

// ContentLength is the length of the extracted text in characters.
func (d *Document) ContentLength() int {
	return utf8.RuneCountInString(d.Content)
}

// Validate validates the document
func (d *Document) Validate() error {
	if d.Filename == "" {
		return NewValidationError("filename is required")
	}
	if d.FileData == "" {
		return NewValidationError("file data is required")
	}
	return nil
}

// DocumentRepository defines the interface for document persistence
type DocumentRepository interface {
	// Save persists a new document and assigns its ID.
	Save(ctx context.Context, doc *Document) error

	// GetByID returns the document or nil when it does not exist.
	GetByID(ctx context.Context, id string) (*Document, error)

	// List returns every document ordered by upload date.
	List(ctx context.Context) ([]*Document, error)

	// Delete removes a document. It returns false when nothing was deleted.
	Delete(ctx context.Context, id string) (bool, error)
}

// TextExtractor pulls plain text out of an uploaded file.
type TextExtractor interface {
	ExtractText(ctx context.Context, data []byte) (string, error)
}
