package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"autoquiz/internal/domain"

	"github.com/ledongthuc/pdf"
)

// ErrEmptyFile is returned for a zero-length upload.
var ErrEmptyFile = errors.New("pdf file is empty")

// Extractor implements domain.TextExtractor for PDF documents.
type Extractor struct{}

// NewExtractor creates a new PDF text extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the plain text of every page in order. Each page that yields
// text is followed by a blank line; pages without text are skipped.
func (e *Extractor) ExtractText(ctx context.Context, data []byte) (text string, err error) {
	if len(data) == 0 {
		return "", ErrEmptyFile
	}

	// The reader panics on some malformed inputs instead of returning an error.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("error extracting text from PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("error extracting text from PDF: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("error extracting text from PDF page %d: %w", i, err)
		}
		if pageText == "" {
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n\n")
	}
	return sb.String(), nil
}

var _ domain.TextExtractor = (*Extractor)(nil)
