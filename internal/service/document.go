package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"autoquiz/internal/config"
	"autoquiz/internal/domain"
	"autoquiz/internal/dto"
	"autoquiz/internal/logger"
	"autoquiz/internal/metrics"

	"go.uber.org/zap"
)

// DocumentService defines the interface for document operations
type DocumentService interface {
	Upload(ctx context.Context, filename string, data []byte) (*dto.DocumentResponse, error)
	List(ctx context.Context) (*dto.DocumentListResponse, error)
	Get(ctx context.Context, id string) (*dto.DocumentResponse, error)
	Delete(ctx context.Context, id string) error
}

type documentService struct {
	repo      domain.DocumentRepository
	extractor domain.TextExtractor
	maxBytes  int
}

// NewDocumentService creates a new instance of documentService
func NewDocumentService(repo domain.DocumentRepository, extractor domain.TextExtractor, cfg *config.Config) DocumentService {
	s := &documentService{repo: repo, extractor: extractor}
	if cfg != nil {
		s.maxBytes = cfg.Upload.MaxBytes
	}
	return s
}

// Upload extracts the text of a PDF and stores it together with the original file.
func (s *documentService) Upload(ctx context.Context, filename string, data []byte) (*dto.DocumentResponse, error) {
	if !strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		metrics.DocumentUploads.WithLabelValues("rejected").Inc()
		return nil, domain.NewUnsupportedFileError("Only PDF files are supported")
	}
	if s.maxBytes > 0 && len(data) > s.maxBytes {
		metrics.DocumentUploads.WithLabelValues("rejected").Inc()
		return nil, domain.NewFileTooLargeError(s.maxBytes)
	}

	text, err := s.extractor.ExtractText(ctx, data)
	if err != nil {
		metrics.DocumentUploads.WithLabelValues("failed").Inc()
		logger.Get().Warn("DocumentService: text extraction failed",
			zap.String("filename", filename), zap.Error(err))
		return nil, domain.NewDocumentProcessingError(err)
	}

	doc := domain.NewDocument(filename, text, base64.StdEncoding.EncodeToString(data))
	if err := doc.Validate(); err != nil {
		metrics.DocumentUploads.WithLabelValues("rejected").Inc()
		return nil, err
	}
	if err := s.repo.Save(ctx, doc); err != nil {
		metrics.DocumentUploads.WithLabelValues("failed").Inc()
		return nil, domain.NewDocumentProcessingError(err)
	}

	metrics.DocumentUploads.WithLabelValues("stored").Inc()
	logger.Get().Info("DocumentService: document stored",
		zap.String("id", doc.ID),
		zap.String("filename", filename),
		zap.Int("content_length", doc.ContentLength()))

	resp := dto.ToDocumentResponse(doc)
	resp.Message = "Document uploaded successfully"
	return &resp, nil
}

func (s *documentService) List(ctx context.Context) (*dto.DocumentListResponse, error) {
	docs, err := s.repo.List(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list documents", err)
	}

	resp := &dto.DocumentListResponse{Documents: make([]dto.DocumentResponse, 0, len(docs))}
	for _, doc := range docs {
		resp.Documents = append(resp.Documents, dto.ToDocumentResponse(doc))
	}
	resp.Count = len(resp.Documents)
	return resp, nil
}

func (s *documentService) Get(ctx context.Context, id string) (*dto.DocumentResponse, error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError(fmt.Sprintf("Failed to get document %s", id), err)
	}
	if doc == nil {
		return nil, domain.NewDocumentNotFoundError(id)
	}
	resp := dto.ToDocumentResponse(doc)
	return &resp, nil
}

func (s *documentService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return domain.NewInternalError(fmt.Sprintf("Failed to delete document %s", id), err)
	}
	if !deleted {
		return domain.NewDocumentNotFoundError(id)
	}
	logger.Get().Info("DocumentService: document deleted", zap.String("id", id))
	return nil
}
