package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"autoquiz/internal/config"
	"autoquiz/internal/domain"
	"autoquiz/internal/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BatchSummary reports the result of one cache warming run. Only Generated documents
// end up in the cache; Fallback counts documents served the placeholder quiz because
// the model call failed.
type BatchSummary struct {
	Documents int
	Generated int
	Empty     int
	Fallback  int
	Failed    int
	Duration  time.Duration
}

// BatchService pre-generates quizzes for stored documents so later requests hit the cache.
type BatchService interface {
	WarmQuizCache(ctx context.Context) (*BatchSummary, error)
}

type batchService struct {
	docs        domain.DocumentRepository
	quizSvc     QuizService
	concurrency int
	logger      *zap.Logger
}

// NewBatchService creates a new instance of batchService.
func NewBatchService(docs domain.DocumentRepository, quizSvc QuizService, cfg *config.Config, logger *zap.Logger) BatchService {
	concurrency := 1
	if cfg != nil && cfg.Batch.Concurrency > 0 {
		concurrency = cfg.Batch.Concurrency
	}
	return &batchService{
		docs:        docs,
		quizSvc:     quizSvc,
		concurrency: concurrency,
		logger:      logger,
	}
}

// WarmQuizCache generates a quiz for every document. A failing document is logged and
// counted; only listing the documents or cancellation aborts the run.
func (s *batchService) WarmQuizCache(ctx context.Context) (*BatchSummary, error) {
	start := time.Now()
	s.logger.Info("Starting quiz cache warm-up", zap.Int("concurrency", s.concurrency))

	docs, err := s.docs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	var generated, empty, fallback, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, doc := range docs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			resp, err := s.quizSvc.GenerateForDocument(gctx, doc.ID)
			if err != nil {
				failed.Add(1)
				s.logger.Warn("Quiz generation failed for document",
					zap.String("document_id", doc.ID), zap.Error(err))
				return nil
			}

			switch {
			case resp.Outcome == metrics.OutcomeFallback:
				fallback.Add(1)
				s.logger.Warn("Model unavailable, document not warmed",
					zap.String("document_id", doc.ID))
				return nil
			case len(resp.Quiz) == 0:
				empty.Add(1)
			default:
				generated.Add(1)
			}
			s.logger.Debug("Quiz ready for document",
				zap.String("document_id", doc.ID),
				zap.Int("questions", len(resp.Quiz)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &BatchSummary{
		Documents: len(docs),
		Generated: int(generated.Load()),
		Empty:     int(empty.Load()),
		Fallback:  int(fallback.Load()),
		Failed:    int(failed.Load()),
		Duration:  time.Since(start),
	}
	s.logger.Info("Quiz cache warm-up finished",
		zap.Int("documents", summary.Documents),
		zap.Int("generated", summary.Generated),
		zap.Int("empty", summary.Empty),
		zap.Int("fallback", summary.Fallback),
		zap.Int("failed", summary.Failed),
		zap.Duration("duration", summary.Duration))
	return summary, nil
}
