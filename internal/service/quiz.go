package service

import (
	"context"

	"autoquiz/internal/domain"
	"autoquiz/internal/dto"
	"autoquiz/internal/logger"
	"autoquiz/internal/metrics"
	"autoquiz/internal/quiz"
	"autoquiz/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// QuizService defines the interface for quiz generation
type QuizService interface {
	// Generate builds a quiz from text. Only empty text is an error; generation
	// failures degrade to the fallback quiz.
	Generate(ctx context.Context, text string) (*dto.QuizResponse, error)
	GenerateForDocument(ctx context.Context, documentID string) (*dto.QuizResponse, error)
}

type quizService struct {
	generator domain.QuizGenerator
	docs      domain.DocumentRepository
	quizCache QuizCacheService
	inflight  singleflight.Group
}

// NewQuizService creates a new instance of quizService
func NewQuizService(generator domain.QuizGenerator, docs domain.DocumentRepository, quizCache QuizCacheService) QuizService {
	return &quizService{
		generator: generator,
		docs:      docs,
		quizCache: quizCache,
	}
}

func (s *quizService) Generate(ctx context.Context, text string) (*dto.QuizResponse, error) {
	if text == "" {
		return nil, domain.NewInvalidInputError("No input text provided")
	}
	return s.quizFor(ctx, text).response(), nil
}

func (s *quizService) GenerateForDocument(ctx context.Context, documentID string) (*dto.QuizResponse, error) {
	doc, err := s.docs.GetByID(ctx, documentID)
	if err != nil {
		return nil, domain.NewInternalError("Error generating quiz", err)
	}
	if doc == nil {
		return nil, domain.NewDocumentNotFoundError(documentID)
	}
	return s.quizFor(ctx, doc.Content).response(), nil
}

type generation struct {
	questions []domain.QuizQuestion
	outcome   string
}

func (g generation) response() *dto.QuizResponse {
	resp := dto.NewQuizResponse(g.questions)
	resp.Outcome = g.outcome
	return resp
}

func (s *quizService) quizFor(ctx context.Context, text string) generation {
	if s.quizCache != nil {
		if cached, ok := s.quizCache.GetQuiz(ctx, text); ok {
			metrics.QuizGenerations.WithLabelValues(metrics.OutcomeCache).Inc()
			return generation{questions: cached, outcome: metrics.OutcomeCache}
		}
	}

	// Concurrent requests for the same text share one LLM call. The shared call must
	// not die with whichever caller happened to start it.
	sharedCtx := context.WithoutCancel(ctx)
	v, _, _ := s.inflight.Do(util.HashString(text), func() (interface{}, error) {
		return s.generate(sharedCtx, text), nil
	})

	result := v.(generation)
	metrics.QuizGenerations.WithLabelValues(result.outcome).Inc()
	return result
}

func (s *quizService) generate(ctx context.Context, text string) generation {
	raw, err := s.generator.Generate(ctx, quiz.BuildPrompt(text))
	if err != nil {
		logger.Get().Warn("QuizService: generation failed, serving fallback quiz", zap.Error(err))
		return generation{questions: quiz.Fallback(text), outcome: metrics.OutcomeFallback}
	}

	questions, rejections := quiz.ParseWithRejections(raw)
	for _, r := range rejections {
		metrics.ParseRejections.WithLabelValues(r.Reason).Inc()
	}
	if len(rejections) > 0 {
		logger.Get().Info("QuizService: dropped malformed question blocks",
			zap.Int("kept", len(questions)),
			zap.Int("dropped", len(rejections)))
	}

	if len(questions) > 0 && s.quizCache != nil {
		if err := s.quizCache.PutQuiz(ctx, text, questions); err != nil {
			logger.Get().Warn("QuizService: failed to cache quiz", zap.Error(err))
		}
	}
	return generation{questions: questions, outcome: metrics.OutcomeLLM}
}
