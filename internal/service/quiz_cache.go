package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"autoquiz/internal/cache"
	"autoquiz/internal/config"
	"autoquiz/internal/domain"
	"autoquiz/internal/logger"
	"autoquiz/internal/util"

	"go.uber.org/zap"
)

const DefaultQuizCacheTTL = 24 * time.Hour

// QuizCacheService stores parsed quizzes keyed by the text they were generated from.
type QuizCacheService interface {
	GetQuiz(ctx context.Context, text string) ([]domain.QuizQuestion, bool)
	PutQuiz(ctx context.Context, text string, questions []domain.QuizQuestion) error
}

type quizCacheService struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewQuizCacheService returns a cache backed by c. A nil c disables caching.
func NewQuizCacheService(c domain.Cache, cfg *config.Config) QuizCacheService {
	ttl := DefaultQuizCacheTTL
	if cfg != nil {
		ttl = cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.GeneratedQuiz, DefaultQuizCacheTTL)
	}
	return &quizCacheService{cache: c, ttl: ttl}
}

// QuizCacheKey is the cache key for quizzes generated from text.
func QuizCacheKey(text string) string {
	return cache.GenerateCacheKey("quiz", "generated", util.HashString(text))
}

// GetQuiz reports a miss for any cache failure; a broken cache only costs a generation.
func (s *quizCacheService) GetQuiz(ctx context.Context, text string) ([]domain.QuizQuestion, bool) {
	if s.cache == nil {
		return nil, false
	}

	key := QuizCacheKey(text)
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("QuizCacheService: cache get failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var questions []domain.QuizQuestion
	if err := json.Unmarshal([]byte(raw), &questions); err != nil {
		logger.Get().Warn("QuizCacheService: dropping unreadable cache entry", zap.String("key", key), zap.Error(err))
		_ = s.cache.Delete(ctx, key)
		return nil, false
	}
	return questions, true
}

func (s *quizCacheService) PutQuiz(ctx context.Context, text string, questions []domain.QuizQuestion) error {
	if s.cache == nil {
		return nil
	}

	data, err := json.Marshal(questions)
	if err != nil {
		return err
	}

	key := QuizCacheKey(text)
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		return err
	}
	logger.Get().Debug("QuizCacheService: quiz cached", zap.String("key", key), zap.Int("questions", len(questions)))
	return nil
}
