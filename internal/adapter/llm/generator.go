package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"autoquiz/internal/config"
	"autoquiz/internal/domain"
	"autoquiz/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)


// NewModel builds the langchaingo client for the configured provider. The API key comes
// from cfg and is never read from the environment here.
func NewModel(cfg config.LLMConfig) (llms.Model, error) {
	switch cfg.Provider {
	case "openai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("openai API key cannot be empty")
		}
		return openai.New(
			openai.WithToken(cfg.APIKey),
			openai.WithModel(cfg.Model),
		)
	case "ollama":
		return ollama.New(
			ollama.WithServerURL(cfg.ServerURL),
			ollama.WithModel(cfg.Model),
			ollama.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", cfg.Provider)
	}
}

// QuizGenerator implements domain.QuizGenerator with a langchaingo model.
type QuizGenerator struct {
	model       llms.Model
	temperature float64
	maxTokens   int
	timeout     time.Duration
}

// NewQuizGenerator wraps model with the sampling options from cfg.
func NewQuizGenerator(model llms.Model, cfg config.LLMConfig) *QuizGenerator {
	return &QuizGenerator{
		model:       model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		timeout:     cfg.Timeout,
	}
}

// Generate sends prompt as a single user message and returns the reply text.
func (g *QuizGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	l := logger.Get()

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	opts := []llms.CallOption{llms.WithTemperature(g.temperature)}
	if g.maxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(g.maxTokens))
	}

	start := time.Now()
	reply, err := llms.GenerateFromSinglePrompt(ctx, g.model, prompt, opts...)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("llm request timed out: %w", err)
		}
		return "", fmt.Errorf("llm call failed: %w", err)
	}
	l.Debug("LLM reply received",
		zap.Duration("duration", time.Since(start)),
		zap.String("raw_response", reply))

	// A blank reply is not an error; it parses to an empty quiz.
	reply = stripThinking(reply)
	if strings.TrimSpace(reply) == "" {
		l.Warn("LLM returned an empty reply")
	}
	return reply, nil
}

// stripThinking removes a <think>...</think> section that reasoning models served
// through ollama put before the answer.
func stripThinking(reply string) string {
	start := strings.Index(reply, "<think>")
	if start == -1 {
		return reply
	}
	end := strings.Index(reply, "</think>")
	if end == -1 || end < start {
		return reply
	}
	return strings.TrimSpace(reply[:start] + reply[end+len("</think>"):])
}

// UnavailableGenerator always fails with Err. It stands in for a provider that could
// not be configured so requests degrade to the fallback quiz instead of the server
// refusing to start.
type UnavailableGenerator struct {
	Err error
}

func (u UnavailableGenerator) Generate(context.Context, string) (string, error) {
	return "", u.Err
}

// NewGeneratorFromConfig builds the configured generator. A provider that cannot be
// set up, typically a missing OpenAI key, yields an UnavailableGenerator.
func NewGeneratorFromConfig(cfg config.LLMConfig) domain.QuizGenerator {
	model, err := NewModel(cfg)
	if err != nil {
		logger.Get().Warn("LLM provider unavailable, quizzes will use the fallback",
			zap.String("provider", cfg.Provider), zap.Error(err))
		return UnavailableGenerator{Err: err}
	}
	logger.Get().Info("LLM generator initialized",
		zap.String("provider", cfg.Provider), zap.String("model", cfg.Model))
	return NewQuizGenerator(model, cfg)
}

var (
	_ domain.QuizGenerator = (*QuizGenerator)(nil)
	_ domain.QuizGenerator = UnavailableGenerator{}
)
