package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "autoquiz"

// Quiz generation outcomes.
const (
	OutcomeCache    = "cache"
	OutcomeLLM      = "llm"
	OutcomeFallback = "fallback"
)

var (
	QuizGenerations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quiz_generations_total",
		Help:      "Quizzes served, by where the questions came from",
	}, []string{"outcome"})

	// ParseRejections counts question blocks dropped while parsing an LLM reply.
	ParseRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quiz_parse_rejections_total",
		Help:      "Question blocks dropped by the quiz parser, by reason",
	}, []string{"reason"})

	DocumentUploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "document_uploads_total",
		Help:      "Document uploads, by result",
	}, []string{"result"})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests received",
	}, []string{"method", "path", "status"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)

// Middleware records request count and latency. Routes are labelled by their pattern
// so document ids do not explode the label set. Errors from later handlers are
// rendered here and not propagated.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		// The app error handler writes the final status, so run it here before reading it.
		if err := c.Next(); err != nil {
			if err := c.App().ErrorHandler(c, err); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		labels := prometheus.Labels{
			"method": c.Method(),
			"path":   c.Route().Path,
			"status": strconv.Itoa(c.Response().StatusCode()),
		}
		httpRequests.With(labels).Inc()
		httpLatency.With(labels).Observe(time.Since(start).Seconds())
		return nil
	}
}

// Handler exposes the default Prometheus registry.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
