package quiz

import (
	"regexp"
	"strings"

	"autoquiz/internal/domain"
)

// minBlockLines is a question line, four option lines and an answer line.
const minBlockLines = 6

// placeholderQuestion stands in for a question line that has no "." separator.
const placeholderQuestion = "Question"

// Digits and whitespace match their Unicode classes, not just ASCII.
var (
	questionMarker = regexp.MustCompile(`^\p{Nd}+\.`)
	answerPattern  = regexp.MustCompile(`(?i)Answer:[\s\p{Z}\x{85}]*([a-d])\)?`)
)

// Rejection reasons reported by ParseWithRejections.
const (
	ReasonTooShort       = "too_short"
	ReasonMissingOptions = "missing_options"
	ReasonMissingAnswer  = "missing_answer"
)

// Rejection describes a candidate block that did not produce a question.
type Rejection struct {
	Block  int // zero-based position among candidate blocks
	Reason string
}

// Parse converts a model reply into questions. Malformed blocks are dropped silently;
// Parse never fails and returns an empty (non-nil) slice when nothing survives.
func Parse(raw string) []domain.QuizQuestion {
	questions, _ := ParseWithRejections(raw)
	return questions
}

// ParseWithRejections is Parse that also reports which candidate blocks were dropped
// and why.
func ParseWithRejections(raw string) ([]domain.QuizQuestion, []Rejection) {
	questions := make([]domain.QuizQuestion, 0, QuestionCount)
	var rejections []Rejection

	for i, block := range splitBlocks(raw) {
		q, reason := parseBlock(block)
		if reason != "" {
			rejections = append(rejections, Rejection{Block: i, Reason: reason})
			continue
		}
		questions = append(questions, q)
	}
	return questions, rejections
}

// splitBlocks cuts the trimmed text immediately before every line that starts with
// "<digits>.". The marker stays with the block that follows it.
func splitBlocks(raw string) []string {
	lines := strings.Split(strings.TrimSpace(raw), "\n")

	var blocks []string
	start := 0
	for i := 1; i < len(lines); i++ {
		if questionMarker.MatchString(lines[i]) {
			blocks = append(blocks, strings.Join(lines[start:i], "\n"))
			start = i
		}
	}
	return append(blocks, strings.Join(lines[start:], "\n"))
}

func parseBlock(block string) (domain.QuizQuestion, string) {
	lines := strings.Split(strings.TrimSpace(block), "\n")
	if len(lines) < minBlockLines {
		return domain.QuizQuestion{}, ReasonTooShort
	}

	question := placeholderQuestion
	if _, after, found := strings.Cut(lines[0], "."); found {
		question = strings.TrimSpace(after)
	}

	options := make([]string, 0, domain.OptionCount)
	for _, line := range lines[1 : 1+domain.OptionCount] {
		if _, after, found := strings.Cut(line, ")"); found {
			options = append(options, strings.TrimSpace(after))
		}
	}
	if len(options) < domain.OptionCount {
		return domain.QuizQuestion{}, ReasonMissingOptions
	}

	match := answerPattern.FindStringSubmatch(lines[len(lines)-1])
	if match == nil {
		return domain.QuizQuestion{}, ReasonMissingAnswer
	}

	// Out-of-range indexes fall back to the first option so every emitted question
	// carries a valid answer.
	index := int(strings.ToLower(match[1])[0] - 'a')
	if index < 0 || index >= len(options) {
		index = 0
	}

	return domain.QuizQuestion{
		Question: question,
		Options:  options,
		Answer:   options[index],
	}, ""
}
