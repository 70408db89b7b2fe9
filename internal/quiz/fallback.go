package quiz

import (
	"strings"

	"autoquiz/internal/domain"
)

const defaultTopic = "this topic"

// Topic labels sourceText by its first three words, or "this topic" when it has fewer.
func Topic(sourceText string) string {
	words := strings.Fields(sourceText)
	if len(words) < 3 {
		return defaultTopic
	}
	return strings.Join(words[:3], " ")
}

// Fallback returns the fixed three-question placeholder quiz used when generation
// fails. Only the first stem depends on sourceText.
func Fallback(sourceText string) []domain.QuizQuestion {
	return []domain.QuizQuestion{
		{
			Question: "What is the main subject of the text about " + Topic(sourceText) + "?",
			Options: []string{
				"The historical context",
				"The key concepts",
				"The practical applications",
				"The future developments",
			},
			Answer: "The key concepts",
		},
		{
			Question: "How would you best categorize this content?",
			Options: []string{
				"Instructional",
				"Informative",
				"Persuasive",
				"Narrative",
			},
			Answer: "Informative",
		},
		{
			Question: "What approach does the text primarily use?",
			Options: []string{
				"Chronological",
				"Compare and contrast",
				"Problem-solution",
				"Descriptive",
			},
			Answer: "Descriptive",
		},
	}
}
