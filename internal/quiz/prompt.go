// Package quiz turns source text into multiple-choice quizzes: it builds the prompt
// sent to the generation collaborator, parses the collaborator's free-text reply into
// structured questions and supplies a placeholder quiz when generation fails.
package quiz

import "fmt"

// QuestionCount is the number of questions requested from the model.
const QuestionCount = 3

const promptTemplate = `Generate a short %d-question multiple-choice quiz based on the following content:

"%s"

Each question must have exactly 4 options labelled a) to d), followed by a line naming the correct option.

Format:
1. Question
   a) Option
   b) Option
   c) Option
   d) Option
   Answer: b)
`

// BuildPrompt embeds sourceText verbatim into the quiz request template.
func BuildPrompt(sourceText string) string {
	return fmt.Sprintf(promptTemplate, QuestionCount, sourceText)
}
