package domain

// OptionCount is the number of options every multiple-choice question carries.
const OptionCount = 4

// QuizQuestion is one structured multiple-choice question.
// Answer holds the value of the correct option, not its position.
type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// Validate reports whether q satisfies the question invariants: a non-empty stem,
// exactly OptionCount options and an answer drawn from them.
func (q *QuizQuestion) Validate() error {
	if q.Question == "" {
		return NewValidationError("question is required")
	}
	if len(q.Options) != OptionCount {
		return NewValidationError("exactly 4 options are required")
	}
	for _, opt := range q.Options {
		if opt == q.Answer {
			return nil
		}
	}
	return NewValidationError("answer must be one of the options")
}
