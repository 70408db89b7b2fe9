package domain

import "context"

// QuizGenerator is the external text-generation collaborator. It receives a fully
// built prompt and returns the model's raw reply.
type QuizGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
