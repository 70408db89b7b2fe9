package dto

import "autoquiz/internal/domain"

// GenerateQuizRequest is the body of POST /api/quiz/generate
// @Description Request body for generating a quiz from text
type GenerateQuizRequest struct {
	Text string `json:"text" example:"Photosynthesis is the process by which plants convert light into chemical energy."`
}

// QuizResponse wraps generated questions under the "quiz" key
// @Description Generated quiz questions
type QuizResponse struct {
	Quiz []domain.QuizQuestion `json:"quiz"`
	// Outcome records where the questions came from (cache, llm or fallback).
	Outcome string `json:"-"`
}

// NewQuizResponse never serializes a nil slice, so clients always see an array.
func NewQuizResponse(questions []domain.QuizQuestion) *QuizResponse {
	if questions == nil {
		questions = []domain.QuizQuestion{}
	}
	return &QuizResponse{Quiz: questions}
}
