package model

import "time"

// Answer is one choosable option of a question. IsCorrect is present only
// when the API was asked for elevated visibility (review mode); it must
// never be trusted client-side before submission.
type Answer struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	IsCorrect *bool  `json:"isCorrect,omitempty"`
}

// Question represents a single exam question with its ordered answers.
// The answer order defines the navigation/display sequence.
type Question struct {
	ID          int64     `json:"id"`
	ExamID      int64     `json:"examId"`
	Content     string    `json:"content"`
	Explanation *string   `json:"explanation"`
	CreatedAt   time.Time `json:"createdAt"`
	Answers     []Answer  `json:"answers"`
}

// CheckAnswerResult is the server verdict for a single answered question.
type CheckAnswerResult struct {
	IsCorrect       bool    `json:"isCorrect"`
	CorrectAnswerID int64   `json:"correctAnswerId"`
	Explanation     *string `json:"explanation"`
}
