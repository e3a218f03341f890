package model

import "time"

// AnswerChoice pairs a question with the answer the user picked for it.
type AnswerChoice struct {
	QuestionID int64 `json:"questionId"`
	AnswerID   int64 `json:"answerId"`
}

// QuestionResult is the post-submission correctness detail for one
// question. Produced only by the server, never derived locally.
type QuestionResult struct {
	QuestionID      int64   `json:"questionId"`
	IsCorrect       bool    `json:"isCorrect"`
	UserAnswerID    int64   `json:"userAnswerId"`
	CorrectAnswerID int64   `json:"correctAnswerId"`
	Explanation     *string `json:"explanation"`
}

// SubmitExamRequest is the batch submission payload.
type SubmitExamRequest struct {
	ExamID  int64          `json:"examId"`
	Answers []AnswerChoice `json:"answers" validate:"required,min=1,dive"`
}

// Submission is the server response to a batch exam submission.
type Submission struct {
	ExamResultID   int64            `json:"examResultId"`
	Score          int              `json:"score"`
	TotalQuestions int              `json:"totalQuestions"`
	CorrectCount   int              `json:"correctCount"`
	Details        []QuestionResult `json:"details"`
}

// UserAnswerRecord is a persisted answer inside a stored result.
type UserAnswerRecord struct {
	QuestionID int64 `json:"questionId"`
	AnswerID   int64 `json:"answerId"`
	IsCorrect  bool  `json:"isCorrect"`
}

// ResultExam is the compact exam reference nested in result payloads.
type ResultExam struct {
	ID     int64      `json:"id"`
	Title  string     `json:"title"`
	Course *CourseRef `json:"course,omitempty"`
}

// ResultSummary is one entry of the user's exam history. Passed is decided
// by the server; the client does not recompute it.
type ResultSummary struct {
	ID             int64              `json:"id"`
	Score          int                `json:"score"`
	CorrectCount   int                `json:"correctCount"`
	TotalQuestions int                `json:"totalQuestions"`
	CompletedAt    time.Time          `json:"completedAt"`
	Passed         bool               `json:"passed"`
	Exam           ResultExam         `json:"exam"`
	UserAnswers    []UserAnswerRecord `json:"userAnswers,omitempty"`
}

// UserStats are aggregate statistics computed by the server.
type UserStats struct {
	TotalExamsTaken     int     `json:"totalExamsTaken"`
	AverageScore        float64 `json:"averageScore"`
	TotalCorrectAnswers int     `json:"totalCorrectAnswers"`
	TotalQuestions      int     `json:"totalQuestions"`
	PassedExams         int     `json:"passedExams"`
	FailedExams         int     `json:"failedExams"`
}
