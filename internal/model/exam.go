package model

import "time"

// Exam represents an exam entity. Immutable once fetched for a session.
type Exam struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     *string   `json:"description"`
	DurationMinutes int       `json:"durationMinutes"`
	TotalQuestions  int       `json:"totalQuestions"`
	CreatedAt       time.Time `json:"createdAt"`
	Course          CourseRef `json:"course"`
	Count           ExamCount `json:"_count"`
}

// ExamCount carries relation counts embedded in exam payloads.
type ExamCount struct {
	Questions int `json:"questions"`
}

// ExamWithQuestions is the start/review payload: an exam plus its
// questions in navigation order.
type ExamWithQuestions struct {
	Exam
	Questions []Question `json:"questions"`
}
