package model

import "time"

// Note is a personal note, optionally linked to a question (and
// transitively to its exam/course) or directly to a course.
type Note struct {
	ID         int64         `json:"id"`
	Content    string        `json:"content"`
	QuestionID *int64        `json:"questionId"`
	CourseID   *int64        `json:"courseId"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
	Question   *NoteQuestion `json:"question,omitempty"`
	Course     *NoteCourse   `json:"course,omitempty"`
}

// NoteQuestion is the question snapshot nested in a note payload.
type NoteQuestion struct {
	ID      int64     `json:"id"`
	Content string    `json:"content"`
	Exam    *NoteExam `json:"exam,omitempty"`
}

// NoteExam is the exam snapshot nested in a note's question link.
type NoteExam struct {
	ID     int64       `json:"id"`
	Title  string      `json:"title"`
	Course *NoteCourse `json:"course,omitempty"`
}

// NoteCourse is the course snapshot nested in a note payload.
type NoteCourse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// SaveNoteRequest creates or updates a note. Whitespace-only content is
// rejected before the request leaves the client.
type SaveNoteRequest struct {
	QuestionID *int64 `json:"questionId,omitempty"`
	CourseID   *int64 `json:"courseId,omitempty"`
	Content    string `json:"content" validate:"required,notblank"`
}
