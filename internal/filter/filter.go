// Package filter derives display lists from in-memory collections already
// fetched from the API. Every function is pure and order-preserving:
// identical inputs produce identical outputs, and filtering never
// reorders.
package filter

import (
	"strings"

	"github.com/cloudprep/cloudprep-client/internal/model"
)

// AllProviders and AllCourses select everything when used as filter ids.
const (
	AllProviders int64 = 0
	AllCourses   int64 = 0
)

// CoursesByProvider returns the courses tagged with the given provider.
// providerID 0 returns the input unchanged.
func CoursesByProvider(courses []model.Course, providerID int64) []model.Course {
	if providerID == AllProviders {
		return courses
	}
	out := make([]model.Course, 0, len(courses))
	for _, c := range courses {
		if c.Provider.ID == providerID {
			out = append(out, c)
		}
	}
	return out
}

// CoursesByProviderAndCourse narrows a provider filter further by exact
// course id. The result is always a subset of the provider filter alone,
// and empty when the course does not belong to the provider.
func CoursesByProviderAndCourse(courses []model.Course, providerID, courseID int64) []model.Course {
	narrowed := CoursesByProvider(courses, providerID)
	if courseID == AllCourses {
		return narrowed
	}
	out := make([]model.Course, 0, 1)
	for _, c := range narrowed {
		if c.ID == courseID {
			out = append(out, c)
		}
	}
	return out
}

// ExamsByProvider keeps the exams whose course belongs to the given
// provider. The provider relation is transitive through each exam's
// course: first the course ids under the provider are collected, then
// exams are kept by course-id membership. providerID 0 returns the input
// unchanged.
func ExamsByProvider(exams []model.Exam, courses []model.Course, providerID int64) []model.Exam {
	if providerID == AllProviders {
		return exams
	}
	courseIDs := make(map[int64]struct{})
	for _, c := range courses {
		if c.Provider.ID == providerID {
			courseIDs[c.ID] = struct{}{}
		}
	}
	out := make([]model.Exam, 0, len(exams))
	for _, e := range exams {
		if _, ok := courseIDs[e.Course.ID]; ok {
			out = append(out, e)
		}
	}
	return out
}

// ExamsByCourse keeps the exams of one course. courseID 0 returns the
// input unchanged.
func ExamsByCourse(exams []model.Exam, courseID int64) []model.Exam {
	if courseID == AllCourses {
		return exams
	}
	out := make([]model.Exam, 0, len(exams))
	for _, e := range exams {
		if e.Course.ID == courseID {
			out = append(out, e)
		}
	}
	return out
}

// SearchNotes keeps the notes matching a case-insensitive substring query.
// A note matches when any of its content, linked question content, linked
// exam title, that exam's course title, or the note's own course title
// contains the query. A blank query matches everything.
func SearchNotes(notes []model.Note, query string) []model.Note {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return notes
	}
	out := make([]model.Note, 0, len(notes))
	for _, n := range notes {
		if noteMatches(n, q) {
			out = append(out, n)
		}
	}
	return out
}

func noteMatches(n model.Note, q string) bool {
	if strings.Contains(strings.ToLower(n.Content), q) {
		return true
	}
	if n.Question != nil {
		if strings.Contains(strings.ToLower(n.Question.Content), q) {
			return true
		}
		if exam := n.Question.Exam; exam != nil {
			if strings.Contains(strings.ToLower(exam.Title), q) {
				return true
			}
			if exam.Course != nil && strings.Contains(strings.ToLower(exam.Course.Title), q) {
				return true
			}
		}
	}
	if n.Course != nil && strings.Contains(strings.ToLower(n.Course.Title), q) {
		return true
	}
	return false
}
