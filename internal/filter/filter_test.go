package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudprep/cloudprep-client/internal/model"
)

var (
	aws   = model.Provider{ID: 1, Name: "AWS"}
	azure = model.Provider{ID: 2, Name: "Azure"}

	courses = []model.Course{
		{ID: 10, Title: "AWS Solutions Architect", Provider: aws},
		{ID: 11, Title: "AZ-900 Fundamentals", Provider: azure},
		{ID: 12, Title: "AWS Developer", Provider: aws},
	}

	exams = []model.Exam{
		{ID: 100, Title: "SAA practice 1", Course: model.CourseRef{ID: 10}},
		{ID: 101, Title: "AZ-900 practice", Course: model.CourseRef{ID: 11}},
		{ID: 102, Title: "DVA practice", Course: model.CourseRef{ID: 12}},
	}
)

func TestCoursesByProvider(t *testing.T) {
	assert.Equal(t, courses, CoursesByProvider(courses, AllProviders), "0 selects all")

	got := CoursesByProvider(courses, aws.ID)
	require.Len(t, got, 2)
	assert.Equal(t, int64(10), got[0].ID, "original order preserved")
	assert.Equal(t, int64(12), got[1].ID)
}

func TestCoursesByProviderAndCourseIsSubset(t *testing.T) {
	byProvider := CoursesByProvider(courses, aws.ID)
	narrowed := CoursesByProviderAndCourse(courses, aws.ID, 12)

	require.Len(t, narrowed, 1)
	assert.Contains(t, byProvider, narrowed[0])

	// Course under a different provider yields nothing.
	assert.Empty(t, CoursesByProviderAndCourse(courses, aws.ID, 11))
}

func TestExamsByProviderIsTransitive(t *testing.T) {
	got := ExamsByProvider(exams, courses, aws.ID)
	require.Len(t, got, 2)
	assert.Equal(t, int64(100), got[0].ID)
	assert.Equal(t, int64(102), got[1].ID)

	assert.Equal(t, exams, ExamsByProvider(exams, courses, AllProviders))
}

func TestExamsByCourse(t *testing.T) {
	got := ExamsByCourse(exams, 11)
	require.Len(t, got, 1)
	assert.Equal(t, int64(101), got[0].ID)
	assert.Equal(t, exams, ExamsByCourse(exams, AllCourses))
}

func testNotes() []model.Note {
	return []model.Note{
		{ID: 1, Content: "remember the well-architected pillars"},
		{ID: 2, Content: "tricky one", Question: &model.NoteQuestion{
			Content: "Which service stores objects?",
			Exam:    &model.NoteExam{Title: "AWS Solutions Architect", Course: &model.NoteCourse{Title: "AWS SAA"}},
		}},
		{ID: 3, Content: "revisit identity", Course: &model.NoteCourse{Title: "AZ-900 Fundamentals"}},
	}
}

func TestSearchNotes(t *testing.T) {
	notes := testNotes()

	t.Run("blank query matches everything in order", func(t *testing.T) {
		assert.Equal(t, notes, SearchNotes(notes, ""))
		assert.Equal(t, notes, SearchNotes(notes, "   "))
	})

	t.Run("matches linked exam title only", func(t *testing.T) {
		got := SearchNotes(notes, "AWS")
		require.Len(t, got, 1)
		assert.Equal(t, int64(2), got[0].ID)
	})

	t.Run("case-insensitive body match", func(t *testing.T) {
		got := SearchNotes(notes, "PILLARS")
		require.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].ID)
	})

	t.Run("matches direct course title", func(t *testing.T) {
		got := SearchNotes(notes, "az-900")
		require.Len(t, got, 1)
		assert.Equal(t, int64(3), got[0].ID)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, SearchNotes(notes, "kubernetes"))
	})
}

func TestPassHeuristic(t *testing.T) {
	assert.True(t, Passed(70))
	assert.True(t, Passed(100))
	assert.False(t, Passed(69))
}

func TestSummarizeFormatsOnly(t *testing.T) {
	s := Summarize(model.UserStats{
		TotalExamsTaken:     4,
		AverageScore:        66.5,
		TotalCorrectAnswers: 40,
		TotalQuestions:      60,
		PassedExams:         2,
		FailedExams:         2,
	})

	assert.Equal(t, 67, s.AveragePercent, "rounded, not recomputed")
	assert.False(t, s.AveragePassed)
	assert.Equal(t, 4, s.ExamsTaken)
	assert.Equal(t, 2, s.PassedExams)
}
