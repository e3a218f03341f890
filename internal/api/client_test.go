package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudprep/cloudprep-client/internal/auth"
	"github.com/cloudprep/cloudprep-client/internal/model"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL, 5*time.Second, zerolog.Nop())
}

func TestListCoursesDecodesPage(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/courses", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.Equal(t, "2", r.URL.Query().Get("providerId"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{
				{"id": 11, "title": "AZ-900 Fundamentals", "level": "Foundational",
					"provider": map[string]interface{}{"id": 2, "name": "Azure"},
					"_count":   map[string]int{"exams": 3}},
			},
			"total": 1, "page": 1, "limit": 20, "totalPages": 1,
		})
	}))

	page, err := client.ListCourses(context.Background(), ListCoursesParams{Limit: 20, ProviderID: 2})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "AZ-900 Fundamentals", page.Data[0].Title)
	assert.Equal(t, model.LevelFoundational, page.Data[0].Level)
	assert.Equal(t, 3, page.Data[0].Count.Exams)
}

func TestErrorMessageListUsesFirstElement(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": []string{"email must be an email", "password is too short"},
		})
	}))

	_, err := client.Login(context.Background(), model.LoginRequest{Email: "x", Password: "y"})
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, CodeAPI, apiErr.Code)
	assert.Equal(t, "email must be an email", apiErr.Message)
}

func TestErrorNonJSONBodyDegradesToText(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))

	_, err := client.GetExam(context.Background(), 1)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "upstream exploded", apiErr.Message)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
}

func TestNoteByQuestionNotFoundIsNil(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "note not found"})
	}))

	note, err := client.NoteByQuestion(context.Background(), auth.NewSession("tok"), 5)
	assert.NoError(t, err)
	assert.Nil(t, note)
}

func TestNetworkFailureIsTyped(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // nothing listening anymore

	client := New(server.URL, time.Second, zerolog.Nop())
	_, err := client.GetCourse(context.Background(), 1)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, CodeNetwork, apiErr.Code)
	assert.Equal(t, 0, apiErr.Status)
}

func TestSubmitExamSendsBearerAndPayload(t *testing.T) {
	var captured model.SubmitExamRequest
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/exam-results", r.URL.Path)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(model.Submission{
			ExamResultID: 7, Score: 67, TotalQuestions: 3, CorrectCount: 2,
			Details: []model.QuestionResult{
				{QuestionID: 1, IsCorrect: true, UserAnswerID: 11, CorrectAnswerID: 11},
			},
		})
	}))

	sess := auth.NewSession("secret-token")
	submission, err := client.SubmitExam(context.Background(), sess, 9, []model.AnswerChoice{
		{QuestionID: 1, AnswerID: 11},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), captured.ExamID)
	require.Len(t, captured.Answers, 1)
	assert.Equal(t, int64(11), captured.Answers[0].AnswerID)
	assert.Equal(t, 67, submission.Score)
}

func TestQuestionsByExamHidesCorrectness(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/questions/exam/9", r.URL.Path)
		assert.Equal(t, "false", r.URL.Query().Get("showAnswers"))
		json.NewEncoder(w).Encode([]model.Question{
			{ID: 1, ExamID: 9, Content: "Q1", Answers: []model.Answer{{ID: 11, Content: "A"}}},
		})
	}))

	questions, err := client.QuestionsByExam(context.Background(), 9, false)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Nil(t, questions[0].Answers[0].IsCorrect)
}

func TestUnauthorizedIsTyped(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized"})
	}))

	_, err := client.Stats(context.Background(), auth.NewSession(""))
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, CodeUnauthorized, apiErr.Code)
}
