package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudprep/cloudprep-client/internal/auth"
	"github.com/cloudprep/cloudprep-client/internal/model"
)

type fakeBatchAPI struct {
	submission *model.Submission
	gotExamID  int64
	gotAnswers []model.AnswerChoice
}

func (f *fakeBatchAPI) SubmitExam(_ context.Context, _ *auth.Session, examID int64, answers []model.AnswerChoice) (*model.Submission, error) {
	f.gotExamID = examID
	f.gotAnswers = answers
	return f.submission, nil
}

type fakeCheckAPI struct {
	verdicts map[int64]*model.CheckAnswerResult
	calls    int
}

func (f *fakeCheckAPI) CheckAnswer(_ context.Context, questionID, _ int64) (*model.CheckAnswerResult, error) {
	f.calls++
	return f.verdicts[questionID], nil
}

// Both submission integrations must converge on the same result-map shape.
func TestSubmitterStrategiesConverge(t *testing.T) {
	explanation := "because region scope"
	answers := []model.AnswerChoice{
		{QuestionID: 1, AnswerID: 11},
		{QuestionID: 2, AnswerID: 22},
	}

	batch := NewBatchSubmitter(&fakeBatchAPI{
		submission: &model.Submission{
			ExamResultID:   7,
			Score:          50,
			TotalQuestions: 2,
			CorrectCount:   1,
			Details: []model.QuestionResult{
				{QuestionID: 1, IsCorrect: true, UserAnswerID: 11, CorrectAnswerID: 11},
				{QuestionID: 2, IsCorrect: false, UserAnswerID: 22, CorrectAnswerID: 21, Explanation: &explanation},
			},
		},
	}, auth.NewSession("tok"))

	sequential := NewSequentialChecker(&fakeCheckAPI{
		verdicts: map[int64]*model.CheckAnswerResult{
			1: {IsCorrect: true, CorrectAnswerID: 11},
			2: {IsCorrect: false, CorrectAnswerID: 21, Explanation: &explanation},
		},
	})

	fromBatch, err := batch.Submit(context.Background(), 9, answers)
	require.NoError(t, err)
	fromChecks, err := sequential.Submit(context.Background(), 9, answers)
	require.NoError(t, err)

	assert.Equal(t, fromBatch, fromChecks)
	assert.Len(t, fromBatch, 2)
}

func TestSequentialCheckerChecksEveryAnswer(t *testing.T) {
	api := &fakeCheckAPI{verdicts: map[int64]*model.CheckAnswerResult{
		1: {IsCorrect: true, CorrectAnswerID: 11},
		2: {IsCorrect: true, CorrectAnswerID: 21},
		3: {IsCorrect: true, CorrectAnswerID: 31},
	}}
	checker := NewSequentialChecker(api)

	results, err := checker.Submit(context.Background(), 9, []model.AnswerChoice{
		{QuestionID: 1, AnswerID: 11},
		{QuestionID: 2, AnswerID: 21},
		{QuestionID: 3, AnswerID: 31},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, api.calls)
	assert.Equal(t, int64(21), results[2].UserAnswerID)
}

func TestBatchSubmitterForwardsPayload(t *testing.T) {
	backend := &fakeBatchAPI{submission: &model.Submission{}}
	submitter := NewBatchSubmitter(backend, auth.NewSession("tok"))

	answers := []model.AnswerChoice{{QuestionID: 1, AnswerID: 11}}
	_, err := submitter.Submit(context.Background(), 42, answers)
	require.NoError(t, err)
	assert.Equal(t, int64(42), backend.gotExamID)
	assert.Equal(t, answers, backend.gotAnswers)
}
