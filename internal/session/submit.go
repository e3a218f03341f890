package session

import (
	"context"
	"fmt"

	"github.com/cloudprep/cloudprep-client/internal/auth"
	"github.com/cloudprep/cloudprep-client/internal/model"
)

// batchAPI is the slice of the API client the batch integration needs.
type batchAPI interface {
	SubmitExam(ctx context.Context, sess *auth.Session, examID int64, answers []model.AnswerChoice) (*model.Submission, error)
}

// BatchSubmitter submits the whole answer set in one request. This is the
// preferred integration: the server scores and stores the attempt and
// returns full per-question detail.
type BatchSubmitter struct {
	api  batchAPI
	sess *auth.Session
}

// NewBatchSubmitter creates the batch-endpoint submitter.
func NewBatchSubmitter(api batchAPI, sess *auth.Session) *BatchSubmitter {
	return &BatchSubmitter{api: api, sess: sess}
}

// Submit implements Submitter.
func (b *BatchSubmitter) Submit(ctx context.Context, examID int64, answers []model.AnswerChoice) (map[int64]model.QuestionResult, error) {
	submission, err := b.api.SubmitExam(ctx, b.sess, examID, answers)
	if err != nil {
		return nil, err
	}

	results := make(map[int64]model.QuestionResult, len(submission.Details))
	for _, detail := range submission.Details {
		results[detail.QuestionID] = detail
	}
	return results, nil
}

// checkAPI is the slice of the API client the sequential integration needs.
type checkAPI interface {
	CheckAnswer(ctx context.Context, questionID, answerID int64) (*model.CheckAnswerResult, error)
}

// SequentialChecker verifies one answer at a time against the
// per-question check endpoint and assembles the result map locally. The
// endpoint returns no aggregate score, which is why the engine always
// recomputes the score from the map. The attempt is not stored
// server-side in this integration.
type SequentialChecker struct {
	api checkAPI
}

// NewSequentialChecker creates the per-question-check submitter.
func NewSequentialChecker(api checkAPI) *SequentialChecker {
	return &SequentialChecker{api: api}
}

// Submit implements Submitter. A failure on any question aborts the whole
// submission so a retry re-checks everything.
func (s *SequentialChecker) Submit(ctx context.Context, examID int64, answers []model.AnswerChoice) (map[int64]model.QuestionResult, error) {
	results := make(map[int64]model.QuestionResult, len(answers))
	for _, choice := range answers {
		verdict, err := s.api.CheckAnswer(ctx, choice.QuestionID, choice.AnswerID)
		if err != nil {
			return nil, fmt.Errorf("check question %d: %w", choice.QuestionID, err)
		}
		results[choice.QuestionID] = model.QuestionResult{
			QuestionID:      choice.QuestionID,
			IsCorrect:       verdict.IsCorrect,
			UserAnswerID:    choice.AnswerID,
			CorrectAnswerID: verdict.CorrectAnswerID,
			Explanation:     verdict.Explanation,
		}
	}
	return results, nil
}
