package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/cloudprep/cloudprep-client/internal/auth"
	"github.com/cloudprep/cloudprep-client/internal/model"
)

// SubmitExam submits the full answer map of one attempt as a single batch
// and returns the scored result with per-question detail.
func (c *Client) SubmitExam(ctx context.Context, sess *auth.Session, examID int64, answers []model.AnswerChoice) (*model.Submission, error) {
	body := model.SubmitExamRequest{ExamID: examID, Answers: answers}

	var submission model.Submission
	if err := c.post(ctx, "/exam-results", sess, body, &submission); err != nil {
		return nil, err
	}
	return &submission, nil
}

// History fetches a page of the user's past results.
func (c *Client) History(ctx context.Context, sess *auth.Session, page, limit int) (*model.Page[model.ResultSummary], error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var result model.Page[model.ResultSummary]
	if err := c.get(ctx, "/exam-results/history", query, sess, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Stats fetches the user's aggregate statistics. Values are formatted,
// never recomputed, client-side.
func (c *Client) Stats(ctx context.Context, sess *auth.Session) (*model.UserStats, error) {
	var stats model.UserStats
	if err := c.get(ctx, "/exam-results/stats", nil, sess, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetResult fetches one stored result including the user's chosen answers.
func (c *Client) GetResult(ctx context.Context, sess *auth.Session, id int64) (*model.ResultSummary, error) {
	var result model.ResultSummary
	if err := c.get(ctx, fmt.Sprintf("/exam-results/%d", id), nil, sess, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
