package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/cloudprep/cloudprep-client/internal/model"
)

// ListExams fetches a page of exams, optionally restricted to one course
// (courseID 0 = all).
func (c *Client) ListExams(ctx context.Context, page, limit int, courseID int64) (*model.Page[model.Exam], error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	if courseID > 0 {
		query.Set("courseId", strconv.FormatInt(courseID, 10))
	}

	var result model.Page[model.Exam]
	if err := c.get(ctx, "/exams", query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ExamsByCourse fetches the unpaged exam list of one course.
func (c *Client) ExamsByCourse(ctx context.Context, courseID int64) ([]model.Exam, error) {
	var exams []model.Exam
	if err := c.get(ctx, fmt.Sprintf("/exams/course/%d", courseID), nil, nil, &exams); err != nil {
		return nil, err
	}
	return exams, nil
}

// GetExam fetches exam details without questions.
func (c *Client) GetExam(ctx context.Context, id int64) (*model.Exam, error) {
	var exam model.Exam
	if err := c.get(ctx, fmt.Sprintf("/exams/%d", id), nil, nil, &exam); err != nil {
		return nil, err
	}
	return &exam, nil
}

// StartExam fetches an exam together with its questions, correctness
// markers hidden.
func (c *Client) StartExam(ctx context.Context, id int64) (*model.ExamWithQuestions, error) {
	var exam model.ExamWithQuestions
	if err := c.get(ctx, fmt.Sprintf("/exams/%d/start", id), nil, nil, &exam); err != nil {
		return nil, err
	}
	return &exam, nil
}

// ReviewExam fetches an exam together with its questions, correctness
// markers revealed.
func (c *Client) ReviewExam(ctx context.Context, id int64) (*model.ExamWithQuestions, error) {
	var exam model.ExamWithQuestions
	if err := c.get(ctx, fmt.Sprintf("/exams/%d/review", id), nil, nil, &exam); err != nil {
		return nil, err
	}
	return &exam, nil
}
