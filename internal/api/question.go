package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/cloudprep/cloudprep-client/internal/model"
)

// QuestionsByExam fetches the ordered questions of an exam. Correctness
// markers on answers are included only when showAnswers is set (review
// mode); exam-taking always requests them hidden.
func (c *Client) QuestionsByExam(ctx context.Context, examID int64, showAnswers bool) ([]model.Question, error) {
	query := url.Values{}
	query.Set("showAnswers", strconv.FormatBool(showAnswers))

	var questions []model.Question
	if err := c.get(ctx, fmt.Sprintf("/questions/exam/%d", examID), query, nil, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// GetQuestion fetches a single question.
func (c *Client) GetQuestion(ctx context.Context, id int64, showAnswers bool) (*model.Question, error) {
	query := url.Values{}
	query.Set("showAnswers", strconv.FormatBool(showAnswers))

	var question model.Question
	if err := c.get(ctx, fmt.Sprintf("/questions/%d", id), query, nil, &question); err != nil {
		return nil, err
	}
	return &question, nil
}

// CheckAnswer asks the server to judge one chosen answer.
func (c *Client) CheckAnswer(ctx context.Context, questionID, answerID int64) (*model.CheckAnswerResult, error) {
	body := map[string]int64{"answerId": answerID}

	var result model.CheckAnswerResult
	if err := c.post(ctx, fmt.Sprintf("/questions/%d/check", questionID), nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AnswersByQuestion fetches the answers of one question.
func (c *Client) AnswersByQuestion(ctx context.Context, questionID int64, showCorrect bool) ([]model.Answer, error) {
	query := url.Values{}
	query.Set("showCorrect", strconv.FormatBool(showCorrect))

	var answers []model.Answer
	if err := c.get(ctx, fmt.Sprintf("/answers/question/%d", questionID), query, nil, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}

// CorrectAnswer fetches the correct answer of one question.
func (c *Client) CorrectAnswer(ctx context.Context, questionID int64) (*model.Answer, error) {
	var answer model.Answer
	if err := c.get(ctx, fmt.Sprintf("/answers/correct/%d", questionID), nil, nil, &answer); err != nil {
		return nil, err
	}
	return &answer, nil
}
