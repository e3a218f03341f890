package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/cloudprep/cloudprep-client/internal/model"
)

// ListCoursesParams are the optional filters of the course list endpoint.
// Zero values mean "not set".
type ListCoursesParams struct {
	Page       int
	Limit      int
	ProviderID int64
	Level      model.CourseLevel
	Search     string
}

// ListCourses fetches a page of courses with optional filters.
func (c *Client) ListCourses(ctx context.Context, p ListCoursesParams) (*model.Page[model.Course], error) {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 10
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(p.Page))
	query.Set("limit", strconv.Itoa(p.Limit))
	if p.ProviderID > 0 {
		query.Set("providerId", strconv.FormatInt(p.ProviderID, 10))
	}
	if p.Level != "" {
		query.Set("level", string(p.Level))
	}
	if p.Search != "" {
		query.Set("search", p.Search)
	}

	var page model.Page[model.Course]
	if err := c.get(ctx, "/courses", query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetCourse fetches a single course by id.
func (c *Client) GetCourse(ctx context.Context, id int64) (*model.Course, error) {
	var course model.Course
	if err := c.get(ctx, fmt.Sprintf("/courses/%d", id), nil, nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// CoursesByProvider fetches the unpaged course list of one provider.
func (c *Client) CoursesByProvider(ctx context.Context, providerID int64) ([]model.Course, error) {
	var courses []model.Course
	if err := c.get(ctx, fmt.Sprintf("/courses/provider/%d", providerID), nil, nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}
