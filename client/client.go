// Package client is a typed HTTP client for the planner API.
package client

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"planner/dto"
	"planner/models"

	"github.com/go-resty/resty/v2"
)

// APIError is the {error} envelope returned with a non-2xx status.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	http *resty.Client
}

// New returns a client for the server at baseURL, e.g. http://localhost:8000.
func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Content-Type", "application/json").
			SetTimeout(10 * time.Second),
	}
}

// Health calls GET /api and returns its message.
func (c *Client) Health(ctx context.Context) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, resty.MethodGet, "/api", nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *Client) Users() Resource[models.UserRow, dto.CreateUserRequest, dto.UpdateUserRequest] {
	return Resource[models.UserRow, dto.CreateUserRequest, dto.UpdateUserRequest]{c: c, path: "/api/users"}
}

func (c *Client) Courses() Resource[models.CourseRow, dto.CreateCourseRequest, dto.UpdateCourseRequest] {
	return Resource[models.CourseRow, dto.CreateCourseRequest, dto.UpdateCourseRequest]{c: c, path: "/api/courses"}
}

func (c *Client) Modules() Resource[models.ModuleRow, dto.CreateModuleRequest, dto.UpdateModuleRequest] {
	return Resource[models.ModuleRow, dto.CreateModuleRequest, dto.UpdateModuleRequest]{c: c, path: "/api/modules"}
}

func (c *Client) ClassSchedules() Resource[models.ClassScheduleRow, dto.CreateClassScheduleRequest, dto.UpdateClassScheduleRequest] {
	return Resource[models.ClassScheduleRow, dto.CreateClassScheduleRequest, dto.UpdateClassScheduleRequest]{c: c, path: "/api/class_schedules"}
}

func (c *Client) Assessments() Resource[models.AssessmentRow, dto.CreateAssessmentRequest, dto.UpdateAssessmentRequest] {
	return Resource[models.AssessmentRow, dto.CreateAssessmentRequest, dto.UpdateAssessmentRequest]{c: c, path: "/api/assessments"}
}

// Resource issues the four CRUD calls against one collection.
type Resource[Row, Create, Update any] struct {
	c    *Client
	path string
}

func (r Resource[Row, Create, Update]) List(ctx context.Context) ([]Row, error) {
	var rows []Row
	if err := r.c.do(ctx, resty.MethodGet, r.path, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Create returns the id assigned to the new row.
func (r Resource[Row, Create, Update]) Create(ctx context.Context, req Create) (uint, error) {
	var out struct {
		ID uint `json:"id"`
	}
	if err := r.c.do(ctx, resty.MethodPost, r.path, req, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

// Update returns the number of rows changed, 0 when id does not exist.
func (r Resource[Row, Create, Update]) Update(ctx context.Context, id uint, req Update) (int64, error) {
	return r.c.changes(ctx, resty.MethodPut, r.itemPath(id), req)
}

// Delete returns the number of rows removed, 0 when id does not exist.
func (r Resource[Row, Create, Update]) Delete(ctx context.Context, id uint) (int64, error) {
	return r.c.changes(ctx, resty.MethodDelete, r.itemPath(id), nil)
}

func (r Resource[Row, Create, Update]) itemPath(id uint) string {
	return r.path + "/" + strconv.FormatUint(uint64(id), 10)
}

func (c *Client) changes(ctx context.Context, method, path string, body any) (int64, error) {
	var out struct {
		Changes int64 `json:"changes"`
	}
	if err := c.do(ctx, method, path, body, &out); err != nil {
		return 0, err
	}
	return out.Changes, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	apiErr := &APIError{}
	req := c.http.R().
		SetContext(ctx).
		SetResult(result).
		SetError(apiErr)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		apiErr.StatusCode = resp.StatusCode()
		if apiErr.Message == "" {
			apiErr.Message = resp.String()
		}
		return apiErr
	}
	return nil
}
