package apiValidator

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"planner/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceID(t *testing.T) {
	app := fiber.New()
	app.Get("/:id", ResourceID(), func(c *fiber.Ctx) error {
		return c.JSON(c.Locals(IDKey))
	})

	cases := map[string]string{
		"/12":    "12",
		"/abc":   "0",
		"/-4":    "0",
		"/1.5":   "0",
		"/00042": "42",
	}
	for path, want := range cases {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, want, string(body), path)
	}
}

func TestBodyLeavesOmittedFieldsNil(t *testing.T) {
	var got *dto.UpdateModuleRequest
	app := fiber.New()
	app.Put("/", UpdateModule(), func(c *fiber.Ctx) error {
		got = c.Locals(BodyKey).(*dto.UpdateModuleRequest)
		return nil
	})

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"credits": 4, "name": null}`))
	req.Header.Set("Content-Type", "application/json")
	_, err := app.Test(req, -1)
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, 4, *got.Credits)
	assert.Nil(t, got.Name)
	assert.Nil(t, got.Code)
	assert.Nil(t, got.CourseID)
}

func TestBodyAcceptsEmptyBody(t *testing.T) {
	var got *dto.UpdateCourseRequest
	app := fiber.New()
	app.Put("/", UpdateCourse(), func(c *fiber.Ctx) error {
		got = c.Locals(BodyKey).(*dto.UpdateCourseRequest)
		return nil
	})

	_, err := app.Test(httptest.NewRequest(http.MethodPut, "/", nil), -1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.Name)
}
