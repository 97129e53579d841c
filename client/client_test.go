package client_test

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"

	"planner/client"
	"planner/database/databasetest"
	"planner/dto"
	"planner/routers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func startServer(t *testing.T) *client.Client {
	t.Helper()

	app := routers.NewApp(databasetest.Config(), databasetest.Open(t))
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	return client.New("http://" + ln.Addr().String())
}

func TestClientRoundTrip(t *testing.T) {
	ctx := context.Background()
	api := startServer(t)

	msg, err := api.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "API is running", msg)

	courseID, err := api.Courses().Create(ctx, dto.CreateCourseRequest{Name: ptr("Software Engineering"), Type: ptr("BSc")})
	require.NoError(t, err)
	assert.EqualValues(t, 1, courseID)

	moduleID, err := api.Modules().Create(ctx, dto.CreateModuleRequest{
		Name: ptr("Math"), Code: ptr("MATH101"), Credits: ptr(3), CourseID: dto.Ref(courseID),
	})
	require.NoError(t, err)

	modules, err := api.Modules().List(ctx)
	require.NoError(t, err)
	require.Len(t, modules, 1)
	assert.Equal(t, moduleID, modules[0].ID)
	require.NotNil(t, modules[0].CourseName)
	assert.Equal(t, "Software Engineering", *modules[0].CourseName)

	changed, err := api.Modules().Update(ctx, moduleID, dto.UpdateModuleRequest{Credits: ptr(6)})
	require.NoError(t, err)
	assert.EqualValues(t, 1, changed)

	modules, err = api.Modules().List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, *modules[0].Credits)
	assert.Equal(t, "Math", *modules[0].Name)

	removed, err := api.Courses().Delete(ctx, courseID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	modules, err = api.Modules().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, modules)

	removed, err = api.Courses().Delete(ctx, courseID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, removed)
}

func TestClientSurfacesStoreErrors(t *testing.T) {
	ctx := context.Background()
	api := startServer(t)

	user := dto.CreateUserRequest{
		Email: ptr("dup@example.com"), PasswordHash: ptr("h"), FirstName: ptr("A"),
		LastName: ptr("B"), DateOfBirth: ptr("2000-01-01"),
	}
	_, err := api.Users().Create(ctx, user)
	require.NoError(t, err)

	_, err = api.Users().Create(ctx, user)
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr), "got %v", err)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "UNIQUE constraint failed")

	users, err := api.Users().List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
