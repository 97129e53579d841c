package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNullableID(t *testing.T) {
	assert.Nil(t, nullableID(nil))
	assert.Nil(t, nullableID(Ref(0)))
	assert.Equal(t, uint(7), *nullableID(Ref(7)))
}

func TestIDDecodesFalsyValuesAsZero(t *testing.T) {
	for _, body := range []string{`{"course_id": ""}`, `{"course_id": false}`, `{"course_id": 0}`} {
		var req CreateModuleRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req), body)
		require.NotNil(t, req.CourseID, body)
		assert.Nil(t, req.ToModel().CourseID, body)
	}

	var req CreateModuleRequest
	require.NoError(t, json.Unmarshal([]byte(`{"course_id": null}`), &req))
	assert.Nil(t, req.CourseID)

	require.NoError(t, json.Unmarshal([]byte(`{"course_id": 12}`), &req))
	assert.Equal(t, uint(12), *req.ToModel().CourseID)
}

func TestIDRejectsOtherValues(t *testing.T) {
	for _, body := range []string{`{"course_id": "12"}`, `{"course_id": true}`, `{"course_id": -1}`, `{"course_id": "abc"}`} {
		var req CreateModuleRequest
		assert.Error(t, json.Unmarshal([]byte(body), &req), body)
	}
}

func TestCreateModuleToModelNullsZeroCourse(t *testing.T) {
	req := CreateModuleRequest{Name: ptr("Math"), Code: ptr("MATH101"), CourseID: Ref(0)}

	m := req.ToModel()
	assert.Equal(t, "Math", *m.Name)
	assert.Nil(t, m.Credits)
	assert.Nil(t, m.CourseID)
}

func TestUpdateArgsFollowColumnOrder(t *testing.T) {
	req := UpdateClassScheduleRequest{EndTime: ptr("11:00"), ModuleID: Ref(3)}

	args := req.Args()
	assert.Len(t, args, 5)
	assert.Nil(t, args[0].(*string))
	assert.Nil(t, args[1].(*string))
	assert.Equal(t, "11:00", *args[2].(*string))
	assert.Nil(t, args[3].(*string))
	assert.Equal(t, uint(3), *args[4].(*uint))
}

func TestUpdateUserArgsCount(t *testing.T) {
	// one bind value per coalesced column
	assert.Len(t, (&UpdateUserRequest{}).Args(), 8)
	assert.Len(t, (&UpdateCourseRequest{}).Args(), 3)
	assert.Len(t, (&UpdateModuleRequest{}).Args(), 4)
	assert.Len(t, (&UpdateAssessmentRequest{}).Args(), 4)
}
