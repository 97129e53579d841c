package dto

import "planner/models"

type CreateCourseRequest struct {
	Name   *string `json:"name"`
	Type   *string `json:"type"`
	UserID *ID     `json:"user_id"`
}

func (r *CreateCourseRequest) ToModel() *models.Course {
	return &models.Course{
		Name:   r.Name,
		Type:   r.Type,
		UserID: nullableID(r.UserID),
	}
}

type UpdateCourseRequest struct {
	Name   *string `json:"name"`
	Type   *string `json:"type"`
	UserID *ID     `json:"user_id"`
}

func (r *UpdateCourseRequest) Args() []any {
	return []any{r.Name, r.Type, nullableID(r.UserID)}
}
