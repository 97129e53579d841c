package dto

import "planner/models"

type CreateModuleRequest struct {
	Name     *string `json:"name"`
	Code     *string `json:"code"`
	Credits  *int    `json:"credits"`
	CourseID *ID     `json:"course_id"`
}

func (r *CreateModuleRequest) ToModel() *models.Module {
	return &models.Module{
		Name:     r.Name,
		Code:     r.Code,
		Credits:  r.Credits,
		CourseID: nullableID(r.CourseID),
	}
}

type UpdateModuleRequest struct {
	Name     *string `json:"name"`
	Code     *string `json:"code"`
	Credits  *int    `json:"credits"`
	CourseID *ID     `json:"course_id"`
}

func (r *UpdateModuleRequest) Args() []any {
	return []any{r.Name, r.Code, r.Credits, nullableID(r.CourseID)}
}
