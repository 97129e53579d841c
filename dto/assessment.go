package dto

import "planner/models"

type CreateAssessmentRequest struct {
	Title    *string `json:"title"`
	Type     *string `json:"type"`
	DueDate  *string `json:"due_date"`
	ModuleID *ID     `json:"module_id"`
}

func (r *CreateAssessmentRequest) ToModel() *models.Assessment {
	return &models.Assessment{
		Title:    r.Title,
		Type:     r.Type,
		DueDate:  r.DueDate,
		ModuleID: nullableID(r.ModuleID),
	}
}

type UpdateAssessmentRequest struct {
	Title    *string `json:"title"`
	Type     *string `json:"type"`
	DueDate  *string `json:"due_date"`
	ModuleID *ID     `json:"module_id"`
}

func (r *UpdateAssessmentRequest) Args() []any {
	return []any{r.Title, r.Type, r.DueDate, nullableID(r.ModuleID)}
}
