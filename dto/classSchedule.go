package dto

import "planner/models"

type CreateClassScheduleRequest struct {
	DayOfWeek *string `json:"day_of_week"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Location  *string `json:"location"`
	ModuleID  *ID     `json:"module_id"`
}

func (r *CreateClassScheduleRequest) ToModel() *models.ClassSchedule {
	return &models.ClassSchedule{
		DayOfWeek: r.DayOfWeek,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Location:  r.Location,
		ModuleID:  nullableID(r.ModuleID),
	}
}

type UpdateClassScheduleRequest struct {
	DayOfWeek *string `json:"day_of_week"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Location  *string `json:"location"`
	ModuleID  *ID     `json:"module_id"`
}

func (r *UpdateClassScheduleRequest) Args() []any {
	return []any{r.DayOfWeek, r.StartTime, r.EndTime, r.Location, nullableID(r.ModuleID)}
}
