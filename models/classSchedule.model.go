package models

// ClassSchedule is a weekly slot for a module. Day and times are free text
// and carry no timezone.
type ClassSchedule struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	DayOfWeek *string `json:"day_of_week"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Location  *string `json:"location"`
	ModuleID  *uint   `json:"module_id"`
}

func (ClassSchedule) TableName() string { return "class_schedules" }

type ClassScheduleRow struct {
	ClassSchedule
	ModuleName *string `json:"module_name"`
}
