package models

// Module represents a unit of study within a course
type Module struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	Name     *string `json:"name"`
	Code     *string `json:"code"`
	Credits  *int    `json:"credits"`
	CourseID *uint   `json:"course_id"`
}

func (Module) TableName() string { return "modules" }

type ModuleRow struct {
	Module
	CourseName *string `json:"course_name"`
}
