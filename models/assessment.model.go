package models

type Assessment struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	Title    *string `json:"title"`
	Type     *string `json:"type"`     // Exam, Coursework, ...
	DueDate  *string `json:"due_date"` // calendar date as text
	ModuleID *uint   `json:"module_id"`
}

func (Assessment) TableName() string { return "assessments" }

type AssessmentRow struct {
	Assessment
	ModuleName *string `json:"module_name"`
}
