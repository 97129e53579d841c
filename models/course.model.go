package models

// Course is a programme of study, optionally created by a User.
type Course struct {
	ID     uint    `json:"id" gorm:"primaryKey"`
	Name   *string `json:"name"`
	Type   *string `json:"type"` // free text, e.g. "BSc"
	UserID *uint   `json:"user_id"`
}

func (Course) TableName() string { return "courses" }

// CourseRow is a Course as listed, with its creator's full name.
type CourseRow struct {
	Course
	UserName *string `json:"user_name"`
}
