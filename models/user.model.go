package models

// User is a student account. PasswordHash is stored as given and never
// verified.
type User struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	Email        *string `json:"email"`
	PasswordHash *string `json:"password_hash"`
	FirstName    *string `json:"first_name"`
	MiddleNames  *string `json:"middle_names"`
	LastName     *string `json:"last_name"`
	DateOfBirth  *string `json:"date_of_birth"`
	Address      *string `json:"address"`
	CourseID     *uint   `json:"course_id"`
}

func (User) TableName() string { return "users" }

// UserRow is a User as listed, with the name of its course.
type UserRow struct {
	User
	CourseName *string `json:"course_name"`
}
