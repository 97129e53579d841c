package dto

import "planner/models"

type CreateUserRequest struct {
	Email        *string `json:"email"`
	PasswordHash *string `json:"password_hash"`
	FirstName    *string `json:"first_name"`
	MiddleNames  *string `json:"middle_names"`
	LastName     *string `json:"last_name"`
	DateOfBirth  *string `json:"date_of_birth"`
	Address      *string `json:"address"`
	CourseID     *ID     `json:"course_id"`
}

func (r *CreateUserRequest) ToModel() *models.User {
	return &models.User{
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		FirstName:    r.FirstName,
		MiddleNames:  r.MiddleNames,
		LastName:     r.LastName,
		DateOfBirth:  r.DateOfBirth,
		Address:      r.Address,
		CourseID:     nullableID(r.CourseID),
	}
}

// UpdateUserRequest is a partial update; nil fields keep their stored value.
type UpdateUserRequest struct {
	Email        *string `json:"email"`
	PasswordHash *string `json:"password_hash"`
	FirstName    *string `json:"first_name"`
	MiddleNames  *string `json:"middle_names"`
	LastName     *string `json:"last_name"`
	DateOfBirth  *string `json:"date_of_birth"`
	Address      *string `json:"address"`
	CourseID     *ID     `json:"course_id"`
}

// Args returns the bind values for the coalescing update, in column order.
func (r *UpdateUserRequest) Args() []any {
	return []any{
		r.Email,
		r.PasswordHash,
		r.FirstName,
		r.MiddleNames,
		r.LastName,
		r.DateOfBirth,
		r.Address,
		nullableID(r.CourseID),
	}
}
