package models

import "time"

type User struct {
	ID        string     `json:"id" db:"id" validate:"required,uuid"`
	Email     string     `json:"email" db:"email" validate:"required,email"`
	Password  string     `json:"-" db:"password" validate:"required,min=8"`
	FirstName string     `json:"first_name" db:"first_name" validate:"required"`
	LastName  string     `json:"last_name" db:"last_name" validate:"required"`
	IsActive  bool       `json:"is_active" db:"is_active"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

// FullName returns the display name used in grid cells and exports.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
