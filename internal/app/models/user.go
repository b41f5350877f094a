package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Username  string    `json:"username" db:"username" example:"admin"`
	Password  string    `json:"-" db:"password"` // bcrypt hash
	Role      RoleType  `json:"role" db:"role" example:"teacher"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// IsTeacher reports whether the user holds the teacher role
func (u *User) IsTeacher() bool {
	return u != nil && u.Role == RoleTeacher
}
