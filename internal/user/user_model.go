package user

import (
	"gorm.io/gorm"
)

// User is an account on the platform. Role holds the single global role;
// TeamID is set while the user is on a team roster.
type User struct {
	gorm.Model
	Name     string `json:"name" gorm:"not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
	Role     Role   `json:"role" gorm:"type:varchar(20);default:'User';index"`
	TeamID   *uint  `json:"team_id" gorm:"index"`
}

// UserResponse is the admin-facing view of a user row.
type UserResponse struct {
	ID    uint   `json:"user_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// ProfileResponse is what /user-info returns about the session identity.
type ProfileResponse struct {
	UserID uint   `json:"userId"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
}

type AddUserRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Role      Role   `json:"role" binding:"required"`
}

type EditUserRequest struct {
	Role Role `json:"role" binding:"required"`
}

// FilterUserRecord strips credential fields from a user row.
func FilterUserRecord(u *User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
