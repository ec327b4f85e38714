package model

import "time"

// Role is the closed set of user roles. Anything outside this set is treated
// as having no privileges at all.
type Role string

const (
	// RoleClient is the default role for registered users.
	RoleClient Role = "client"
	// RoleAdmin grants access to all users and management endpoints.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a recognized role.
func (r Role) Valid() bool {
	return r == RoleClient || r == RoleAdmin
}

// User represents an account in the system.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	FirstName    string    `json:"first_name,omitempty" gorm:"size:255"`
	LastName     string    `json:"last_name,omitempty" gorm:"size:255"`
	Role         Role      `json:"role" gorm:"size:50;default:'client';not null"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Reservations []Reservation `json:"reservations,omitempty" gorm:"foreignKey:UserID"`
}
