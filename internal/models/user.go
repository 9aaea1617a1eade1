package models

import "time"

// Roles understood by the authorization policy.
const (
	RoleAdmin  = "ADMIN"
	RoleGestor = "GESTOR"
	RoleCoder  = "CODER"
)

// User is an account holder. The password hash is never serialized.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FullName     string    `gorm:"size:120;not null" json:"fullName"`
	Email        string    `gorm:"size:160;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	Role         string    `gorm:"size:10;not null;default:'CODER';index" json:"role"`
	IsActive     bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleGestor, RoleCoder:
		return true
	}
	return false
}
