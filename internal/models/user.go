package models

import (
	"time"
)

type Role string

const (
	RoleStudio Role = "studio"
	RoleAdmin  Role = "admin"
)

type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Email          string    `json:"email" gorm:"unique;not null"`
	HashedPassword string    `json:"-" gorm:"not null"`
	FullName       *string   `json:"full_name"`
	IsActive       bool      `json:"is_active" gorm:"not null"`
	IsSuperuser    bool      `json:"is_superuser" gorm:"not null"`
	Role           Role      `json:"role" gorm:"not null"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.IsSuperuser || u.Role == RoleAdmin
}

// Profile is the public projection of a user.
type Profile struct {
	ID          uint    `json:"id"`
	Email       string  `json:"email"`
	FullName    *string `json:"full_name"`
	IsActive    bool    `json:"is_active"`
	IsSuperuser bool    `json:"is_superuser"`
	Role        Role    `json:"role"`
}

func (u *User) Profile() Profile {
	return Profile{
		ID:          u.ID,
		Email:       u.Email,
		FullName:    u.FullName,
		IsActive:    u.IsActive,
		IsSuperuser: u.IsSuperuser,
		Role:        u.Role,
	}
}
