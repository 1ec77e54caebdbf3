package domain

import "time"

type AdminRole string

const (
	RoleAdmin   AdminRole = "admin"
	RoleManager AdminRole = "manager"
)

type AdminUser struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         AdminRole `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
