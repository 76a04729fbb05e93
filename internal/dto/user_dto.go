package dto

import "github.com/google/uuid"

type CreateUserRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Email  string    `json:"email" validate:"required,email"`
	Name   string    `json:"name" validate:"required"`
	Role   string    `json:"role" validate:"required,oneof=admin staff"`
}

// UserPatch lists the mutable fields of a profile. The identity-provider
// subject (user_id) is immutable.
type UserPatch struct {
	Email *string `json:"email" validate:"omitempty,email"`
	Name  *string `json:"name"`
	Role  *string `json:"role" validate:"omitempty,oneof=admin staff"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// UserStats is the admin/staff split derived from the cached profile list.
type UserStats struct {
	Total int `json:"total"`
	Admin int `json:"admin"`
	Staff int `json:"staff"`
}
