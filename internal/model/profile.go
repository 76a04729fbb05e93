package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles. Role gates deletes and user management in the API layer; row-level
// enforcement stays with the database policies.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// UserProfile mirrors one identity-provider subject. UserID is the stable
// subject id issued by the external auth service; ID is this table's own key.
type UserProfile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Name      string    `gorm:"not null"`
	Role      string    `gorm:"type:varchar(20);not null;default:'staff'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserProfile) TableName() string { return "profiles" }
