package model

import (
	"time"

	"github.com/google/uuid"
)

// Supplier holds contact data for a product source.
type Supplier struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"not null"`
	ContactEmail *string
	ContactPhone *string
	Address      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Items []InventoryItem `gorm:"foreignKey:SupplierID"`
}

func (Supplier) TableName() string { return "suppliers" }
