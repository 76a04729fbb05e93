package model

import (
	"time"

	"github.com/google/uuid"
)

// Transaction types. QuantityChange always carries the non-negative magnitude;
// the type encodes direction.
const (
	TxCreate = "create"
	TxAdd    = "add"
	TxRemove = "remove"
	TxAdjust = "adjust"
	TxUpdate = "update"
	TxDelete = "delete"
)

// InventoryTransaction is an immutable audit row recorded for every
// quantity-affecting event on an item. Append-only: the application never
// updates or deletes these rows.
type InventoryTransaction struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ItemID           uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID           uuid.UUID `gorm:"type:uuid;not null"`
	TransactionType  string    `gorm:"not null"`
	QuantityChange   int       `gorm:"not null"`
	PreviousQuantity int       `gorm:"not null"`
	NewQuantity      int       `gorm:"not null"`
	Notes            string
	CreatedAt        time.Time

	Item *InventoryItem `gorm:"foreignKey:ItemID"`
	User *UserProfile   `gorm:"foreignKey:UserID;references:UserID"`
}

func (InventoryTransaction) TableName() string { return "inventory_transactions" }
