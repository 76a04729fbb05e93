package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryItem is a stocked product. CategoryID and SupplierID are nullable
// foreign keys used only for display joins.
type InventoryItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"index;not null"`
	SKU         string    `gorm:"column:sku;uniqueIndex;not null"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index"`
	SupplierID  *uuid.UUID `gorm:"type:uuid;index"`
	Quantity    int        `gorm:"not null;default:0"`
	MinQuantity int        `gorm:"not null;default:0"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category *Category `gorm:"foreignKey:CategoryID"`
	Supplier *Supplier `gorm:"foreignKey:SupplierID"`
}

func (InventoryItem) TableName() string { return "inventory_items" }

// IsLowStock reports whether the item is at or below its reorder threshold.
func (i InventoryItem) IsLowStock() bool { return i.Quantity <= i.MinQuantity }

// LineValue is quantity * price.
func (i InventoryItem) LineValue() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
