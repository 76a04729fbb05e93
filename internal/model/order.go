package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order statuses. New orders always start as pending.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// ValidOrderStatus reports whether s is one of the five known statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order is a customer order. TotalAmount is fixed at creation time as the sum
// of line totals and is never recomputed — orders are not edited after
// creation, only their status changes.
type Order struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderNumber   string    `gorm:"uniqueIndex;not null"`
	CustomerName  string    `gorm:"not null"`
	CustomerEmail string    `gorm:"not null"`
	CustomerPhone *string
	OrderDate     time.Time `gorm:"not null"`
	DeliveryDate  *time.Time
	Status        string          `gorm:"type:varchar(20);not null;default:'pending'"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Items []OrderItem `gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string { return "orders" }

// OrderItem is one line of an order. UnitPrice is copied from the inventory
// item at order-creation time, not re-derived later.
type OrderItem struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID         uuid.UUID `gorm:"type:uuid;not null;index"`
	InventoryItemID uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity        int       `gorm:"not null"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TotalPrice      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt       time.Time

	InventoryItem *InventoryItem `gorm:"foreignKey:InventoryItemID"`
}

func (OrderItem) TableName() string { return "order_items" }
