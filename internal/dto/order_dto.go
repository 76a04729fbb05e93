package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderLineRequest is one submitted line. UnitPrice is the price captured by
// the client at submission time; it is copied onto the OrderItem as-is.
type OrderLineRequest struct {
	InventoryItemID uuid.UUID       `json:"inventory_item_id" validate:"required"`
	Quantity        int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice       decimal.Decimal `json:"unit_price" validate:"min=0"`
}

type CreateOrderRequest struct {
	CustomerName  string             `json:"customer_name" validate:"required"`
	CustomerEmail string             `json:"customer_email" validate:"required,email"`
	CustomerPhone *string            `json:"customer_phone"`
	DeliveryDate  *time.Time         `json:"delivery_date"`
	Notes         *string            `json:"notes"`
	Items         []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
}

type OrderItemResponse struct {
	ID              uuid.UUID       `json:"id"`
	OrderID         uuid.UUID       `json:"order_id"`
	InventoryItemID uuid.UUID       `json:"inventory_item_id"`
	ItemName        string          `json:"item_name,omitempty"`
	ItemSKU         string          `json:"item_sku,omitempty"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	TotalPrice      decimal.Decimal `json:"total_price"`
}

type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	OrderNumber   string              `json:"order_number"`
	CustomerName  string              `json:"customer_name"`
	CustomerEmail string              `json:"customer_email"`
	CustomerPhone *string             `json:"customer_phone,omitempty"`
	OrderDate     string              `json:"order_date"`
	DeliveryDate  *string             `json:"delivery_date,omitempty"`
	Status        string              `json:"status"`
	TotalAmount   decimal.Decimal     `json:"total_amount"`
	Notes         *string             `json:"notes,omitempty"`
	Items         []OrderItemResponse `json:"items,omitempty"`
	CreatedAt     string              `json:"created_at"`
	UpdatedAt     string              `json:"updated_at"`
}

// OrderStats are the derived per-status aggregates of the orders view-model.
type OrderStats struct {
	Total        int             `json:"total"`
	Pending      int             `json:"pending"`
	Processing   int             `json:"processing"`
	Shipped      int             `json:"shipped"`
	Delivered    int             `json:"delivered"`
	Cancelled    int             `json:"cancelled"`
	Today        int             `json:"today"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}
