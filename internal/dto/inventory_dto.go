package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateItemRequest carries the client-supplied fields for a new item.
// Only required non-empty fields are validated here; schema-level rules
// (types, FK existence) belong to the store.
type CreateItemRequest struct {
	Name        string          `json:"name" validate:"required"`
	SKU         string          `json:"sku" validate:"required"`
	CategoryID  *uuid.UUID      `json:"category_id"`
	SupplierID  *uuid.UUID      `json:"supplier_id"`
	Quantity    int             `json:"quantity" validate:"min=0"`
	MinQuantity int             `json:"min_quantity" validate:"min=0"`
	Price       decimal.Decimal `json:"price" validate:"min=0"`
	Description *string         `json:"description"`
}

// ItemPatch lists exactly the mutable fields of an item. Nil means
// "leave unchanged".
type ItemPatch struct {
	Name *string `json:"name"`
	SKU  *string `json:"sku"`
	// Sending the zero uuid clears the association (sets the column NULL).
	CategoryID  *uuid.UUID       `json:"category_id"`
	SupplierID  *uuid.UUID       `json:"supplier_id"`
	Quantity    *int             `json:"quantity" validate:"omitempty,min=0"`
	MinQuantity *int             `json:"min_quantity" validate:"omitempty,min=0"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
}

// ItemResponse is the render-ready row shape, with joined display names.
type ItemResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	CategoryID   *uuid.UUID      `json:"category_id"`
	SupplierID   *uuid.UUID      `json:"supplier_id"`
	CategoryName string          `json:"category_name,omitempty"`
	SupplierName string          `json:"supplier_name,omitempty"`
	Quantity     int             `json:"quantity"`
	MinQuantity  int             `json:"min_quantity"`
	Price        decimal.Decimal `json:"price"`
	Description  *string         `json:"description,omitempty"`
	LowStock     bool            `json:"low_stock"`
	LineValue    decimal.Decimal `json:"line_value"`
	CreatedAt    string          `json:"created_at"`
	UpdatedAt    string          `json:"updated_at"`
}

// InventoryStats are the derived aggregates of the inventory view-model,
// recomputed from the cached list on every read.
type InventoryStats struct {
	TotalItems    int             `json:"total_items"`
	LowStockCount int             `json:"low_stock_count"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

// MutationResult is the uniform outcome of a view-model write.
type MutationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
