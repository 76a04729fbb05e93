package dto

import "github.com/google/uuid"

type TransactionResponse struct {
	ID               uuid.UUID `json:"id"`
	ItemID           uuid.UUID `json:"item_id"`
	UserID           uuid.UUID `json:"user_id"`
	ItemName         string    `json:"item_name,omitempty"`
	ItemSKU          string    `json:"item_sku,omitempty"`
	UserName         string    `json:"user_name,omitempty"`
	UserEmail        string    `json:"user_email,omitempty"`
	TransactionType  string    `json:"transaction_type"`
	QuantityChange   int       `json:"quantity_change"`
	PreviousQuantity int       `json:"previous_quantity"`
	NewQuantity      int       `json:"new_quantity"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        string    `json:"created_at"`
}
