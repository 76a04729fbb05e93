package dto

import "github.com/google/uuid"

type CreateSupplierRequest struct {
	Name         string  `json:"name" validate:"required"`
	ContactEmail *string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone *string `json:"contact_phone"`
	Address      *string `json:"address"`
}

// SupplierPatch lists the mutable fields of a supplier.
type SupplierPatch struct {
	Name         *string `json:"name"`
	ContactEmail *string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone *string `json:"contact_phone"`
	Address      *string `json:"address"`
}

type SupplierResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ContactEmail *string   `json:"contact_email,omitempty"`
	ContactPhone *string   `json:"contact_phone,omitempty"`
	Address      *string   `json:"address,omitempty"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
}
