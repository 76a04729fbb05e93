package repository

import (
	"context"

	"github.com/ZACHARY2215/logistx-inventory-hub/internal/model"

	"gorm.io/gorm"
)

// TransactionRepository writes and reads the append-only audit trail.
// There are deliberately no update or delete methods.
type TransactionRepository interface {
	Create(ctx context.Context, t *model.InventoryTransaction) error
	CreateTx(tx *gorm.DB, t *model.InventoryTransaction) error
	// ListAll joins item (name, sku) and user (name, email) for display,
	// newest first.
	ListAll(ctx context.Context) ([]model.InventoryTransaction, error)
}

type transactionRepo struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) Create(ctx context.Context, t *model.InventoryTransaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *transactionRepo) CreateTx(tx *gorm.DB, t *model.InventoryTransaction) error {
	return tx.Create(t).Error
}

func (r *transactionRepo) ListAll(ctx context.Context) ([]model.InventoryTransaction, error) {
	var transactions []model.InventoryTransaction
	err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("User").
		Order("created_at DESC").
		Find(&transactions).Error
	return transactions, err
}
