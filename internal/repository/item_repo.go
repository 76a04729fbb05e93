package repository

import (
	"context"

	"github.com/ZACHARY2215/logistx-inventory-hub/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemRepository is the data access contract for inventory items. Services
// depend on this interface, not on the concrete GORM implementation, so unit
// tests can swap in in-memory stubs.
type ItemRepository interface {
	Create(ctx context.Context, item *model.InventoryItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.InventoryItem, error)
	FindBySKU(ctx context.Context, sku string) (*model.InventoryItem, error)
	// ListAll returns every row with category and supplier joined for display,
	// newest first — the full-list fetch the view-model cache is built from.
	ListAll(ctx context.Context) ([]model.InventoryItem, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Used inside order transactions — callers pass the live tx.
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.InventoryItem, error)
	AdjustQuantityTx(tx *gorm.DB, id uuid.UUID, delta int) error

	// DB exposes the underlying handle so services can open transactions.
	DB() *gorm.DB
}

type itemRepo struct{ db *gorm.DB }

func NewItemRepository(db *gorm.DB) ItemRepository { return &itemRepo{db: db} }

func (r *itemRepo) Create(ctx context.Context, item *model.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.InventoryItem, error) {
	var item model.InventoryItem
	err := r.db.WithContext(ctx).First(&item, id).Error
	return &item, err
}

func (r *itemRepo) FindBySKU(ctx context.Context, sku string) (*model.InventoryItem, error) {
	var item model.InventoryItem
	err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&item).Error
	return &item, err
}

func (r *itemRepo) ListAll(ctx context.Context) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Supplier").
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *itemRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.InventoryItem{}).Where("id = ?", id).Updates(fields).Error
}

func (r *itemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.InventoryItem{}, id).Error
}

func (r *itemRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.InventoryItem, error) {
	var item model.InventoryItem
	err := tx.First(&item, id).Error
	return &item, err
}

func (r *itemRepo) AdjustQuantityTx(tx *gorm.DB, id uuid.UUID, delta int) error {
	return tx.Model(&model.InventoryItem{}).Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", delta)).Error
}

func (r *itemRepo) DB() *gorm.DB { return r.db }
