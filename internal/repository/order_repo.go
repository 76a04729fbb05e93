package repository

import (
	"context"

	"github.com/ZACHARY2215/logistx-inventory-hub/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository interface {
	// CreateTx inserts the order together with its items; GORM cascades the
	// association inserts inside the passed transaction.
	CreateTx(tx *gorm.DB, o *model.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	ListItems(ctx context.Context, orderID uuid.UUID) ([]model.OrderItem, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	DeleteItemsTx(tx *gorm.DB, orderID uuid.UUID) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error

	DB() *gorm.DB
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepo{db: db} }

func (r *orderRepo) CreateTx(tx *gorm.DB, o *model.Order) error {
	return tx.Create(o).Error
}

func (r *orderRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&o, id).Error
	return &o, err
}

func (r *orderRepo) ListAll(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepo) ListItems(ctx context.Context, orderID uuid.UUID) ([]model.OrderItem, error) {
	var items []model.OrderItem
	err := r.db.WithContext(ctx).
		Preload("InventoryItem").
		Preload("InventoryItem.Category").
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, err
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).Model(&model.Order{}).Where("id = ?", id).
		Update("status", status).Error
}

func (r *orderRepo) DeleteItemsTx(tx *gorm.DB, orderID uuid.UUID) error {
	return tx.Where("order_id = ?", orderID).Delete(&model.OrderItem{}).Error
}

func (r *orderRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Order{}, id).Error
}

func (r *orderRepo) DB() *gorm.DB { return r.db }
