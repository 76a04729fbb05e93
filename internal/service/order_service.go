package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ZACHARY2215/logistx-inventory-hub/internal/dto"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/feed"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/model"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// orderNumberAttempts bounds the retry loop when the random order-number
// suffix collides with an existing row.
const orderNumberAttempts = 3

// OrderService is the orders entity view-model. Creation and deletion run
// their inventory side effects inside one transaction with the order writes,
// so stock, audit rows, and order rows move together.
type OrderService interface {
	Load(ctx context.Context) error
	Loaded() bool
	Orders() []dto.OrderResponse
	Stats() dto.OrderStats
	TodayOrders() []dto.OrderResponse
	OrderItems(ctx context.Context, orderID uuid.UUID) ([]dto.OrderItemResponse, error)
	Create(ctx context.Context, actor uuid.UUID, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
	UpdateStatus(ctx context.Context, actor uuid.UUID, id uuid.UUID, status string) error
	Delete(ctx context.Context, actor uuid.UUID, id uuid.UUID) error
}

type orderService struct {
	repo     repository.OrderRepository
	itemRepo repository.ItemRepository
	txRepo   repository.TransactionRepository
	pub      *feed.Publisher

	mu     sync.RWMutex
	orders []model.Order
	loaded bool
}

func NewOrderService(
	repo repository.OrderRepository,
	itemRepo repository.ItemRepository,
	txRepo repository.TransactionRepository,
	pub *feed.Publisher,
) OrderService {
	return &orderService{repo: repo, itemRepo: itemRepo, txRepo: txRepo, pub: pub}
}

// runTx executes fn inside a transaction when db is available, or calls
// fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func (s *orderService) Load(ctx context.Context) error {
	cctx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()

	orders, err := s.repo.ListAll(cctx)
	if err != nil {
		log.Warn().Err(err).Msg("orders: fetch failed, using demo data")
		orders = DemoOrders()
	}

	s.mu.Lock()
	s.orders = orders
	s.loaded = true
	s.mu.Unlock()
	return nil
}

func (s *orderService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *orderService) Orders() []dto.OrderResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]dto.OrderResponse, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, orderToResponse(o))
	}
	return out
}

// Stats recomputes the per-status counters and revenue sum from the cached
// list on every call.
func (s *orderService) Stats() dto.OrderStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats := dto.OrderStats{Total: len(s.orders), TotalRevenue: decimal.Zero}
	now := time.Now()
	for _, o := range s.orders {
		switch o.Status {
		case model.StatusPending:
			stats.Pending++
		case model.StatusProcessing:
			stats.Processing++
		case model.StatusShipped:
			stats.Shipped++
		case model.StatusDelivered:
			stats.Delivered++
		case model.StatusCancelled:
			stats.Cancelled++
		}
		if sameDay(o.OrderDate, now) {
			stats.Today++
		}
		stats.TotalRevenue = stats.TotalRevenue.Add(o.TotalAmount)
	}
	return stats
}

func (s *orderService) TodayOrders() []dto.OrderResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	now := time.Now()
	var out []dto.OrderResponse
	for _, o := range s.orders {
		if sameDay(o.OrderDate, now) {
			out = append(out, orderToResponse(o))
		}
	}
	return out
}

func (s *orderService) OrderItems(ctx context.Context, orderID uuid.UUID) ([]dto.OrderItemResponse, error) {
	items, err := s.repo.ListItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, orderItemToResponse(item))
	}
	return out, nil
}

// Create computes the order total from the submitted lines, then runs the
// order insert, the line inserts, the per-line stock decrements, and the
// stock audit rows as one transaction. The random order-number suffix is
// retried on a unique violation.
func (s *orderService) Create(ctx context.Context, actor uuid.UUID, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	total := decimal.Zero
	for _, line := range req.Items {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	var order model.Order
	var txErr error
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		order = model.Order{
			OrderNumber:   GenerateOrderNumber(time.Now()),
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			OrderDate:     time.Now().UTC(),
			DeliveryDate:  req.DeliveryDate,
			Status:        model.StatusPending,
			TotalAmount:   total,
			Notes:         req.Notes,
		}
		for _, line := range req.Items {
			order.Items = append(order.Items, model.OrderItem{
				InventoryItemID: line.InventoryItemID,
				Quantity:        line.Quantity,
				UnitPrice:       line.UnitPrice,
				TotalPrice:      line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))),
			})
		}

		txErr = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
			if err := s.repo.CreateTx(tx, &order); err != nil {
				return err
			}
			for _, line := range req.Items {
				before, err := s.itemRepo.FindByIDTx(tx, line.InventoryItemID)
				if err != nil {
					return fmt.Errorf("inventory item %s not found", line.InventoryItemID)
				}
				if err := s.itemRepo.AdjustQuantityTx(tx, line.InventoryItemID, -line.Quantity); err != nil {
					return fmt.Errorf("adjusting stock for %s: %w", before.Name, err)
				}
				audit := &model.InventoryTransaction{
					ItemID:           line.InventoryItemID,
					UserID:           actor,
					TransactionType:  model.TxRemove,
					QuantityChange:   line.Quantity,
					PreviousQuantity: before.Quantity,
					NewQuantity:      before.Quantity - line.Quantity,
					Notes:            fmt.Sprintf("Order %s", order.OrderNumber),
				}
				if err := s.txRepo.CreateTx(tx, audit); err != nil {
					return err
				}
			}
			return nil
		})
		if txErr == nil || !errors.Is(txErr, gorm.ErrDuplicatedKey) {
			break
		}
		// Order-number collision: regenerate and try again.
		order.ID = uuid.Nil
		order.Items = nil
	}
	if txErr != nil {
		return nil, txErr
	}

	s.pub.Publish(ctx, "orders", feed.OpInsert, order.ID)
	for _, line := range req.Items {
		s.pub.Publish(ctx, "inventory_items", feed.OpUpdate, line.InventoryItemID)
	}
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	resp := orderToResponse(order)
	return &resp, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, _ uuid.UUID, id uuid.UUID, status string) error {
	if !model.ValidOrderStatus(status) {
		return fmt.Errorf("invalid order status %q", status)
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	s.pub.Publish(ctx, "orders", feed.OpUpdate, id)
	return s.Load(ctx)
}

// Delete re-fetches the order's lines and, in one transaction, restores the
// decremented stock (with compensating audit rows), removes the lines, then
// removes the order itself.
func (s *orderService) Delete(ctx context.Context, actor uuid.UUID, id uuid.UUID) error {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("order not found")
		}
		return err
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for _, item := range order.Items {
			before, err := s.itemRepo.FindByIDTx(tx, item.InventoryItemID)
			if err != nil {
				// Item no longer exists; nothing to restore for this line.
				continue
			}
			if err := s.itemRepo.AdjustQuantityTx(tx, item.InventoryItemID, item.Quantity); err != nil {
				return err
			}
			audit := &model.InventoryTransaction{
				ItemID:           item.InventoryItemID,
				UserID:           actor,
				TransactionType:  model.TxAdd,
				QuantityChange:   item.Quantity,
				PreviousQuantity: before.Quantity,
				NewQuantity:      before.Quantity + item.Quantity,
				Notes:            fmt.Sprintf("Order %s deleted, stock restored", order.OrderNumber),
			}
			if err := s.txRepo.CreateTx(tx, audit); err != nil {
				return err
			}
		}
		if err := s.repo.DeleteItemsTx(tx, id); err != nil {
			return err
		}
		return s.repo.DeleteTx(tx, id)
	})
	if txErr != nil {
		return txErr
	}

	s.pub.Publish(ctx, "orders", feed.OpDelete, id)
	for _, item := range order.Items {
		s.pub.Publish(ctx, "inventory_items", feed.OpUpdate, item.InventoryItemID)
	}
	return s.Load(ctx)
}

// sameDay compares calendar days in local time, matching how "today" is
// presented to the user.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

func orderToResponse(o model.Order) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		CustomerPhone: o.CustomerPhone,
		OrderDate:     o.OrderDate.UTC().Format(time.RFC3339),
		Status:        o.Status,
		TotalAmount:   o.TotalAmount,
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     o.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if o.DeliveryDate != nil {
		d := o.DeliveryDate.UTC().Format(time.RFC3339)
		resp.DeliveryDate = &d
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, orderItemToResponse(item))
	}
	return resp
}

func orderItemToResponse(item model.OrderItem) dto.OrderItemResponse {
	resp := dto.OrderItemResponse{
		ID:              item.ID,
		OrderID:         item.OrderID,
		InventoryItemID: item.InventoryItemID,
		Quantity:        item.Quantity,
		UnitPrice:       item.UnitPrice,
		TotalPrice:      item.TotalPrice,
	}
	if item.InventoryItem != nil {
		resp.ItemName = item.InventoryItem.Name
		resp.ItemSKU = item.InventoryItem.SKU
	}
	return resp
}
