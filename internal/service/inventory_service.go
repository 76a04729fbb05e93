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
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// loadTimeout bounds every full-list fetch. On expiry the view-model falls
// back to the demo dataset instead of blocking the caller.
const loadTimeout = 5 * time.Second

// InventoryService is the inventory entity view-model: a cached row list with
// write-through CRUD, audit-trail side effects, and derived aggregates
// recomputed from the cache on every read.
type InventoryService interface {
	Load(ctx context.Context) error
	Loaded() bool
	Items() []dto.ItemResponse
	LowStockItems() []dto.ItemResponse
	Stats() dto.InventoryStats
	Create(ctx context.Context, actor uuid.UUID, req dto.CreateItemRequest) error
	Update(ctx context.Context, actor uuid.UUID, id uuid.UUID, patch dto.ItemPatch) error
	Delete(ctx context.Context, actor uuid.UUID, id uuid.UUID) error
}

type inventoryService struct {
	repo       repository.ItemRepository
	txRepo     repository.TransactionRepository
	pub        *feed.Publisher
	dispatcher *worker.Dispatcher

	mu     sync.RWMutex
	items  []model.InventoryItem
	loaded bool
}

func NewInventoryService(
	repo repository.ItemRepository,
	txRepo repository.TransactionRepository,
	pub *feed.Publisher,
	dispatcher *worker.Dispatcher,
) InventoryService {
	return &inventoryService{repo: repo, txRepo: txRepo, pub: pub, dispatcher: dispatcher}
}

// Load replaces the whole cached list. On any fetch failure (including the
// timeout) the fixed demo dataset is substituted and the load still counts as
// complete — degraded, never stuck.
func (s *inventoryService) Load(ctx context.Context) error {
	cctx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()

	items, err := s.repo.ListAll(cctx)
	if err != nil {
		log.Warn().Err(err).Msg("inventory: fetch failed, using demo data")
		items = DemoItems()
	}

	s.mu.Lock()
	s.items = items
	s.loaded = true
	s.mu.Unlock()
	return nil
}

func (s *inventoryService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *inventoryService) Items() []dto.ItemResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]dto.ItemResponse, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, itemToResponse(item))
	}
	return out
}

func (s *inventoryService) LowStockItems() []dto.ItemResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []dto.ItemResponse
	for _, item := range s.items {
		if item.IsLowStock() {
			out = append(out, itemToResponse(item))
		}
	}
	return out
}

func (s *inventoryService) Stats() dto.InventoryStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats := dto.InventoryStats{TotalItems: len(s.items), TotalValue: decimal.Zero}
	for _, item := range s.items {
		if item.IsLowStock() {
			stats.LowStockCount++
		}
		stats.TotalValue = stats.TotalValue.Add(item.LineValue())
	}
	return stats
}

// Create inserts the row, appends the initial audit record, publishes the
// change event, and re-fetches. A failed insert leaves the cache untouched —
// there is no optimistic insertion.
func (s *inventoryService) Create(ctx context.Context, actor uuid.UUID, req dto.CreateItemRequest) error {
	if existing, err := s.repo.FindBySKU(ctx, req.SKU); err == nil && existing != nil {
		return fmt.Errorf("an item with SKU %s already exists", req.SKU)
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	item := &model.InventoryItem{
		Name:        req.Name,
		SKU:         req.SKU,
		CategoryID:  req.CategoryID,
		SupplierID:  req.SupplierID,
		Quantity:    req.Quantity,
		MinQuantity: req.MinQuantity,
		Price:       req.Price,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return err
	}

	audit := &model.InventoryTransaction{
		ItemID:           item.ID,
		UserID:           actor,
		TransactionType:  model.TxCreate,
		QuantityChange:   0,
		PreviousQuantity: 0,
		NewQuantity:      req.Quantity,
		Notes:            fmt.Sprintf("New item created with initial quantity of %d", req.Quantity),
	}
	if err := s.txRepo.Create(ctx, audit); err != nil {
		return err
	}

	s.pub.Publish(ctx, "inventory_items", feed.OpInsert, item.ID)
	return s.Load(ctx)
}

// Update writes the patch through and, only when the quantity actually
// changed, appends an add/remove audit record built against the cached
// before-image. Crossing into low stock enqueues an alert job.
func (s *inventoryService) Update(ctx context.Context, actor uuid.UUID, id uuid.UUID, patch dto.ItemPatch) error {
	current, ok := s.cachedItem(id)
	if !ok {
		return errors.New("item not found")
	}

	fields := itemPatchFields(patch)
	if len(fields) == 0 {
		return errors.New("no fields to update")
	}
	if err := s.repo.Update(ctx, id, fields); err != nil {
		return err
	}

	if patch.Quantity != nil && *patch.Quantity != current.Quantity {
		delta := *patch.Quantity - current.Quantity
		txType := model.TxAdd
		verb := "increased"
		if delta < 0 {
			txType = model.TxRemove
			verb = "decreased"
			delta = -delta
		}
		audit := &model.InventoryTransaction{
			ItemID:           id,
			UserID:           actor,
			TransactionType:  txType,
			QuantityChange:   delta,
			PreviousQuantity: current.Quantity,
			NewQuantity:      *patch.Quantity,
			Notes:            fmt.Sprintf("Quantity %s from %d to %d", verb, current.Quantity, *patch.Quantity),
		}
		if err := s.txRepo.Create(ctx, audit); err != nil {
			return err
		}

		minQty := current.MinQuantity
		if patch.MinQuantity != nil {
			minQty = *patch.MinQuantity
		}
		if *patch.Quantity <= minQty && !current.IsLowStock() {
			err := s.dispatcher.EnqueueLowStockAlert(ctx, worker.LowStockAlertPayload{
				ItemID:   id.String(),
				ItemName: current.Name,
				SKU:      current.SKU,
				Quantity: *patch.Quantity,
				MinQty:   minQty,
			})
			if err != nil {
				log.Warn().Err(err).Str("item_id", id.String()).Msg("inventory: enqueue low-stock alert failed")
			}
		}
	}

	s.pub.Publish(ctx, "inventory_items", feed.OpUpdate, id)
	return s.Load(ctx)
}

// Delete removes the row and appends the terminal audit record (new
// quantity 0) built from the cached row.
func (s *inventoryService) Delete(ctx context.Context, actor uuid.UUID, id uuid.UUID) error {
	current, ok := s.cachedItem(id)
	if !ok {
		return errors.New("item not found")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	audit := &model.InventoryTransaction{
		ItemID:           id,
		UserID:           actor,
		TransactionType:  model.TxDelete,
		QuantityChange:   0,
		PreviousQuantity: current.Quantity,
		NewQuantity:      0,
		Notes:            "Item deleted from inventory",
	}
	if err := s.txRepo.Create(ctx, audit); err != nil {
		return err
	}

	s.pub.Publish(ctx, "inventory_items", feed.OpDelete, id)
	return s.Load(ctx)
}

func (s *inventoryService) cachedItem(id uuid.UUID) (model.InventoryItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return model.InventoryItem{}, false
}

// itemPatchFields flattens the explicit patch type into the column map the
// repository applies. Only non-nil fields make it through.
func itemPatchFields(patch dto.ItemPatch) map[string]interface{} {
	fields := map[string]interface{}{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.SKU != nil {
		fields["sku"] = *patch.SKU
	}
	// The FK columns are nullable; the zero uuid is the clear sentinel, since
	// JSON null on a pointer field is indistinguishable from absent.
	if patch.CategoryID != nil {
		fields["category_id"] = fkValue(*patch.CategoryID)
	}
	if patch.SupplierID != nil {
		fields["supplier_id"] = fkValue(*patch.SupplierID)
	}
	if patch.Quantity != nil {
		fields["quantity"] = *patch.Quantity
	}
	if patch.MinQuantity != nil {
		fields["min_quantity"] = *patch.MinQuantity
	}
	if patch.Price != nil {
		fields["price"] = *patch.Price
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	return fields
}

func fkValue(id uuid.UUID) interface{} {
	if id == uuid.Nil {
		return nil
	}
	return id
}

func itemToResponse(item model.InventoryItem) dto.ItemResponse {
	resp := dto.ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		SKU:         item.SKU,
		CategoryID:  item.CategoryID,
		SupplierID:  item.SupplierID,
		Quantity:    item.Quantity,
		MinQuantity: item.MinQuantity,
		Price:       item.Price,
		Description: item.Description,
		LowStock:    item.IsLowStock(),
		LineValue:   item.LineValue(),
		CreatedAt:   item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   item.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if item.Category != nil {
		resp.CategoryName = item.Category.Name
	}
	if item.Supplier != nil {
		resp.SupplierName = item.Supplier.Name
	}
	return resp
}
