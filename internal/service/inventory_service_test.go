package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ZACHARY2215/logistx-inventory-hub/internal/dto"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/model"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory ItemRepository stub ────────────────────────────────────────────

type stubItemRepo struct {
	items    map[uuid.UUID]*model.InventoryItem
	failList bool
}

func newStubItemRepo() *stubItemRepo {
	return &stubItemRepo{items: make(map[uuid.UUID]*model.InventoryItem)}
}

func (r *stubItemRepo) Create(_ context.Context, item *model.InventoryItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *stubItemRepo) FindByID(_ context.Context, id uuid.UUID) (*model.InventoryItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (r *stubItemRepo) FindBySKU(_ context.Context, sku string) (*model.InventoryItem, error) {
	for _, item := range r.items {
		if item.SKU == sku {
			return item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubItemRepo) ListAll(_ context.Context) ([]model.InventoryItem, error) {
	if r.failList {
		return nil, errors.New("connection refused")
	}
	var out []model.InventoryItem
	for _, item := range r.items {
		out = append(out, *item)
	}
	return out, nil
}

func (r *stubItemRepo) Update(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	item, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["name"]; ok {
		item.Name = v.(string)
	}
	if v, ok := fields["sku"]; ok {
		item.SKU = v.(string)
	}
	if v, ok := fields["quantity"]; ok {
		item.Quantity = v.(int)
	}
	if v, ok := fields["min_quantity"]; ok {
		item.MinQuantity = v.(int)
	}
	if v, ok := fields["price"]; ok {
		item.Price = v.(decimal.Decimal)
	}
	if v, ok := fields["category_id"]; ok {
		item.CategoryID = fkPtr(v)
	}
	if v, ok := fields["supplier_id"]; ok {
		item.SupplierID = fkPtr(v)
	}
	return nil
}

func fkPtr(v interface{}) *uuid.UUID {
	if v == nil {
		return nil
	}
	id := v.(uuid.UUID)
	return &id
}

func (r *stubItemRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *stubItemRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.InventoryItem, error) {
	item, err := r.FindByID(context.Background(), id)
	if err != nil {
		return nil, err
	}
	// The real repository scans a fresh row per call, so later
	// AdjustQuantityTx writes must not alias the returned struct.
	cp := *item
	return &cp, nil
}

func (r *stubItemRepo) AdjustQuantityTx(_ *gorm.DB, id uuid.UUID, delta int) error {
	item, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	item.Quantity += delta
	return nil
}

func (r *stubItemRepo) DB() *gorm.DB { return nil }

var _ repository.ItemRepository = (*stubItemRepo)(nil)

// ── In-memory TransactionRepository stub ─────────────────────────────────────

type stubTxRepo struct {
	rows []model.InventoryTransaction
}

func (r *stubTxRepo) Create(_ context.Context, t *model.InventoryTransaction) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	r.rows = append(r.rows, *t)
	return nil
}

func (r *stubTxRepo) CreateTx(_ *gorm.DB, t *model.InventoryTransaction) error {
	return r.Create(context.Background(), t)
}

func (r *stubTxRepo) ListAll(_ context.Context) ([]model.InventoryTransaction, error) {
	out := make([]model.InventoryTransaction, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func (r *stubTxRepo) last() model.InventoryTransaction {
	return r.rows[len(r.rows)-1]
}

var _ repository.TransactionRepository = (*stubTxRepo)(nil)

// ── Helpers ──────────────────────────────────────────────────────────────────

func newTestInventory(t *testing.T, repo *stubItemRepo, txRepo *stubTxRepo) InventoryService {
	t.Helper()
	svc := NewInventoryService(repo, txRepo, nil, nil)
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func seedItem(repo *stubItemRepo, name, sku string, qty, minQty int, price string) uuid.UUID {
	id := uuid.New()
	repo.items[id] = &model.InventoryItem{
		ID:          id,
		Name:        name,
		SKU:         sku,
		Quantity:    qty,
		MinQuantity: minQty,
		Price:       decimal.RequireFromString(price),
	}
	return id
}

func intPtr(n int) *int { return &n }

// ── Tests ────────────────────────────────────────────────────────────────────

func TestLoadFallsBackToDemoData(t *testing.T) {
	repo := newStubItemRepo()
	repo.failList = true
	svc := NewInventoryService(repo, &stubTxRepo{}, nil, nil)

	err := svc.Load(context.Background())

	require.NoError(t, err, "a failed fetch degrades, it does not error")
	assert.True(t, svc.Loaded())
	assert.Len(t, svc.Items(), 3, "demo dataset has three items")
}

func TestLoadReplacesWholeCache(t *testing.T) {
	repo := newStubItemRepo()
	seedItem(repo, "Desk Lamp", "LAMP-001", 10, 2, "19.99")
	svc := newTestInventory(t, repo, &stubTxRepo{})
	require.Len(t, svc.Items(), 1)

	seedItem(repo, "Notebook", "NB-001", 50, 10, "2.50")
	require.NoError(t, svc.Load(context.Background()))

	assert.Len(t, svc.Items(), 2, "reload replaces, never merges")
}

func TestLoadIsIdempotent(t *testing.T) {
	repo := newStubItemRepo()
	seedItem(repo, "Desk Lamp", "LAMP-001", 10, 2, "19.99")
	seedItem(repo, "Notebook", "NB-001", 4, 5, "2.50")
	svc := newTestInventory(t, repo, &stubTxRepo{})

	first := svc.Items()
	firstStats := svc.Stats()

	require.NoError(t, svc.Load(context.Background()))

	assert.ElementsMatch(t, first, svc.Items(), "no writes in between, same rows")
	second := svc.Stats()
	assert.Equal(t, firstStats.TotalItems, second.TotalItems)
	assert.Equal(t, firstStats.LowStockCount, second.LowStockCount)
	assert.True(t, firstStats.TotalValue.Equal(second.TotalValue),
		"got %s then %s", firstStats.TotalValue, second.TotalValue)
}

func TestStatsComputedFromCache(t *testing.T) {
	repo := newStubItemRepo()
	seedItem(repo, "Desk Lamp", "LAMP-001", 10, 2, "19.99")
	seedItem(repo, "Notebook", "NB-001", 5, 5, "2.50") // at threshold: low
	seedItem(repo, "Gone", "GONE-001", 0, 0, "99.00")  // qty 0 contributes nothing
	svc := newTestInventory(t, repo, &stubTxRepo{})

	stats := svc.Stats()

	assert.Equal(t, 3, stats.TotalItems)
	assert.Equal(t, 2, stats.LowStockCount, "qty==min counts as low, qty 0 with min 0 too")
	// 10*19.99 + 5*2.50 + 0*99.00
	assert.True(t, stats.TotalValue.Equal(decimal.RequireFromString("212.40")),
		"got %s", stats.TotalValue)
}

func TestLowStockItemsBoundary(t *testing.T) {
	repo := newStubItemRepo()
	seedItem(repo, "Above", "A-001", 6, 5, "1.00")
	atID := seedItem(repo, "At", "B-001", 5, 5, "1.00")
	belowID := seedItem(repo, "Below", "C-001", 4, 5, "1.00")
	svc := newTestInventory(t, repo, &stubTxRepo{})

	low := svc.LowStockItems()

	ids := make(map[uuid.UUID]bool)
	for _, item := range low {
		ids[item.ID] = true
	}
	assert.Len(t, low, 2)
	assert.True(t, ids[atID], "qty == min is low stock")
	assert.True(t, ids[belowID])
}

func TestCreateWritesInitialAuditRow(t *testing.T) {
	repo := newStubItemRepo()
	txRepo := &stubTxRepo{}
	svc := newTestInventory(t, repo, txRepo)
	actor := uuid.New()

	err := svc.Create(context.Background(), actor, dto.CreateItemRequest{
		Name:        "Desk Lamp",
		SKU:         "LAMP-001",
		Quantity:    10,
		MinQuantity: 2,
		Price:       decimal.RequireFromString("19.99"),
	})

	require.NoError(t, err)
	require.Len(t, txRepo.rows, 1)
	audit := txRepo.last()
	assert.Equal(t, model.TxCreate, audit.TransactionType)
	assert.Equal(t, 0, audit.QuantityChange)
	assert.Equal(t, 0, audit.PreviousQuantity)
	assert.Equal(t, 10, audit.NewQuantity)
	assert.Equal(t, actor, audit.UserID)
	assert.Len(t, svc.Items(), 1, "cache re-fetched after write")
}

func TestCreateRejectsDuplicateSKU(t *testing.T) {
	repo := newStubItemRepo()
	seedItem(repo, "Desk Lamp", "LAMP-001", 10, 2, "19.99")
	svc := newTestInventory(t, repo, &stubTxRepo{})

	err := svc.Create(context.Background(), uuid.New(), dto.CreateItemRequest{
		Name: "Other Lamp", SKU: "LAMP-001", Price: decimal.RequireFromString("9.99"),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "LAMP-001")
	assert.Len(t, svc.Items(), 1)
}

func TestUpdateQuantityDecreaseAuditsRemove(t *testing.T) {
	repo := newStubItemRepo()
	id := seedItem(repo, "Desk Lamp", "LAMP-001", 25, 5, "19.99")
	txRepo := &stubTxRepo{}
	svc := newTestInventory(t, repo, txRepo)

	err := svc.Update(context.Background(), uuid.New(), id, dto.ItemPatch{Quantity: intPtr(20)})

	require.NoError(t, err)
	require.Len(t, txRepo.rows, 1)
	audit := txRepo.last()
	assert.Equal(t, model.TxRemove, audit.TransactionType)
	assert.Equal(t, 5, audit.QuantityChange, "magnitude, not signed delta")
	assert.Equal(t, 25, audit.PreviousQuantity)
	assert.Equal(t, 20, audit.NewQuantity)
	assert.Equal(t, "Quantity decreased from 25 to 20", audit.Notes)
}

func TestUpdateQuantityIncreaseAuditsAdd(t *testing.T) {
	repo := newStubItemRepo()
	id := seedItem(repo, "Desk Lamp", "LAMP-001", 10, 5, "19.99")
	txRepo := &stubTxRepo{}
	svc := newTestInventory(t, repo, txRepo)

	err := svc.Update(context.Background(), uuid.New(), id, dto.ItemPatch{Quantity: intPtr(15)})

	require.NoError(t, err)
	audit := txRepo.last()
	assert.Equal(t, model.TxAdd, audit.TransactionType)
	assert.Equal(t, 5, audit.QuantityChange)
}

func TestUpdateSameQuantityWritesNoAudit(t *testing.T) {
	repo := newStubItemRepo()
	id := seedItem(repo, "Desk Lamp", "LAMP-001", 10, 5, "19.99")
	txRepo := &stubTxRepo{}
	svc := newTestInventory(t, repo, txRepo)

	err := svc.Update(context.Background(), uuid.New(), id, dto.ItemPatch{
		Quantity: intPtr(10),
		Name:     strPtr("Desk Lamp XL"),
	})

	require.NoError(t, err)
	assert.Empty(t, txRepo.rows, "unchanged quantity must not produce an audit row")
}

func TestUpdateFKSetAndClear(t *testing.T) {
	repo := newStubItemRepo()
	id := seedItem(repo, "Desk Lamp", "LAMP-001", 10, 5, "19.99")
	catID := uuid.New()
	repo.items[id].CategoryID = &catID
	svc := newTestInventory(t, repo, &stubTxRepo{})

	newCat := uuid.New()
	require.NoError(t, svc.Update(context.Background(), uuid.New(), id,
		dto.ItemPatch{CategoryID: &newCat}))
	require.NotNil(t, repo.items[id].CategoryID)
	assert.Equal(t, newCat, *repo.items[id].CategoryID)

	// The zero uuid clears the association.
	nilID := uuid.Nil
	require.NoError(t, svc.Update(context.Background(), uuid.New(), id,
		dto.ItemPatch{CategoryID: &nilID}))
	assert.Nil(t, repo.items[id].CategoryID)
}

func TestUpdateEmptyPatchRejected(t *testing.T) {
	repo := newStubItemRepo()
	id := seedItem(repo, "Desk Lamp", "LAMP-001", 10, 5, "19.99")
	svc := newTestInventory(t, repo, &stubTxRepo{})

	err := svc.Update(context.Background(), uuid.New(), id, dto.ItemPatch{})

	require.Error(t, err)
}

func TestDeleteWritesTerminalAuditRow(t *testing.T) {
	repo := newStubItemRepo()
	id := seedItem(repo, "Desk Lamp", "LAMP-001", 7, 5, "19.99")
	txRepo := &stubTxRepo{}
	svc := newTestInventory(t, repo, txRepo)
	actor := uuid.New()

	err := svc.Delete(context.Background(), actor, id)

	require.NoError(t, err)
	require.Len(t, txRepo.rows, 1)
	audit := txRepo.last()
	assert.Equal(t, model.TxDelete, audit.TransactionType)
	assert.Equal(t, 0, audit.QuantityChange)
	assert.Equal(t, 7, audit.PreviousQuantity)
	assert.Equal(t, 0, audit.NewQuantity)
	assert.Empty(t, svc.Items())
}

func TestDeleteUnknownItem(t *testing.T) {
	svc := newTestInventory(t, newStubItemRepo(), &stubTxRepo{})

	err := svc.Delete(context.Background(), uuid.New(), uuid.New())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
