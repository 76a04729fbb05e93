package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/ZACHARY2215/logistx-inventory-hub/internal/dto"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/model"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory OrderRepository stub ───────────────────────────────────────────

type stubOrderRepo struct {
	orders map[uuid.UUID]*model.Order

	// dupsLeft makes the next N CreateTx calls fail with a unique violation,
	// simulating order-number collisions.
	dupsLeft int
	creates  int
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[uuid.UUID]*model.Order)}
}

func (r *stubOrderRepo) CreateTx(_ *gorm.DB, o *model.Order) error {
	r.creates++
	if r.dupsLeft > 0 {
		r.dupsLeft--
		return gorm.ErrDuplicatedKey
	}
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	for i := range o.Items {
		if o.Items[i].ID == uuid.Nil {
			o.Items[i].ID = uuid.New()
		}
		o.Items[i].OrderID = o.ID
	}
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (r *stubOrderRepo) ListAll(_ context.Context) ([]model.Order, error) {
	var out []model.Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *stubOrderRepo) ListItems(_ context.Context, orderID uuid.UUID) ([]model.OrderItem, error) {
	o, ok := r.orders[orderID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return o.Items, nil
}

func (r *stubOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	o, ok := r.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.Status = status
	return nil
}

func (r *stubOrderRepo) DeleteItemsTx(_ *gorm.DB, orderID uuid.UUID) error {
	if o, ok := r.orders[orderID]; ok {
		o.Items = nil
	}
	return nil
}

func (r *stubOrderRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.orders, id)
	return nil
}

func (r *stubOrderRepo) DB() *gorm.DB { return nil }

var _ repository.OrderRepository = (*stubOrderRepo)(nil)

// ── Helpers ──────────────────────────────────────────────────────────────────

func newTestOrders(t *testing.T, repo *stubOrderRepo, itemRepo *stubItemRepo, txRepo *stubTxRepo) OrderService {
	t.Helper()
	svc := NewOrderService(repo, itemRepo, txRepo, nil)
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestGenerateOrderNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD\d{9}$`)
	// Century edges matter: the two-digit year must stay zero-padded at 2000
	// ("00") and 2009 ("09") and roll cleanly through 2099 ("99").
	years := []int{2000, 2005, 2009, 2010, 2024, 2050, 2099}
	for _, year := range years {
		now := time.Date(year, time.March, 7, 12, 0, 0, 0, time.UTC)
		for i := 0; i < 200; i++ {
			n := GenerateOrderNumber(now)
			require.Regexp(t, pattern, n)
			assert.Equal(t, "ORD"+now.Format("060102"), n[:9])
		}
	}
}

func TestCreateOrderDecrementsStockAndAudits(t *testing.T) {
	itemRepo := newStubItemRepo()
	itemID := seedItem(itemRepo, "Wireless Mouse", "MOUSE-001", 150, 20, "49.99")
	orderRepo := newStubOrderRepo()
	txRepo := &stubTxRepo{}
	svc := newTestOrders(t, orderRepo, itemRepo, txRepo)
	actor := uuid.New()

	resp, err := svc.Create(context.Background(), actor, dto.CreateOrderRequest{
		CustomerName:  "Acme Corp",
		CustomerEmail: "purchasing@acme.test",
		Items: []dto.OrderLineRequest{
			{InventoryItemID: itemID, Quantity: 2, UnitPrice: decimal.RequireFromString("49.99")},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, model.StatusPending, resp.Status)
	assert.True(t, resp.TotalAmount.Equal(decimal.RequireFromString("99.98")),
		"got %s", resp.TotalAmount)

	assert.Equal(t, 148, itemRepo.items[itemID].Quantity)

	require.Len(t, txRepo.rows, 1)
	audit := txRepo.last()
	assert.Equal(t, model.TxRemove, audit.TransactionType)
	assert.Equal(t, 2, audit.QuantityChange)
	assert.Equal(t, 150, audit.PreviousQuantity)
	assert.Equal(t, 148, audit.NewQuantity)
	assert.Equal(t, actor, audit.UserID)
	assert.Contains(t, audit.Notes, resp.OrderNumber)
}

func TestCreateOrderRetriesNumberCollision(t *testing.T) {
	itemRepo := newStubItemRepo()
	itemID := seedItem(itemRepo, "Wireless Mouse", "MOUSE-001", 150, 20, "49.99")
	orderRepo := newStubOrderRepo()
	orderRepo.dupsLeft = 2
	svc := newTestOrders(t, orderRepo, itemRepo, &stubTxRepo{})

	resp, err := svc.Create(context.Background(), uuid.New(), dto.CreateOrderRequest{
		CustomerName:  "Acme Corp",
		CustomerEmail: "purchasing@acme.test",
		Items: []dto.OrderLineRequest{
			{InventoryItemID: itemID, Quantity: 1, UnitPrice: decimal.RequireFromString("49.99")},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 3, orderRepo.creates, "two collisions then success")
}

func TestCreateOrderGivesUpAfterMaxAttempts(t *testing.T) {
	itemRepo := newStubItemRepo()
	itemID := seedItem(itemRepo, "Wireless Mouse", "MOUSE-001", 150, 20, "49.99")
	orderRepo := newStubOrderRepo()
	orderRepo.dupsLeft = orderNumberAttempts
	svc := newTestOrders(t, orderRepo, itemRepo, &stubTxRepo{})

	_, err := svc.Create(context.Background(), uuid.New(), dto.CreateOrderRequest{
		CustomerName:  "Acme Corp",
		CustomerEmail: "purchasing@acme.test",
		Items: []dto.OrderLineRequest{
			{InventoryItemID: itemID, Quantity: 1, UnitPrice: decimal.RequireFromString("49.99")},
		},
	})

	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestCreateOrderUnknownItemFailsWhole(t *testing.T) {
	itemRepo := newStubItemRepo()
	orderRepo := newStubOrderRepo()
	svc := newTestOrders(t, orderRepo, itemRepo, &stubTxRepo{})

	_, err := svc.Create(context.Background(), uuid.New(), dto.CreateOrderRequest{
		CustomerName:  "Acme Corp",
		CustomerEmail: "purchasing@acme.test",
		Items: []dto.OrderLineRequest{
			{InventoryItemID: uuid.New(), Quantity: 1, UnitPrice: decimal.RequireFromString("1.00")},
		},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDeleteOrderRestoresStock(t *testing.T) {
	itemRepo := newStubItemRepo()
	itemID := seedItem(itemRepo, "Office Chair", "CHAIR-001", 10, 10, "299.99")
	orderRepo := newStubOrderRepo()
	txRepo := &stubTxRepo{}
	svc := newTestOrders(t, orderRepo, itemRepo, txRepo)

	resp, err := svc.Create(context.Background(), uuid.New(), dto.CreateOrderRequest{
		CustomerName:  "Acme Corp",
		CustomerEmail: "purchasing@acme.test",
		Items: []dto.OrderLineRequest{
			{InventoryItemID: itemID, Quantity: 3, UnitPrice: decimal.RequireFromString("299.99")},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 7, itemRepo.items[itemID].Quantity)

	require.NoError(t, svc.Delete(context.Background(), uuid.New(), resp.ID))

	assert.Equal(t, 10, itemRepo.items[itemID].Quantity, "stock restored")
	restore := txRepo.last()
	assert.Equal(t, model.TxAdd, restore.TransactionType)
	assert.Equal(t, 3, restore.QuantityChange)
	assert.Equal(t, 7, restore.PreviousQuantity)
	assert.Equal(t, 10, restore.NewQuantity)
	assert.Contains(t, restore.Notes, "stock restored")
	assert.Empty(t, svc.Orders())
}

func TestDeleteOrderSkipsMissingItems(t *testing.T) {
	itemRepo := newStubItemRepo()
	itemID := seedItem(itemRepo, "Office Chair", "CHAIR-001", 10, 10, "299.99")
	orderRepo := newStubOrderRepo()
	svc := newTestOrders(t, orderRepo, itemRepo, &stubTxRepo{})

	resp, err := svc.Create(context.Background(), uuid.New(), dto.CreateOrderRequest{
		CustomerName:  "Acme Corp",
		CustomerEmail: "purchasing@acme.test",
		Items: []dto.OrderLineRequest{
			{InventoryItemID: itemID, Quantity: 1, UnitPrice: decimal.RequireFromString("299.99")},
		},
	})
	require.NoError(t, err)

	// The item is removed between order creation and deletion.
	delete(itemRepo.items, itemID)

	assert.NoError(t, svc.Delete(context.Background(), uuid.New(), resp.ID))
}

func TestUpdateStatusRefreshesCache(t *testing.T) {
	itemRepo := newStubItemRepo()
	itemID := seedItem(itemRepo, "Office Chair", "CHAIR-001", 10, 2, "299.99")
	orderRepo := newStubOrderRepo()
	svc := newTestOrders(t, orderRepo, itemRepo, &stubTxRepo{})

	resp, err := svc.Create(context.Background(), uuid.New(), dto.CreateOrderRequest{
		CustomerName:  "Acme Corp",
		CustomerEmail: "purchasing@acme.test",
		Items: []dto.OrderLineRequest{
			{InventoryItemID: itemID, Quantity: 1, UnitPrice: decimal.RequireFromString("299.99")},
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(context.Background(), uuid.New(), resp.ID, model.StatusShipped))

	orders := svc.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, model.StatusShipped, orders[0].Status)
}

func TestOrderStats(t *testing.T) {
	orderRepo := newStubOrderRepo()
	now := time.Now()
	for _, o := range []model.Order{
		{ID: uuid.New(), OrderNumber: "ORD260901001", Status: model.StatusPending,
			OrderDate: now, TotalAmount: decimal.RequireFromString("100.00")},
		{ID: uuid.New(), OrderNumber: "ORD260901002", Status: model.StatusDelivered,
			OrderDate: now.AddDate(0, 0, -3), TotalAmount: decimal.RequireFromString("250.50")},
		{ID: uuid.New(), OrderNumber: "ORD260901003", Status: model.StatusCancelled,
			OrderDate: now, TotalAmount: decimal.RequireFromString("10.00")},
	} {
		cp := o
		orderRepo.orders[o.ID] = &cp
	}
	svc := newTestOrders(t, orderRepo, newStubItemRepo(), &stubTxRepo{})

	stats := svc.Stats()

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Delivered)
	assert.Equal(t, 1, stats.Cancelled)
	assert.Equal(t, 2, stats.Today)
	assert.True(t, stats.TotalRevenue.Equal(decimal.RequireFromString("360.50")),
		"got %s", stats.TotalRevenue)
	assert.Len(t, svc.TodayOrders(), 2)
}
