package service

import (
	"context"
	"testing"
	"time"

	"github.com/ZACHARY2215/logistx-inventory-hub/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTransactionTodayCountSkipsOlderRows(t *testing.T) {
	now := time.Now()
	repo := &stubTxRepo{rows: []model.InventoryTransaction{
		{ID: uuid.New(), TransactionType: model.TxAdd, CreatedAt: now},
		{ID: uuid.New(), TransactionType: model.TxRemove, CreatedAt: now.Add(-time.Minute)},
		{ID: uuid.New(), TransactionType: model.TxAdd, CreatedAt: now.AddDate(0, 0, -1)},
		{ID: uuid.New(), TransactionType: model.TxCreate, CreatedAt: now.AddDate(0, -1, 0)},
	}}
	svc := NewTransactionService(repo)
	require.NoError(t, svc.Load(context.Background()))

	assert.Equal(t, 2, svc.TodayCount())
	assert.Len(t, svc.Transactions(), 4)
}

func TestTransactionResponseCarriesJoinedNames(t *testing.T) {
	items := DemoItems()
	users := DemoUsers()
	repo := &stubTxRepo{rows: []model.InventoryTransaction{{
		ID:     uuid.New(),
		ItemID: items[0].ID, UserID: users[0].UserID,
		TransactionType: model.TxAdd,
		QuantityChange:  5, PreviousQuantity: 10, NewQuantity: 15,
		CreatedAt: time.Now(),
		Item:      &items[0], User: &users[0],
	}}}
	svc := NewTransactionService(repo)
	require.NoError(t, svc.Load(context.Background()))

	rows := svc.Transactions()
	require.Len(t, rows, 1)
	assert.Equal(t, items[0].Name, rows[0].ItemName)
	assert.Equal(t, items[0].SKU, rows[0].ItemSKU)
	assert.Equal(t, users[0].Name, rows[0].UserName)
	assert.Equal(t, users[0].Email, rows[0].UserEmail)
}

func TestTransactionLoadFallsBackToDemoData(t *testing.T) {
	svc := NewTransactionService(failingTxRepo{})

	require.NoError(t, svc.Load(context.Background()))

	assert.True(t, svc.Loaded())
	assert.NotEmpty(t, svc.Transactions())
}

type failingTxRepo struct{}

func (failingTxRepo) Create(context.Context, *model.InventoryTransaction) error { return assert.AnError }
func (failingTxRepo) CreateTx(*gorm.DB, *model.InventoryTransaction) error      { return assert.AnError }
func (failingTxRepo) ListAll(context.Context) ([]model.InventoryTransaction, error) {
	return nil, assert.AnError
}
