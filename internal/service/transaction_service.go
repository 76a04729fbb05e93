package service

import (
	"context"
	"sync"
	"time"

	"github.com/ZACHARY2215/logistx-inventory-hub/internal/dto"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/model"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/repository"

	"github.com/rs/zerolog/log"
)

// TransactionService is the read-only view-model over the audit trail. The
// trail is append-only; rows are written by the inventory and order services,
// never through this one.
type TransactionService interface {
	Load(ctx context.Context) error
	Loaded() bool
	Transactions() []dto.TransactionResponse
	TodayCount() int
}

type transactionService struct {
	repo repository.TransactionRepository

	mu           sync.RWMutex
	transactions []model.InventoryTransaction
	loaded       bool
}

func NewTransactionService(repo repository.TransactionRepository) TransactionService {
	return &transactionService{repo: repo}
}

func (s *transactionService) Load(ctx context.Context) error {
	cctx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()

	transactions, err := s.repo.ListAll(cctx)
	if err != nil {
		log.Warn().Err(err).Msg("transactions: fetch failed, using demo data")
		transactions = DemoTransactions()
	}

	s.mu.Lock()
	s.transactions = transactions
	s.loaded = true
	s.mu.Unlock()
	return nil
}

func (s *transactionService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *transactionService) Transactions() []dto.TransactionResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]dto.TransactionResponse, 0, len(s.transactions))
	for _, t := range s.transactions {
		out = append(out, transactionToResponse(t))
	}
	return out
}

// TodayCount compares calendar days against "now" at read time.
func (s *transactionService) TodayCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	now := time.Now()
	count := 0
	for _, t := range s.transactions {
		if sameDay(t.CreatedAt, now) {
			count++
		}
	}
	return count
}

func transactionToResponse(t model.InventoryTransaction) dto.TransactionResponse {
	resp := dto.TransactionResponse{
		ID:               t.ID,
		ItemID:           t.ItemID,
		UserID:           t.UserID,
		TransactionType:  t.TransactionType,
		QuantityChange:   t.QuantityChange,
		PreviousQuantity: t.PreviousQuantity,
		NewQuantity:      t.NewQuantity,
		Notes:            t.Notes,
		CreatedAt:        t.CreatedAt.UTC().Format(time.RFC3339),
	}
	if t.Item != nil {
		resp.ItemName = t.Item.Name
		resp.ItemSKU = t.Item.SKU
	}
	if t.User != nil {
		resp.UserName = t.User.Name
		resp.UserEmail = t.User.Email
	}
	return resp
}
