package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ZACHARY2215/logistx-inventory-hub/internal/dto"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/feed"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/model"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SupplierService is the supplier entity view-model.
type SupplierService interface {
	Load(ctx context.Context) error
	Loaded() bool
	Suppliers() []dto.SupplierResponse
	Create(ctx context.Context, actor uuid.UUID, req dto.CreateSupplierRequest) error
	Update(ctx context.Context, actor uuid.UUID, id uuid.UUID, patch dto.SupplierPatch) error
	Delete(ctx context.Context, actor uuid.UUID, id uuid.UUID) error
}

type supplierService struct {
	repo repository.SupplierRepository
	pub  *feed.Publisher

	mu        sync.RWMutex
	suppliers []model.Supplier
	loaded    bool
}

func NewSupplierService(repo repository.SupplierRepository, pub *feed.Publisher) SupplierService {
	return &supplierService{repo: repo, pub: pub}
}

func (s *supplierService) Load(ctx context.Context) error {
	cctx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()

	suppliers, err := s.repo.ListAll(cctx)
	if err != nil {
		log.Warn().Err(err).Msg("suppliers: fetch failed, using demo data")
		suppliers = DemoSuppliers()
	}

	s.mu.Lock()
	s.suppliers = suppliers
	s.loaded = true
	s.mu.Unlock()
	return nil
}

func (s *supplierService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *supplierService) Suppliers() []dto.SupplierResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]dto.SupplierResponse, 0, len(s.suppliers))
	for _, sup := range s.suppliers {
		out = append(out, supplierToResponse(sup))
	}
	return out
}

func (s *supplierService) Create(ctx context.Context, _ uuid.UUID, req dto.CreateSupplierRequest) error {
	sup := &model.Supplier{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Address:      req.Address,
	}
	if err := s.repo.Create(ctx, sup); err != nil {
		return err
	}
	s.pub.Publish(ctx, "suppliers", feed.OpInsert, sup.ID)
	return s.Load(ctx)
}

func (s *supplierService) Update(ctx context.Context, _ uuid.UUID, id uuid.UUID, patch dto.SupplierPatch) error {
	sup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("supplier not found")
		}
		return err
	}

	if patch.Name != nil {
		sup.Name = *patch.Name
	}
	if patch.ContactEmail != nil {
		sup.ContactEmail = patch.ContactEmail
	}
	if patch.ContactPhone != nil {
		sup.ContactPhone = patch.ContactPhone
	}
	if patch.Address != nil {
		sup.Address = patch.Address
	}
	if err := s.repo.Update(ctx, sup); err != nil {
		return err
	}
	s.pub.Publish(ctx, "suppliers", feed.OpUpdate, id)
	return s.Load(ctx)
}

func (s *supplierService) Delete(ctx context.Context, _ uuid.UUID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.pub.Publish(ctx, "suppliers", feed.OpDelete, id)
	return s.Load(ctx)
}

func supplierToResponse(s model.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:           s.ID,
		Name:         s.Name,
		ContactEmail: s.ContactEmail,
		ContactPhone: s.ContactPhone,
		Address:      s.Address,
		CreatedAt:    s.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
