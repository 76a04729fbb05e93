package service

import (
	"context"
	"errors"
	"sync"

	"github.com/ZACHARY2215/logistx-inventory-hub/internal/dto"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/feed"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/model"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// CategoryService is the category entity view-model.
type CategoryService interface {
	Load(ctx context.Context) error
	Loaded() bool
	Categories() []dto.CategoryResponse
	Create(ctx context.Context, actor uuid.UUID, req dto.CreateCategoryRequest) error
	Update(ctx context.Context, actor uuid.UUID, id uuid.UUID, patch dto.CategoryPatch) error
	Delete(ctx context.Context, actor uuid.UUID, id uuid.UUID) error
}

type categoryService struct {
	repo repository.CategoryRepository
	pub  *feed.Publisher

	mu         sync.RWMutex
	categories []model.Category
	loaded     bool
}

func NewCategoryService(repo repository.CategoryRepository, pub *feed.Publisher) CategoryService {
	return &categoryService{repo: repo, pub: pub}
}

func (s *categoryService) Load(ctx context.Context) error {
	cctx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()

	categories, err := s.repo.ListAll(cctx)
	if err != nil {
		log.Warn().Err(err).Msg("categories: fetch failed, using demo data")
		categories = DemoCategories()
	}

	s.mu.Lock()
	s.categories = categories
	s.loaded = true
	s.mu.Unlock()
	return nil
}

func (s *categoryService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *categoryService) Categories() []dto.CategoryResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]dto.CategoryResponse, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, dto.CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description})
	}
	return out
}

func (s *categoryService) Create(ctx context.Context, _ uuid.UUID, req dto.CreateCategoryRequest) error {
	existing, err := s.repo.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil && err == nil {
		return errors.New("a category with that name already exists")
	}

	c := &model.Category{Name: req.Name, Description: req.Description}
	if err := s.repo.Create(ctx, c); err != nil {
		return err
	}
	s.pub.Publish(ctx, "categories", feed.OpInsert, c.ID)
	return s.Load(ctx)
}

func (s *categoryService) Update(ctx context.Context, _ uuid.UUID, id uuid.UUID, patch dto.CategoryPatch) error {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("category not found")
		}
		return err
	}

	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Description != nil {
		c.Description = patch.Description
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return err
	}
	s.pub.Publish(ctx, "categories", feed.OpUpdate, id)
	return s.Load(ctx)
}

func (s *categoryService) Delete(ctx context.Context, _ uuid.UUID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.pub.Publish(ctx, "categories", feed.OpDelete, id)
	return s.Load(ctx)
}
