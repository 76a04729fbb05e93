package repository

import (
	"context"

	"github.com/ZACHARY2215/logistx-inventory-hub/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(ctx context.Context, p *model.UserProfile) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.UserProfile, error)
	ListAll(ctx context.Context) ([]model.UserProfile, error)
	Update(ctx context.Context, p *model.UserProfile) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type profileRepo struct{ db *gorm.DB }

func NewProfileRepository(db *gorm.DB) ProfileRepository { return &profileRepo{db: db} }

func (r *profileRepo) Create(ctx context.Context, p *model.UserProfile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *profileRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.UserProfile, error) {
	var p model.UserProfile
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *profileRepo) ListAll(ctx context.Context) ([]model.UserProfile, error) {
	var profiles []model.UserProfile
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&profiles).Error
	return profiles, err
}

func (r *profileRepo) Update(ctx context.Context, p *model.UserProfile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *profileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.UserProfile{}, id).Error
}
