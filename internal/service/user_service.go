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

// UserService is the profile entity view-model.
type UserService interface {
	Load(ctx context.Context) error
	Loaded() bool
	Users() []dto.UserResponse
	Stats() dto.UserStats
	Create(ctx context.Context, actor uuid.UUID, req dto.CreateUserRequest) error
	Update(ctx context.Context, actor uuid.UUID, id uuid.UUID, patch dto.UserPatch) error
	Delete(ctx context.Context, actor uuid.UUID, id uuid.UUID) error
}

type userService struct {
	repo repository.ProfileRepository
	pub  *feed.Publisher

	mu     sync.RWMutex
	users  []model.UserProfile
	loaded bool
}

func NewUserService(repo repository.ProfileRepository, pub *feed.Publisher) UserService {
	return &userService{repo: repo, pub: pub}
}

func (s *userService) Load(ctx context.Context) error {
	cctx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()

	users, err := s.repo.ListAll(cctx)
	if err != nil {
		log.Warn().Err(err).Msg("users: fetch failed, using demo data")
		users = DemoUsers()
	}

	s.mu.Lock()
	s.users = users
	s.loaded = true
	s.mu.Unlock()
	return nil
}

func (s *userService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *userService) Users() []dto.UserResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]dto.UserResponse, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, userToResponse(u))
	}
	return out
}

func (s *userService) Stats() dto.UserStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats := dto.UserStats{Total: len(s.users)}
	for _, u := range s.users {
		switch u.Role {
		case model.RoleAdmin:
			stats.Admin++
		case model.RoleStaff:
			stats.Staff++
		}
	}
	return stats
}

func (s *userService) Create(ctx context.Context, _ uuid.UUID, req dto.CreateUserRequest) error {
	u := &model.UserProfile{
		UserID: req.UserID,
		Email:  req.Email,
		Name:   req.Name,
		Role:   req.Role,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errors.New("a profile for that user or email already exists")
		}
		return err
	}
	s.pub.Publish(ctx, "profiles", feed.OpInsert, u.ID)
	return s.Load(ctx)
}

func (s *userService) Update(ctx context.Context, _ uuid.UUID, id uuid.UUID, patch dto.UserPatch) error {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("user not found")
		}
		return err
	}

	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	if err := s.repo.Update(ctx, u); err != nil {
		return err
	}
	s.pub.Publish(ctx, "profiles", feed.OpUpdate, id)
	return s.Load(ctx)
}

func (s *userService) Delete(ctx context.Context, _ uuid.UUID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.pub.Publish(ctx, "profiles", feed.OpDelete, id)
	return s.Load(ctx)
}

func userToResponse(u model.UserProfile) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		UserID:    u.UserID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
