package service

import (
	"context"
	"testing"

	"github.com/ZACHARY2215/logistx-inventory-hub/internal/dto"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/model"
	"github.com/ZACHARY2215/logistx-inventory-hub/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubCategoryRepo struct {
	categories map[uuid.UUID]*model.Category
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[uuid.UUID]*model.Category)}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *model.Category) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCategoryRepo) FindByName(_ context.Context, name string) (*model.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoryRepo) ListAll(_ context.Context) ([]model.Category, error) {
	var out []model.Category
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, c *model.Category) error {
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.categories, id)
	return nil
}

var _ repository.CategoryRepository = (*stubCategoryRepo)(nil)

func TestCategoryCreateRejectsDuplicateName(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo, nil)
	require.NoError(t, svc.Load(context.Background()))

	require.NoError(t, svc.Create(context.Background(), uuid.New(),
		dto.CreateCategoryRequest{Name: "Electronics"}))
	err := svc.Create(context.Background(), uuid.New(),
		dto.CreateCategoryRequest{Name: "Electronics"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.Len(t, svc.Categories(), 1)
}

func TestCategoryUpdatePatchesOnlyGivenFields(t *testing.T) {
	repo := newStubCategoryRepo()
	desc := "Electronic gadgets"
	id := uuid.New()
	repo.categories[id] = &model.Category{ID: id, Name: "Electronics", Description: &desc}
	svc := NewCategoryService(repo, nil)
	require.NoError(t, svc.Load(context.Background()))

	name := "Consumer Electronics"
	require.NoError(t, svc.Update(context.Background(), uuid.New(), id,
		dto.CategoryPatch{Name: &name}))

	got := repo.categories[id]
	assert.Equal(t, "Consumer Electronics", got.Name)
	require.NotNil(t, got.Description)
	assert.Equal(t, "Electronic gadgets", *got.Description, "untouched field survives")
}

func TestCategoryLoadFallsBackToDemoData(t *testing.T) {
	svc := NewCategoryService(failingCategoryRepo{}, nil)

	require.NoError(t, svc.Load(context.Background()))

	assert.True(t, svc.Loaded())
	assert.Len(t, svc.Categories(), 6)
}

type failingCategoryRepo struct{}

func (failingCategoryRepo) Create(context.Context, *model.Category) error { return assert.AnError }
func (failingCategoryRepo) FindByID(context.Context, uuid.UUID) (*model.Category, error) {
	return nil, assert.AnError
}
func (failingCategoryRepo) FindByName(context.Context, string) (*model.Category, error) {
	return nil, assert.AnError
}
func (failingCategoryRepo) ListAll(context.Context) ([]model.Category, error) {
	return nil, assert.AnError
}
func (failingCategoryRepo) Update(context.Context, *model.Category) error { return assert.AnError }
func (failingCategoryRepo) Delete(context.Context, uuid.UUID) error       { return assert.AnError }
