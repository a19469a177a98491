package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/inkpost/inkpost/internal/domain/category"
)

type CategoriesRepo struct {
	mu    sync.RWMutex
	items map[string]category.Category
}

func NewCategoriesRepo() *CategoriesRepo {
	return &CategoriesRepo{
		items: make(map[string]category.Category),
	}
}

func (r *CategoriesRepo) Create(ctx context.Context, name string) (category.Category, error) {
	c := category.Category{
		ID:   uuid.NewString(),
		Name: name,
	}

	r.mu.Lock()
	r.items[c.ID] = c
	r.mu.Unlock()

	return c, nil
}

func (r *CategoriesRepo) GetByID(ctx context.Context, id string) (category.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[id]

	if !ok {
		return category.Category{}, category.ErrNotFound
	}

	return c, nil
}
