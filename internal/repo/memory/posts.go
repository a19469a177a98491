package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/inkpost/inkpost/internal/domain/post"
)

type PostsRepo struct {
	mu    sync.RWMutex
	items map[string]post.Post
	order []string // insertion order stands in for the store's natural order
}

func NewPostsRepo() *PostsRepo {
	return &PostsRepo{
		items: make(map[string]post.Post),
	}
}

func (r *PostsRepo) Create(ctx context.Context, req post.CreateRequest) (post.Post, error) {
	now := time.Now().UTC()

	p := post.Post{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	r.mu.Lock()
	r.items[p.ID] = p
	r.order = append(r.order, p.ID)
	r.mu.Unlock()

	return p, nil
}

func (r *PostsRepo) GetByID(ctx context.Context, id string) (post.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[id]

	if !ok {
		return post.Post{}, post.ErrNotFound
	}

	return p, nil
}

func (r *PostsRepo) List(ctx context.Context) ([]post.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]post.Post, 0, len(r.items))

	for _, id := range r.order {
		if p, ok := r.items[id]; ok {
			out = append(out, p)
		}
	}

	return out, nil
}

func (r *PostsRepo) ListByCategory(ctx context.Context, categoryID string) ([]post.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]post.Post, 0)

	for _, p := range r.items {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })

	return out, nil
}

func (r *PostsRepo) Update(ctx context.Context, id string, req post.UpdateRequest) (post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[id]

	if !ok {
		return post.Post{}, post.ErrNotFound
	}

	if req.Title != nil {
		p.Title = *req.Title
	}

	if req.Description != nil {
		p.Description = *req.Description
	}

	p.UpdatedAt = time.Now().UTC()
	r.items[id] = p

	return p, nil
}

func (r *PostsRepo) Delete(ctx context.Context, id string) (post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[id]

	if !ok {
		return post.Post{}, post.ErrNotFound
	}

	delete(r.items, id)

	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return p, nil
}
