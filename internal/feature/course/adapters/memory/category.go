package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"course_backend/internal/feature/course/domain/entity"
	"course_backend/internal/feature/course/usecase"
)

// CategoryRepository はCategoriesRepositoryのインメモリ実装です。
type CategoryRepository struct {
	mu    sync.RWMutex
	items map[string]entity.Category
}

var _ usecase.CategoriesRepository = (*CategoryRepository)(nil)

// NewCategoryRepository は空のCategoryRepositoryを生成します。
func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{items: make(map[string]entity.Category)}
}

// Upsert はスラッグをキーにカテゴリを作成し、既存の場合は名前を更新します。
func (r *CategoryRepository) Upsert(_ context.Context, name, slug string) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for id, c := range r.items {
		if c.Slug == slug {
			c.Name = name
			c.UpdatedAt = now
			r.items[id] = c
			out := c
			return &out, nil
		}
	}

	c := entity.Category{ID: uuid.NewString(), Name: name, Slug: slug, CreatedAt: now, UpdatedAt: now}
	r.items[c.ID] = c
	out := c
	return &out, nil
}

// FindByID はIDでカテゴリを取得します。
func (r *CategoryRepository) FindByID(_ context.Context, id string) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[id]
	if !ok {
		return nil, usecase.ErrCategoryNotFound
	}
	return &c, nil
}
