// Package memory はuserフィーチャーのリポジトリのインメモリ実装を提供します。
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"course_backend/internal/feature/user/domain/entity"
	"course_backend/internal/feature/user/usecase"
)

// UserRepository はUserRepositoryのインメモリ実装です。
type UserRepository struct {
	mu    sync.RWMutex
	items map[string]entity.User
}

var _ usecase.UserRepository = (*UserRepository)(nil)

// NewUserRepository は空のUserRepositoryを生成します。
func NewUserRepository() *UserRepository {
	return &UserRepository{items: make(map[string]entity.User)}
}

// Create はユーザーを保存し、IDとタイムスタンプをuに反映します。
func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	if u == nil {
		return errors.New("user is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.Email == u.Email || existing.Slug == u.Slug {
			return usecase.ErrEmailAlreadyExists
		}
	}

	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := time.Now()
	u.CreatedAt, u.UpdatedAt = now, now
	r.items[u.ID] = *u
	return nil
}

// FindByEmail はメールアドレスでユーザーを取得します。
func (r *UserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.Email == email })
}

// FindByID はIDでユーザーを取得します。
func (r *UserRepository) FindByID(_ context.Context, id string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.ID == id })
}

// FindBySlug はスラッグでユーザーを取得します。
func (r *UserRepository) FindBySlug(_ context.Context, slug string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.Slug == slug })
}

// Update はnilでないフィールドのみを更新します。
func (r *UserRepository) Update(_ context.Context, id string, update entity.UserUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.items[id]
	if !ok {
		return usecase.ErrUserNotFound
	}
	update.Apply(&u)
	u.UpdatedAt = time.Now()
	r.items[id] = u
	return nil
}

func (r *UserRepository) find(match func(entity.User) bool) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.items {
		if match(u) {
			out := u
			return &out, nil
		}
	}
	return nil, usecase.ErrUserNotFound
}
