package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"course_backend/internal/feature/course/domain/entity"
	"course_backend/internal/feature/course/usecase"
)

// InstructorRepository はInstructorsRepositoryのインメモリ実装です。
type InstructorRepository struct {
	mu    sync.RWMutex
	items map[string]entity.Instructor
}

var _ usecase.InstructorsRepository = (*InstructorRepository)(nil)

// NewInstructorRepository は空のInstructorRepositoryを生成します。
func NewInstructorRepository() *InstructorRepository {
	return &InstructorRepository{items: make(map[string]entity.Instructor)}
}

// SetStatus はユーザーのインストラクターを作成、または既存のステータスを更新します。
func (r *InstructorRepository) SetStatus(_ context.Context, userID string, status entity.InstructorStatus) (*entity.Instructor, error) {
	if !status.Valid() {
		return nil, errors.New("invalid instructor status: " + string(status))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	i, ok := r.items[userID]
	if !ok {
		i = entity.Instructor{UserID: userID, CreatedAt: now}
	}
	i.Status = status
	i.UpdatedAt = now
	r.items[userID] = i

	out := i
	return &out, nil
}

// FindByID は所有ユーザーのIDでインストラクターを取得します。
func (r *InstructorRepository) FindByID(_ context.Context, userID string) (*entity.Instructor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.items[userID]
	if !ok {
		return nil, usecase.ErrInstructorNotFound
	}
	return &i, nil
}
