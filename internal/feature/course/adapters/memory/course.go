// Package memory はcourseフィーチャーのリポジトリのインメモリ実装を提供します。
// 永続化層と同じ契約を満たすため、usecaseのテストダブルとして使用します。
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"course_backend/internal/feature/course/domain/entity"
	"course_backend/internal/feature/course/usecase"
	"course_backend/internal/shared/domainerr"
)

// CourseRepository はCoursesRepositoryのインメモリ実装です。
// スラッグの一意性はミューテックスの内側でチェックするため、書き込みと不可分です。
type CourseRepository struct {
	mu          sync.RWMutex
	items       map[string]entity.Course
	instructors usecase.InstructorsRepository
	now         func() time.Time
}

var _ usecase.CoursesRepository = (*CourseRepository)(nil)

// NewCourseRepository はインストラクターの解決に使うリポジトリを受け取り、空のCourseRepositoryを生成します。
func NewCourseRepository(instructors usecase.InstructorsRepository) *CourseRepository {
	return &CourseRepository{
		items:       make(map[string]entity.Course),
		instructors: instructors,
		now:         time.Now,
	}
}

// Create はコースを保存します。IDが空の場合はUUIDを採番します。
func (r *CourseRepository) Create(_ context.Context, course *entity.Course) (*entity.Course, error) {
	if course == nil {
		return nil, fmt.Errorf("course is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c := *course
	c.Instructor = nil
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if _, exists := r.items[c.ID]; exists {
		return nil, fmt.Errorf("course %s already exists", c.ID)
	}
	if r.slugTakenLocked(c.Slug, c.ID) {
		return nil, fmt.Errorf("%w: %s", domainerr.ErrDuplicatedSlug, c.Slug)
	}

	now := r.now()
	c.CreatedAt, c.UpdatedAt = now, now
	r.items[c.ID] = c

	out := c
	return &out, nil
}

// FindByID はIDでコースを取得します。
func (r *CourseRepository) FindByID(_ context.Context, id string) (*entity.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[id]
	if !ok {
		return nil, usecase.ErrCourseNotFound
	}
	return &c, nil
}

// FindBySlug はスラッグでコースを取得します。
func (r *CourseRepository) FindBySlug(_ context.Context, slug string) (*entity.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.items {
		if c.Slug == slug {
			out := c
			return &out, nil
		}
	}
	return nil, usecase.ErrCourseNotFound
}

// FindByIDWithInstructor はコースを取得し、インストラクターリポジトリから所有者を解決します。
func (r *CourseRepository) FindByIDWithInstructor(ctx context.Context, id string) (*entity.Course, error) {
	c, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	instructor, err := r.instructors.FindByID(ctx, c.InstructorID)
	switch {
	case err == nil:
		c.Instructor = instructor
	case errors.Is(err, usecase.ErrInstructorNotFound):
		c.Instructor = nil
	default:
		return nil, err
	}
	return c, nil
}

// UpdateByID はnilでないフィールドのみを更新します。
func (r *CourseRepository) UpdateByID(_ context.Context, id string, update entity.CourseUpdate) (*entity.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.items[id]
	if !ok {
		return nil, usecase.ErrCourseNotFound
	}

	update.Apply(&c)
	if r.slugTakenLocked(c.Slug, id) {
		return nil, fmt.Errorf("%w: %s", domainerr.ErrDuplicatedSlug, c.Slug)
	}
	c.UpdatedAt = r.now()
	r.items[id] = c

	out := c
	return &out, nil
}

// Count は保存されているコース数を返します。
func (r *CourseRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

func (r *CourseRepository) slugTakenLocked(slug, exceptID string) bool {
	for id, c := range r.items {
		if id != exceptID && c.Slug == slug {
			return true
		}
	}
	return false
}
