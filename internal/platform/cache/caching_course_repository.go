// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"course_backend/internal/feature/course/domain/entity"
	"course_backend/internal/feature/course/usecase"
)

// CachingCourseRepository decorates a CoursesRepository with a Redis cache of
// course-by-slug lookups. Writes go to the inner repository first and then
// invalidate the affected slugs.
type CachingCourseRepository struct {
	inner     usecase.CoursesRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.CoursesRepository = (*CachingCourseRepository)(nil)

// NewCachingCourseRepository decorates a CoursesRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "courses".
// A nil rdb disables caching.
func NewCachingCourseRepository(rdb *redis.Client, ttl time.Duration, inner usecase.CoursesRepository, namespace string) *CachingCourseRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "courses"
	}
	return &CachingCourseRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create persists the course. Nothing is cached for a slug that did not exist.
func (c *CachingCourseRepository) Create(ctx context.Context, course *entity.Course) (*entity.Course, error) {
	return c.inner.Create(ctx, course)
}

// FindByID is not cached.
func (c *CachingCourseRepository) FindByID(ctx context.Context, id string) (*entity.Course, error) {
	return c.inner.FindByID(ctx, id)
}

// FindByIDWithInstructor is not cached; it feeds authorization checks.
func (c *CachingCourseRepository) FindByIDWithInstructor(ctx context.Context, id string) (*entity.Course, error) {
	return c.inner.FindByIDWithInstructor(ctx, id)
}

// FindBySlug checks the cache first, then falls back to the inner repository.
// Misses (ErrCourseNotFound) are not cached.
func (c *CachingCourseRepository) FindBySlug(ctx context.Context, slug string) (*entity.Course, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindBySlug(ctx, slug)
	}

	key := c.cacheKey(slug)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Course
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// UpdateByID updates the course and evicts both its previous and its new slug.
func (c *CachingCourseRepository) UpdateByID(ctx context.Context, id string, update entity.CourseUpdate) (*entity.Course, error) {
	if c.rdb == nil {
		return c.inner.UpdateByID(ctx, id, update)
	}

	var oldSlug string
	if before, err := c.inner.FindByID(ctx, id); err == nil {
		oldSlug = before.Slug
	}

	out, err := c.inner.UpdateByID(ctx, id, update)
	if err != nil {
		return nil, err
	}

	keys := []string{c.cacheKey(out.Slug)}
	if oldSlug != "" && oldSlug != out.Slug {
		keys = append([]string{c.cacheKey(oldSlug)}, keys...)
	}
	_ = c.rdb.Del(ctx, keys...).Err() // Best effort: don't fail if cache deletion fails
	return out, nil
}

// cacheKey generates the cache key for a slug lookup.
func (c *CachingCourseRepository) cacheKey(slug string) string {
	return fmt.Sprintf("%s:slug:%s", c.namespace, safe(slug))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
