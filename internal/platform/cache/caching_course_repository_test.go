package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"course_backend/internal/feature/course/domain/entity"
	"course_backend/internal/feature/course/usecase"
)

// mockCoursesRepository はテスト用のCoursesRepositoryモック実装です。
type mockCoursesRepository struct {
	createFn     func(ctx context.Context, course *entity.Course) (*entity.Course, error)
	findByIDFn   func(ctx context.Context, id string) (*entity.Course, error)
	findBySlugFn func(ctx context.Context, slug string) (*entity.Course, error)
	updateFn     func(ctx context.Context, id string, update entity.CourseUpdate) (*entity.Course, error)
}

func (m *mockCoursesRepository) Create(ctx context.Context, course *entity.Course) (*entity.Course, error) {
	if m.createFn != nil {
		return m.createFn(ctx, course)
	}
	return course, nil
}

func (m *mockCoursesRepository) FindByID(ctx context.Context, id string) (*entity.Course, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, usecase.ErrCourseNotFound
}

func (m *mockCoursesRepository) FindBySlug(ctx context.Context, slug string) (*entity.Course, error) {
	if m.findBySlugFn != nil {
		return m.findBySlugFn(ctx, slug)
	}
	return nil, usecase.ErrCourseNotFound
}

func (m *mockCoursesRepository) FindByIDWithInstructor(ctx context.Context, id string) (*entity.Course, error) {
	return m.FindByID(ctx, id)
}

func (m *mockCoursesRepository) UpdateByID(ctx context.Context, id string, update entity.CourseUpdate) (*entity.Course, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, update)
	}
	return nil, usecase.ErrCourseNotFound
}

func sampleCourse() *entity.Course {
	ts := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return &entity.Course{
		ID:           "course-1",
		Title:        "JavaScript Course",
		Slug:         "javascript-course",
		Language:     entity.LanguageEnUS,
		Difficulty:   entity.DifficultyBeginner,
		InstructorID: "instructor-1",
		CategoryID:   "category-1",
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
}

// TestNewCachingCourseRepository_Defaults はデフォルト値（TTLとnamespace）が正しく設定されることを検証します。
func TestNewCachingCourseRepository_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{"default values when zero/empty", 0, "", 5 * time.Minute, "courses"},
		{"negative ttl uses default", -time.Minute, "", 5 * time.Minute, "courses"},
		{"custom values preserved", 10 * time.Minute, "custom", 10 * time.Minute, "custom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := NewCachingCourseRepository(nil, tt.ttl, &mockCoursesRepository{}, tt.namespace)

			if repo.ttl != tt.expectedTTL {
				t.Errorf("expected TTL %v, got %v", tt.expectedTTL, repo.ttl)
			}
			if repo.namespace != tt.expectedNamespace {
				t.Errorf("expected namespace %q, got %q", tt.expectedNamespace, repo.namespace)
			}
		})
	}
}

// TestCachingCourseRepository_FindBySlug_NilRedis はRedisがnilの場合にキャッシュをバイパスすることを検証します。
func TestCachingCourseRepository_FindBySlug_NilRedis(t *testing.T) {
	t.Parallel()

	inner := &mockCoursesRepository{
		findBySlugFn: func(context.Context, string) (*entity.Course, error) { return sampleCourse(), nil },
	}

	repo := NewCachingCourseRepository(nil, time.Minute, inner, "")
	course, err := repo.FindBySlug(context.Background(), "javascript-course")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if course.ID != "course-1" {
		t.Errorf("expected course-1, got %s", course.ID)
	}
}

// TestCachingCourseRepository_FindBySlug_CacheHit はキャッシュヒット時に内部リポジトリを呼ばないことを検証します。
func TestCachingCourseRepository_FindBySlug_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	cachedJSON, _ := json.Marshal(sampleCourse())
	mock.ExpectGet("courses:slug:javascript-course").SetVal(string(cachedJSON))

	innerCalled := false
	inner := &mockCoursesRepository{
		findBySlugFn: func(context.Context, string) (*entity.Course, error) {
			innerCalled = true
			return nil, nil
		},
	}

	repo := NewCachingCourseRepository(rdb, 5*time.Minute, inner, "courses")
	course, err := repo.FindBySlug(context.Background(), "javascript-course")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if innerCalled {
		t.Error("inner repository should not be called on cache hit")
	}
	if course.Slug != "javascript-course" || !course.CreatedAt.Equal(sampleCourse().CreatedAt) {
		t.Errorf("unexpected course from cache: %+v", course)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingCourseRepository_FindBySlug_CacheMiss はキャッシュミス時にDBから取得してキャッシュに保存することを検証します。
func TestCachingCourseRepository_FindBySlug_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedJSON, _ := json.Marshal(sampleCourse())
	mock.ExpectGet("courses:slug:javascript-course").RedisNil()
	mock.ExpectSet("courses:slug:javascript-course", expectedJSON, 5*time.Minute).SetVal("OK")

	inner := &mockCoursesRepository{
		findBySlugFn: func(context.Context, string) (*entity.Course, error) { return sampleCourse(), nil },
	}

	repo := NewCachingCourseRepository(rdb, 5*time.Minute, inner, "courses")
	if _, err := repo.FindBySlug(context.Background(), "javascript-course"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingCourseRepository_FindBySlug_NotFound は存在しないスラッグをキャッシュしないことを検証します。
func TestCachingCourseRepository_FindBySlug_NotFound(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectGet("courses:slug:missing").RedisNil()

	repo := NewCachingCourseRepository(rdb, 5*time.Minute, &mockCoursesRepository{}, "courses")
	_, err := repo.FindBySlug(context.Background(), "missing")

	if !errors.Is(err, usecase.ErrCourseNotFound) {
		t.Errorf("expected ErrCourseNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingCourseRepository_FindBySlug_CorruptedCache は破損したキャッシュを削除し、DBにフォールバックすることを検証します。
func TestCachingCourseRepository_FindBySlug_CorruptedCache(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedJSON, _ := json.Marshal(sampleCourse())
	mock.ExpectGet("courses:slug:javascript-course").SetVal("invalid json")
	mock.ExpectDel("courses:slug:javascript-course").SetVal(1)
	mock.ExpectSet("courses:slug:javascript-course", expectedJSON, 5*time.Minute).SetVal("OK")

	inner := &mockCoursesRepository{
		findBySlugFn: func(context.Context, string) (*entity.Course, error) { return sampleCourse(), nil },
	}

	repo := NewCachingCourseRepository(rdb, 5*time.Minute, inner, "courses")
	if _, err := repo.FindBySlug(context.Background(), "javascript-course"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingCourseRepository_UpdateByID_Invalidation は更新前後のスラッグのキャッシュが削除されることを検証します。
func TestCachingCourseRepository_UpdateByID_Invalidation(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	renamed := sampleCourse()
	renamed.Title, renamed.Slug = "Go Course", "go-course"
	inner := &mockCoursesRepository{
		findByIDFn: func(context.Context, string) (*entity.Course, error) { return sampleCourse(), nil },
		updateFn: func(context.Context, string, entity.CourseUpdate) (*entity.Course, error) {
			return renamed, nil
		},
	}
	mock.ExpectDel("courses:slug:javascript-course", "courses:slug:go-course").SetVal(1)

	repo := NewCachingCourseRepository(rdb, 5*time.Minute, inner, "courses")
	out, err := repo.UpdateByID(context.Background(), "course-1", entity.CourseUpdate{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Slug != "go-course" {
		t.Errorf("expected go-course, got %s", out.Slug)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingCourseRepository_UpdateByID_SameSlug はスラッグが変わらない場合に1キーのみ削除することを検証します。
func TestCachingCourseRepository_UpdateByID_SameSlug(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	inner := &mockCoursesRepository{
		findByIDFn: func(context.Context, string) (*entity.Course, error) { return sampleCourse(), nil },
		updateFn: func(context.Context, string, entity.CourseUpdate) (*entity.Course, error) {
			return sampleCourse(), nil
		},
	}
	mock.ExpectDel("courses:slug:javascript-course").SetVal(1)

	repo := NewCachingCourseRepository(rdb, 5*time.Minute, inner, "courses")
	if _, err := repo.UpdateByID(context.Background(), "course-1", entity.CourseUpdate{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingCourseRepository_UpdateByID_InnerError は内部エラー時にキャッシュを操作しないことを検証します。
func TestCachingCourseRepository_UpdateByID_InnerError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedErr := errors.New("update error")
	inner := &mockCoursesRepository{
		updateFn: func(context.Context, string, entity.CourseUpdate) (*entity.Course, error) {
			return nil, expectedErr
		},
	}

	repo := NewCachingCourseRepository(rdb, 5*time.Minute, inner, "courses")
	_, err := repo.UpdateByID(context.Background(), "course-1", entity.CourseUpdate{})

	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestSafe はsafe関数がRedisキーで問題となる文字をエスケープすることを検証します。
func TestSafe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"javascript-course", "javascript-course"},
		{"a b", "a_b"},
		{"key:value", "key_value"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := safe(tt.input); got != tt.expected {
				t.Errorf("safe(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}
