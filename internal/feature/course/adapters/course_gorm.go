package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"course_backend/internal/feature/course/domain/entity"
	"course_backend/internal/feature/course/usecase"
	"course_backend/internal/platform/db"
	"course_backend/internal/shared/domainerr"
)

// courseGorm はCoursesRepositoryのGORM実装です。
// スラッグの一意性はcourses.slugのユニークインデックスでも保証されます。
type courseGorm struct {
	db *gorm.DB
}

// courseGormがCoursesRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.CoursesRepository = (*courseGorm)(nil)

// NewCourseGorm は指定されたgorm.DB接続でcourseGormの新しいインスタンスを生成します。
func NewCourseGorm(db *gorm.DB) *courseGorm {
	return &courseGorm{db: db}
}

// Create はコースを追加します。スラッグが重複した場合domainerr.ErrDuplicatedSlugを返します。
func (r *courseGorm) Create(ctx context.Context, course *entity.Course) (*entity.Course, error) {
	if course == nil {
		return nil, errors.New("course is nil")
	}

	model := CourseModelFromEntity(course)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if db.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", domainerr.ErrDuplicatedSlug, model.Slug)
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

// FindByID はIDでコースを取得します。UUIDとして不正なIDは存在しないものとして扱います。
func (r *courseGorm) FindByID(ctx context.Context, id string) (*entity.Course, error) {
	if !isUUID(id) {
		return nil, usecase.ErrCourseNotFound
	}
	return r.first(ctx, "id = ?", id)
}

// FindBySlug はスラッグでコースを取得します。
func (r *courseGorm) FindBySlug(ctx context.Context, slug string) (*entity.Course, error) {
	return r.first(ctx, "slug = ?", slug)
}

// FindByIDWithInstructor はコースと所有インストラクターを取得します。
// インストラクターの行が存在しない場合、Instructorはnilのまま返します。
func (r *courseGorm) FindByIDWithInstructor(ctx context.Context, id string) (*entity.Course, error) {
	course, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var instructor InstructorModel
	err = r.db.WithContext(ctx).Where("user_id = ?", course.InstructorID).First(&instructor).Error
	switch {
	case err == nil:
		course.Instructor = instructor.ToEntity()
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return nil, err
	}
	return course, nil
}

// UpdateByID はnilでないフィールドのみを更新し、更新後のコースを返します。
func (r *courseGorm) UpdateByID(ctx context.Context, id string, update entity.CourseUpdate) (*entity.Course, error) {
	if !isUUID(id) {
		return nil, usecase.ErrCourseNotFound
	}

	var model CourseModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
			return err
		}

		columns := updateColumns(update)
		if len(columns) > 0 {
			if err := tx.Model(&model).Updates(columns).Error; err != nil {
				return err
			}
		}
		return tx.Where("id = ?", id).First(&model).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCourseNotFound
		}
		if db.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: course %s", domainerr.ErrDuplicatedSlug, id)
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

func (r *courseGorm) first(ctx context.Context, query string, arg any) (*entity.Course, error) {
	var model CourseModel
	if err := r.db.WithContext(ctx).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCourseNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

// isUUID reports whether id can be compared against a UUID primary key.
// PostgreSQL rejects malformed values with an error instead of matching no rows.
func isUUID(id string) bool {
	return uuid.Validate(id) == nil
}

// updateColumns maps the non-nil fields of update to column names.
func updateColumns(update entity.CourseUpdate) map[string]any {
	columns := make(map[string]any)
	if update.Title != nil {
		columns["title"] = *update.Title
	}
	if update.Slug != nil {
		columns["slug"] = *update.Slug
	}
	if update.Description != nil {
		columns["description"] = *update.Description
	}
	if update.Language != nil {
		columns["language"] = string(*update.Language)
	}
	if update.Difficulty != nil {
		columns["difficulty"] = string(*update.Difficulty)
	}
	if update.CategoryID != nil {
		columns["category_id"] = *update.CategoryID
	}
	return columns
}
