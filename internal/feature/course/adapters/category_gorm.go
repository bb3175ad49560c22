package adapters

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"course_backend/internal/feature/course/domain/entity"
	"course_backend/internal/feature/course/usecase"
)

// categoryGorm はCategoriesRepositoryのGORM実装です。
type categoryGorm struct {
	db *gorm.DB
}

var _ usecase.CategoriesRepository = (*categoryGorm)(nil)

// NewCategoryGorm はcategoryGormの新しいインスタンスを生成します。
func NewCategoryGorm(db *gorm.DB) *categoryGorm {
	return &categoryGorm{db: db}
}

// FindByID はIDでカテゴリを取得します。
func (r *categoryGorm) FindByID(ctx context.Context, id string) (*entity.Category, error) {
	if !isUUID(id) {
		return nil, usecase.ErrCategoryNotFound
	}

	var model CategoryModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCategoryNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

// Upsert はスラッグをキーにカテゴリを作成し、既存の場合は名前を更新します。
// シーダーから使用します。
func (r *categoryGorm) Upsert(ctx context.Context, name, slug string) (*entity.Category, error) {
	model := CategoryModel{ID: uuid.NewString(), Name: name, Slug: slug}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "updated_at"}),
	}).Create(&model).Error
	if err != nil {
		return nil, err
	}

	var stored CategoryModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&stored).Error; err != nil {
		return nil, err
	}
	return stored.ToEntity(), nil
}
