package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"course_backend/internal/feature/course/domain/entity"
	"course_backend/internal/feature/course/usecase"
)

// instructorGorm はInstructorsRepositoryのGORM実装です。
type instructorGorm struct {
	db *gorm.DB
}

var _ usecase.InstructorsRepository = (*instructorGorm)(nil)

// NewInstructorGorm はinstructorGormの新しいインスタンスを生成します。
func NewInstructorGorm(db *gorm.DB) *instructorGorm {
	return &instructorGorm{db: db}
}

// FindByID は所有ユーザーのIDでインストラクターを取得します。
func (r *instructorGorm) FindByID(ctx context.Context, userID string) (*entity.Instructor, error) {
	if !isUUID(userID) {
		return nil, usecase.ErrInstructorNotFound
	}

	var model InstructorModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrInstructorNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

// SetStatus はユーザーのインストラクター行を作成、または既存のステータスを更新します。
// ステータス遷移は管理操作としてのみ行われます。
func (r *instructorGorm) SetStatus(ctx context.Context, userID string, status entity.InstructorStatus) (*entity.Instructor, error) {
	if !status.Valid() {
		return nil, errors.New("invalid instructor status: " + string(status))
	}

	model := InstructorModel{UserID: userID, Status: string(status)}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(&model).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, userID)
}
