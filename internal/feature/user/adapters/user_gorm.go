// Package adapters はuserフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"course_backend/internal/feature/user/domain/entity"
	"course_backend/internal/feature/user/usecase"
	"course_backend/internal/platform/db"
)

// UserModel is the GORM model for the users table.
type UserModel struct {
	ID           string  `gorm:"primaryKey;size:36"`
	FirstName    string  `gorm:"size:100;not null"`
	LastName     string  `gorm:"size:100;not null"`
	Email        string  `gorm:"size:255;not null;uniqueIndex:idx_users_email"`
	PasswordHash string  `gorm:"column:password;size:255;not null"`
	Slug         string  `gorm:"size:255;not null;uniqueIndex:idx_users_slug"`
	Phone        *string `gorm:"size:32"`
	Occupation   string  `gorm:"size:120"`
	Biography    string  `gorm:"type:text"`
	AvatarURL    string  `gorm:"column:avatar_url;type:text"`
	CoverURL     string  `gorm:"column:cover_url;type:text"`
	HasTwoFactor bool    `gorm:"column:has_two_factor_authentication;not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts the GORM model to a domain entity.
func (m *UserModel) ToEntity() *entity.User {
	u := &entity.User{
		ID:           m.ID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Slug:         m.Slug,
		Occupation:   m.Occupation,
		Biography:    m.Biography,
		AvatarURL:    m.AvatarURL,
		CoverURL:     m.CoverURL,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,

		HasTwoFactorAuthentication: m.HasTwoFactor,
	}
	if m.Phone != nil {
		u.Phone = *m.Phone
	}
	return u
}

// userGorm はUserRepositoryインターフェースのGORM実装です。
type userGorm struct {
	db *gorm.DB
}

// userGormがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm は指定されたgorm.DB接続でuserGormの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create はユーザーをデータベースに追加し、採番したIDとタイムスタンプをuに反映します。
// メールアドレスまたはスラッグの一意制約に違反した場合、usecase.ErrEmailAlreadyExistsを返します。
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if u == nil {
		return errors.New("user is nil")
	}

	model := UserModel{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Slug:         u.Slug,
		Occupation:   u.Occupation,
		Biography:    u.Biography,
		AvatarURL:    u.AvatarURL,
		CoverURL:     u.CoverURL,
		HasTwoFactor: u.HasTwoFactorAuthentication,
	}
	if u.Phone != "" {
		model.Phone = &u.Phone
	}
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if db.IsUniqueViolation(err) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	*u = *model.ToEntity()
	return nil
}

// FindByEmail はメールアドレスでユーザーを取得します。
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.first(ctx, "email = ?", email)
}

// FindByID はIDでユーザーを取得します。
func (r *userGorm) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if uuid.Validate(id) != nil {
		return nil, usecase.ErrUserNotFound
	}
	return r.first(ctx, "id = ?", id)
}

// FindBySlug はスラッグでユーザーを取得します。
func (r *userGorm) FindBySlug(ctx context.Context, slug string) (*entity.User, error) {
	return r.first(ctx, "slug = ?", slug)
}

// Update はnilでないフィールドのみを更新します。
func (r *userGorm) Update(ctx context.Context, id string, update entity.UserUpdate) error {
	if uuid.Validate(id) != nil {
		return usecase.ErrUserNotFound
	}

	columns := map[string]any{}
	if update.Biography != nil {
		columns["biography"] = *update.Biography
	}
	if update.AvatarURL != nil {
		columns["avatar_url"] = *update.AvatarURL
	}
	if update.CoverURL != nil {
		columns["cover_url"] = *update.CoverURL
	}

	if len(columns) == 0 {
		_, err := r.FindByID(ctx, id)
		return err
	}

	result := r.db.WithContext(ctx).Model(&UserModel{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}

func (r *userGorm) first(ctx context.Context, query string, arg any) (*entity.User, error) {
	var model UserModel
	if err := r.db.WithContext(ctx).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}
