package usecase

import (
	"context"
	"errors"
	"fmt"

	"course_backend/internal/feature/user/domain/entity"
	"course_backend/internal/shared/domainerr"
)

// GetProfileUsecase はスラッグで公開プロフィールを取得します。
type GetProfileUsecase struct {
	users UserRepository
}

// NewGetProfileUsecase はGetProfileUsecaseの新しいインスタンスを生成します。
func NewGetProfileUsecase(users UserRepository) *GetProfileUsecase {
	return &GetProfileUsecase{users: users}
}

// Execute は公開フィールドのみを含むプロフィールを返します。
func (u *GetProfileUsecase) Execute(ctx context.Context, slug string) (*entity.Profile, error) {
	user, err := u.users.FindBySlug(ctx, slug)
	if errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("%w: user %s", domainerr.ErrResourceNotFound, slug)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by slug: %w", err)
	}
	return user.Profile(), nil
}

// UpdateBiographyUsecase は自己紹介文を更新します。
type UpdateBiographyUsecase struct {
	users UserRepository
}

// NewUpdateBiographyUsecase はUpdateBiographyUsecaseの新しいインスタンスを生成します。
func NewUpdateBiographyUsecase(users UserRepository) *UpdateBiographyUsecase {
	return &UpdateBiographyUsecase{users: users}
}

// Execute はユーザーの自己紹介文を置き換えます。
func (u *UpdateBiographyUsecase) Execute(ctx context.Context, userID, biography string) error {
	err := u.users.Update(ctx, userID, entity.UserUpdate{Biography: &biography})
	if errors.Is(err, ErrUserNotFound) {
		return fmt.Errorf("%w: user %s", domainerr.ErrResourceNotFound, userID)
	}
	return err
}
