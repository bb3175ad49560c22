package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"course_backend/internal/feature/user/domain/entity"
	"course_backend/internal/shared/domainerr"
	"course_backend/internal/shared/slug"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 6

	// slugAttempts はランダムなスラッグが衝突した場合の最大試行回数です。
	slugAttempts = 5
)

// RegisterInput はユーザー登録の入力です。
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// RegisterUsecase は新規ユーザーを登録します。
type RegisterUsecase struct {
	users  UserRepository
	suffix func() int
}

// NewRegisterUsecase はRegisterUsecaseの新しいインスタンスを生成します。
func NewRegisterUsecase(users UserRepository) *RegisterUsecase {
	return &RegisterUsecase{
		users:  users,
		suffix: func() int { return 100000 + rand.IntN(900000) },
	}
}

// Execute はパスワードをハッシュ化してユーザーを作成します。
// スラッグは「名 姓」に6桁の乱数を付けたテキストから導出します。
// メールアドレスが使用済みの場合domainerr.ErrUserAlreadyExistsを返します。
func (u *RegisterUsecase) Execute(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if len(in.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters long", domainerr.ErrValidation, minPasswordLength)
	}

	existing, err := u.users.FindByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	if existing != nil {
		return nil, domainerr.ErrUserAlreadyExists
	}

	userSlug, err := u.freeSlug(ctx, in.FirstName, in.LastName)
	if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hashed),
		Slug:         userSlug,
	}
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return nil, domainerr.ErrUserAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

// freeSlug returns a random profile slug not held by another user.
func (u *RegisterUsecase) freeSlug(ctx context.Context, firstName, lastName string) (string, error) {
	for range slugAttempts {
		s, err := slug.CreateFromText(firstName + " " + lastName + strconv.Itoa(u.suffix()))
		if err != nil {
			return "", err
		}

		_, err = u.users.FindBySlug(ctx, s.Value())
		if errors.Is(err, ErrUserNotFound) {
			return s.Value(), nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to find user by slug: %w", err)
		}
	}
	return "", fmt.Errorf("no free profile slug after %d attempts", slugAttempts)
}
