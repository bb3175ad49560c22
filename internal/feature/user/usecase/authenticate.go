package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"course_backend/internal/feature/user/domain/entity"
	"course_backend/internal/shared/domainerr"
)

// dummyHash は存在しないユーザーに対しても比較を行うためのbcryptハッシュです。
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Session は認証成功時に発行されるトークンの組です。
type Session struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// AuthenticateUsecase はメールアドレスとパスワードでユーザーを認証します。
type AuthenticateUsecase struct {
	users   UserRepository
	access  TokenIssuer
	refresh TokenIssuer
}

// NewAuthenticateUsecase はAuthenticateUsecaseの新しいインスタンスを生成します。
func NewAuthenticateUsecase(users UserRepository, access, refresh TokenIssuer) *AuthenticateUsecase {
	return &AuthenticateUsecase{users: users, access: access, refresh: refresh}
}

// Execute はユーザーを認証し、アクセストークンとリフレッシュトークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *AuthenticateUsecase) Execute(ctx context.Context, email, password string) (*Session, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	passwordHash := dummyHash
	if user != nil {
		passwordHash = user.PasswordHash
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if user == nil || compareErr != nil {
		return nil, domainerr.ErrInvalidCredentials
	}

	access, err := u.access.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, err := u.refresh.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &Session{User: user, AccessToken: access, RefreshToken: refresh}, nil
}
