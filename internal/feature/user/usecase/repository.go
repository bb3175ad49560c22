// Package usecase はuserフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"course_backend/internal/feature/user/domain/entity"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーを永続化し、IDとタイムスタンプを設定します。
	// メールアドレスまたはスラッグが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail はメールアドレスでユーザーを取得します。存在しない場合ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID はIDでユーザーを取得します。存在しない場合ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindBySlug はスラッグでユーザーを取得します。存在しない場合ErrUserNotFoundを返します。
	FindBySlug(ctx context.Context, slug string) (*entity.User, error)

	// Update はnilでないフィールドのみを更新します。存在しない場合ErrUserNotFoundを返します。
	Update(ctx context.Context, id string, update entity.UserUpdate) error
}

// TokenIssuer は署名済みトークンの生成を抽象化します。
type TokenIssuer interface {
	GenerateToken(userID string) (string, error)
}

// Uploader はファイルをオブジェクトストレージに保存し、公開URLを返します。
type Uploader interface {
	Upload(ctx context.Context, fileName, contentType string, body []byte) (string, error)
}

// ImageResizer は画像を指定サイズにクロップ・リサイズします。
type ImageResizer interface {
	Fill(body []byte, contentType string, width, height int) ([]byte, error)
}
