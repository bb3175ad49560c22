package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabriel-vasile/mimetype"

	"course_backend/internal/feature/user/domain/entity"
	"course_backend/internal/shared/domainerr"
)

// UploadInput は認証済みユーザーがアップロードしたファイルです。
type UploadInput struct {
	UserID      string
	FileName    string
	ContentType string
	Body        []byte
}

// mediaKind describes one kind of profile image.
type mediaKind struct {
	name    string
	allowed map[string]bool // content type -> resize before upload
	width   int
	height  int
	field   func(url string) entity.UserUpdate
}

var (
	avatarKind = mediaKind{
		name:    "avatar",
		allowed: map[string]bool{"image/jpeg": true, "image/png": true},
		width:   460,
		height:  460,
		field:   func(url string) entity.UserUpdate { return entity.UserUpdate{AvatarURL: &url} },
	}
	coverKind = mediaKind{
		name:    "cover",
		allowed: map[string]bool{"image/jpeg": true, "image/png": true, "application/pdf": false},
		width:   1500,
		height:  500,
		field:   func(url string) entity.UserUpdate { return entity.UserUpdate{CoverURL: &url} },
	}
)

// UpdateMediaUsecase はプロフィール画像（アバターまたはカバー）を検証・リサイズ・アップロードし、URLを保存します。
type UpdateMediaUsecase struct {
	users    UserRepository
	uploader Uploader
	resizer  ImageResizer
	kind     mediaKind
}

// NewUpdateAvatarUsecase はJPEG/PNGを460x460にリサイズするアバター更新ユースケースを生成します。
func NewUpdateAvatarUsecase(users UserRepository, uploader Uploader, resizer ImageResizer) *UpdateMediaUsecase {
	return &UpdateMediaUsecase{users: users, uploader: uploader, resizer: resizer, kind: avatarKind}
}

// NewUpdateCoverUsecase はJPEG/PNG/PDFを受け付けるカバー更新ユースケースを生成します。画像は1500x500にリサイズします。
func NewUpdateCoverUsecase(users UserRepository, uploader Uploader, resizer ImageResizer) *UpdateMediaUsecase {
	return &UpdateMediaUsecase{users: users, uploader: uploader, resizer: resizer, kind: coverKind}
}

// Execute はアップロード後のURLを返します。
// 非対応のContent-Typeはdomainerr.ErrInvalidTypeFile、存在しないユーザーはdomainerr.ErrResourceNotFoundになります。
func (u *UpdateMediaUsecase) Execute(ctx context.Context, in UploadInput) (string, error) {
	resize, ok := u.kind.allowed[in.ContentType]
	if !ok {
		return "", fmt.Errorf("%w: %s does not accept %q", domainerr.ErrInvalidTypeFile, u.kind.name, in.ContentType)
	}

	if _, err := u.users.FindByID(ctx, in.UserID); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", fmt.Errorf("%w: user %s", domainerr.ErrResourceNotFound, in.UserID)
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	body := in.Body
	if !resize && !mimetype.Detect(body).Is(in.ContentType) {
		// stored as-is, so the declared type must match the content
		return "", fmt.Errorf("%w: %s content is not %q", domainerr.ErrInvalidTypeFile, u.kind.name, in.ContentType)
	}
	if resize {
		resized, err := u.resizer.Fill(body, in.ContentType, u.kind.width, u.kind.height)
		if err != nil {
			return "", fmt.Errorf("%w: cannot decode %s image: %v", domainerr.ErrInvalidTypeFile, u.kind.name, err)
		}
		body = resized
	}

	url, err := u.uploader.Upload(ctx, in.FileName, in.ContentType, body)
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", u.kind.name, err)
	}

	if err := u.users.Update(ctx, in.UserID, u.kind.field(url)); err != nil {
		return "", fmt.Errorf("failed to save %s url: %w", u.kind.name, err)
	}
	return url, nil
}
