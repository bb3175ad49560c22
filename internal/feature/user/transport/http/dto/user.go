// Package dto はuserフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import (
	"time"

	"course_backend/internal/feature/user/domain/entity"
)

// RegisterReq は POST /users のリクエストボディです。
type RegisterReq struct {
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,password"`
}

// SessionReq は POST /sessions のリクエストボディです。
type SessionReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenRes はアクセストークンのレスポンスです。リフレッシュトークンはCookieで返します。
type TokenRes struct {
	Token string `json:"token"`
}

// BiographyReq は PATCH /me/biography のリクエストボディです。
type BiographyReq struct {
	Biography string `json:"biography" binding:"max=2000"`
}

// MediaRes はアップロード後のURLです。
type MediaRes struct {
	URL string `json:"url"`
}

// ProfileRes は公開プロフィールのレスポンス表現です。
type ProfileRes struct {
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Slug       string    `json:"slug"`
	Occupation string    `json:"occupation,omitempty"`
	Biography  string    `json:"biography,omitempty"`
	AvatarURL  string    `json:"avatarUrl,omitempty"`
	CoverURL   string    `json:"coverUrl,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ProfileEnvelope wraps a profile as {"user": ...}.
type ProfileEnvelope struct {
	User ProfileRes `json:"user"`
}

// FromProfile はプロフィールをレスポンスに変換します。
func FromProfile(p *entity.Profile) ProfileEnvelope {
	return ProfileEnvelope{User: ProfileRes{
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Slug:       p.Slug,
		Occupation: p.Occupation,
		Biography:  p.Biography,
		AvatarURL:  p.AvatarURL,
		CoverURL:   p.CoverURL,
		CreatedAt:  p.CreatedAt,
	}}
}
