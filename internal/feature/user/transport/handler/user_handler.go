// Package handler はuserフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"course_backend/internal/feature/user/domain/entity"
	"course_backend/internal/feature/user/transport/http/dto"
	"course_backend/internal/feature/user/usecase"
	"course_backend/internal/platform/http/apierror"
	jwtmw "course_backend/internal/platform/jwt"
)

const (
	// RefreshCookieName はリフレッシュトークンを格納するCookie名です。
	RefreshCookieName = "refreshToken"

	// MaxUploadBytes はアバター・カバー画像の最大サイズです。
	MaxUploadBytes = 500 * 1024

	uploadField = "file"
)

// Registerer はユーザー登録のユースケースを定義します。
type Registerer interface {
	Execute(ctx context.Context, in usecase.RegisterInput) (*entity.User, error)
}

// Authenticator は認証のユースケースを定義します。
type Authenticator interface {
	Execute(ctx context.Context, email, password string) (*usecase.Session, error)
}

// ProfileGetter は公開プロフィール取得のユースケースを定義します。
type ProfileGetter interface {
	Execute(ctx context.Context, slug string) (*entity.Profile, error)
}

// BiographyUpdater は自己紹介文更新のユースケースを定義します。
type BiographyUpdater interface {
	Execute(ctx context.Context, userID, biography string) error
}

// MediaUpdater はアバター・カバー更新のユースケースを定義します。
type MediaUpdater interface {
	Execute(ctx context.Context, in usecase.UploadInput) (string, error)
}

// Usecases groups the user use cases the handler depends on.
type Usecases struct {
	Register  Registerer
	Auth      Authenticator
	Profile   ProfileGetter
	Biography BiographyUpdater
	Avatar    MediaUpdater
	Cover     MediaUpdater
}

// UserHandler はユーザーとセッションのHTTPリクエストを処理します。
type UserHandler struct {
	uc         Usecases
	refreshTTL time.Duration
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
// refreshTTLはリフレッシュトークンCookieの有効期間です。
func NewUserHandler(uc Usecases, refreshTTL time.Duration) *UserHandler {
	return &UserHandler{uc: uc, refreshTTL: refreshTTL}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - バインドエラー時は400を返却
// - メール重複時は409を返却
// - 成功時は201を返却
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.BindError(c, err)
		return
	}

	user, err := h.uc.Register.Execute(c.Request.Context(), usecase.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		apierror.Write(c, err)
		return
	}

	slog.Info("user registered", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.FromProfile(user.Profile()))
}

// Authenticate はログインAPIエンドポイントを処理します。
// アクセストークンをボディで、リフレッシュトークンをHttpOnly Cookieで返します。
func (h *UserHandler) Authenticate(c *gin.Context) {
	var req dto.SessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.BindError(c, err)
		return
	}

	session, err := h.uc.Auth.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		apierror.Write(c, err)
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(RefreshCookieName, session.RefreshToken, int(h.refreshTTL.Seconds()), "/", "", true, true)

	slog.Info("user login successful", "user_id", session.User.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenRes{Token: session.AccessToken})
}

// GetProfile はスラッグで公開プロフィールを返します。
func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, err := h.uc.Profile.Execute(c.Request.Context(), c.Param("slug"))
	if err != nil {
		apierror.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromProfile(profile))
}

// UpdateBiography は認証済みユーザーの自己紹介文を更新します。成功時は204を返却します。
func (h *UserHandler) UpdateBiography(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.Response{Error: "unauthenticated"})
		return
	}

	var req dto.BiographyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.BindError(c, err)
		return
	}

	if err := h.uc.Biography.Execute(c.Request.Context(), userID, req.Biography); err != nil {
		apierror.Write(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateAvatar はmultipartの"file"フィールドでアバター画像を受け取ります。
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	h.upload(c, h.uc.Avatar)
}

// UpdateCover はmultipartの"file"フィールドでカバー画像を受け取ります。
func (h *UserHandler) UpdateCover(c *gin.Context) {
	h.upload(c, h.uc.Cover)
}

func (h *UserHandler) upload(c *gin.Context, media MediaUpdater) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.Response{Error: "unauthenticated"})
		return
	}

	// multipartの境界分を見込んで上限を設定
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadBytes+64*1024)
	header, err := c.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, apierror.Response{Error: "file too large"})
			return
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, apierror.Response{Error: "file is required"})
		return
	}
	if header.Size > MaxUploadBytes {
		c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, apierror.Response{Error: "file too large"})
		return
	}

	body, err := readPart(header)
	if err != nil {
		apierror.Write(c, err)
		return
	}

	url, err := media.Execute(c.Request.Context(), usecase.UploadInput{
		UserID:      userID,
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        body,
	})
	if err != nil {
		apierror.Write(c, err)
		return
	}

	slog.Info("profile media updated", "user_id", userID, "url", url)
	c.JSON(http.StatusOK, dto.MediaRes{URL: url})
}

func readPart(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
