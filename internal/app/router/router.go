// Package router はHTTPルーティングを構築します。
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	coursehandler "course_backend/internal/feature/course/transport/handler"
	userhandler "course_backend/internal/feature/user/transport/handler"
	platformhandler "course_backend/internal/platform/http/handler"
	jwtmw "course_backend/internal/platform/jwt"
	"course_backend/internal/shared/ratelimiter"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Health *platformhandler.HealthHandler
	User   *userhandler.UserHandler
	Course *coursehandler.CourseHandler
}

// Options configures middleware.
type Options struct {
	JWTSecret      string
	AllowedOrigins []string
	// AuthLimiter throttles POST /users and POST /sessions per client IP. Nil disables it.
	AuthLimiter *ratelimiter.RateLimiter
}

// NewRouter はミドルウェアと公開・認証必須のルートを登録したGinエンジンを生成します。
func NewRouter(h Handlers, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(opts.AllowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = opts.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	limit := func(c *gin.Context) { c.Next() }
	if opts.AuthLimiter != nil {
		limit = opts.AuthLimiter.Middleware()
	}

	// 認証不要
	// 導通確認用
	r.GET("/healthz", h.Health.Health)
	r.HEAD("/healthz", h.Health.Health)
	// 新規ユーザー登録
	r.POST("/users", limit, h.User.Register)
	// ログイン（JWT 発行）
	r.POST("/sessions", limit, h.User.Authenticate)
	r.GET("/users/:slug", h.User.GetProfile)
	r.GET("/courses/:slug", h.Course.GetBySlug)

	// 認証必須のルート
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired(opts.JWTSecret))
	{
		auth.PATCH("/me/biography", h.User.UpdateBiography)
		auth.PATCH("/me/avatar", h.User.UpdateAvatar)
		auth.PATCH("/me/cover", h.User.UpdateCover)
		auth.POST("/courses", h.Course.Create)
		auth.PUT("/courses", h.Course.Update)
	}

	return r
}
