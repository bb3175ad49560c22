// Package handler はcourseフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"course_backend/internal/feature/course/domain/entity"
	"course_backend/internal/feature/course/transport/http/dto"
	"course_backend/internal/feature/course/usecase"
	"course_backend/internal/platform/http/apierror"
	jwtmw "course_backend/internal/platform/jwt"
)

// CourseCreator はコース作成のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type CourseCreator interface {
	Execute(ctx context.Context, in usecase.CreateCourseInput) (*entity.Course, error)
}

// CourseUpdater はコース更新のユースケースを定義します。
type CourseUpdater interface {
	Execute(ctx context.Context, in usecase.UpdateCourseInput) (*entity.Course, error)
}

// CourseGetter はスラッグによるコース取得のユースケースを定義します。
type CourseGetter interface {
	Execute(ctx context.Context, slug string) (*entity.Course, error)
}

// CourseHandler はコースのHTTPリクエストを処理します。
type CourseHandler struct {
	create CourseCreator
	update CourseUpdater
	get    CourseGetter
}

// NewCourseHandler はCourseHandlerの新しいインスタンスを生成します。
func NewCourseHandler(create CourseCreator, update CourseUpdater, get CourseGetter) *CourseHandler {
	return &CourseHandler{create: create, update: update, get: get}
}

// Create はコース作成APIエンドポイントを処理します。
// - バインドエラー時は400を返却
// - ドメインエラーはapierrorで分類して返却
// - 成功時は201と {"course": ...} を返却
func (h *CourseHandler) Create(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.Response{Error: "unauthenticated"})
		return
	}

	var req dto.CreateCourseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.BindError(c, err)
		return
	}

	course, err := h.create.Execute(c.Request.Context(), usecase.CreateCourseInput{
		InstructorID: userID,
		CategoryID:   req.CategoryID,
		Title:        req.Title,
		Description:  req.Description,
		Language:     entity.Language(req.Language),
		Difficulty:   entity.Difficulty(req.Difficulty),
	})
	if err != nil {
		apierror.Write(c, err)
		return
	}

	slog.Info("course created", "course_id", course.ID, "slug", course.Slug, "instructor_id", userID)
	c.JSON(http.StatusCreated, dto.FromEntity(course))
}

// Update はコース更新APIエンドポイントを処理します。成功時は200を返却します。
func (h *CourseHandler) Update(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.Response{Error: "unauthenticated"})
		return
	}

	var req dto.UpdateCourseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.BindError(c, err)
		return
	}

	course, err := h.update.Execute(c.Request.Context(), usecase.UpdateCourseInput{
		CourseID:     req.CourseID,
		InstructorID: userID,
		CategoryID:   req.CategoryID,
		Title:        req.Title,
		Description:  req.Description,
		Language:     entity.Language(req.Language),
		Difficulty:   entity.Difficulty(req.Difficulty),
	})
	if err != nil {
		apierror.Write(c, err)
		return
	}

	slog.Info("course updated", "course_id", course.ID, "slug", course.Slug, "instructor_id", userID)
	c.JSON(http.StatusOK, dto.FromEntity(course))
}

// GetBySlug はスラッグによる公開コース取得を処理します。
func (h *CourseHandler) GetBySlug(c *gin.Context) {
	course, err := h.get.Execute(c.Request.Context(), c.Param("slug"))
	if err != nil {
		apierror.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(course))
}
