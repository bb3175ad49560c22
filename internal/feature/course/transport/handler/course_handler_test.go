package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course_backend/internal/feature/course/domain/entity"
	"course_backend/internal/feature/course/usecase"
	jwtmw "course_backend/internal/platform/jwt"
	"course_backend/internal/platform/validation"
	"course_backend/internal/shared/domainerr"
)

const (
	actorID    = "5c0b8f5e-9a43-4a8e-8f8a-1d2c3b4a5f60"
	categoryID = "8d7e6f5a-4b3c-4d2e-9f10-a1b2c3d4e5f6"
	courseID   = "0f4e2c1a-7b6d-4e3f-8a9b-0c1d2e3f4a5b"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validation.Init()
	os.Exit(m.Run())
}

type mockCreator struct {
	ExecuteFunc func(ctx context.Context, in usecase.CreateCourseInput) (*entity.Course, error)
}

func (m *mockCreator) Execute(ctx context.Context, in usecase.CreateCourseInput) (*entity.Course, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, in)
	}
	return nil, errors.New("not configured")
}

type mockUpdater struct {
	ExecuteFunc func(ctx context.Context, in usecase.UpdateCourseInput) (*entity.Course, error)
}

func (m *mockUpdater) Execute(ctx context.Context, in usecase.UpdateCourseInput) (*entity.Course, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, in)
	}
	return nil, errors.New("not configured")
}

type mockGetter struct {
	ExecuteFunc func(ctx context.Context, slug string) (*entity.Course, error)
}

func (m *mockGetter) Execute(ctx context.Context, slug string) (*entity.Course, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, slug)
	}
	return nil, errors.New("not configured")
}

// newRouter wires the handler behind a stub that authenticates every request as actorID.
func newRouter(h *CourseHandler, authenticated bool) *gin.Engine {
	r := gin.New()
	auth := func(c *gin.Context) {
		if authenticated {
			c.Set(jwtmw.ContextUserID, actorID)
		}
		c.Next()
	}
	r.POST("/courses", auth, h.Create)
	r.PUT("/courses", auth, h.Update)
	r.GET("/courses/:slug", h.GetBySlug)
	return r
}

func sampleCourse() *entity.Course {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	return &entity.Course{
		ID:           "course-1",
		Title:        "JavaScript Course",
		Slug:         "javascript-course",
		Description:  "desc",
		Language:     entity.LanguageEnUS,
		Difficulty:   entity.DifficultyBeginner,
		InstructorID: actorID,
		CategoryID:   categoryID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validCreateBody() gin.H {
	return gin.H{
		"title":       "JavaScript Course",
		"description": "desc",
		"difficulty":  "beginner",
		"language":    "en-us",
		"categoryId":  categoryID,
	}
}

// TestCourseHandler_Create はコース作成エンドポイントのステータスマッピングを検証します。
func TestCourseHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           gin.H
		authenticated  bool
		execute        func(ctx context.Context, in usecase.CreateCourseInput) (*entity.Course, error)
		expectedStatus int
	}{
		{
			name:          "success",
			body:          validCreateBody(),
			authenticated: true,
			execute: func(_ context.Context, in usecase.CreateCourseInput) (*entity.Course, error) {
				if in.InstructorID != actorID {
					return nil, fmt.Errorf("unexpected instructor %s", in.InstructorID)
				}
				return sampleCourse(), nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "unauthenticated",
			body:           validCreateBody(),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown difficulty",
			body:           gin.H{"title": "Go", "difficulty": "expert", "language": "en-us", "categoryId": categoryID},
			authenticated:  true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "category id is not a uuid",
			body:           gin.H{"title": "Go", "difficulty": "beginner", "language": "en-us", "categoryId": "42"},
			authenticated:  true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "title without letters or digits",
			body:           gin.H{"title": "?!", "difficulty": "beginner", "language": "en-us", "categoryId": categoryID},
			authenticated:  true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:          "category not found",
			body:          validCreateBody(),
			authenticated: true,
			execute: func(context.Context, usecase.CreateCourseInput) (*entity.Course, error) {
				return nil, fmt.Errorf("%w: category", domainerr.ErrResourceNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:          "inactive instructor",
			body:          validCreateBody(),
			authenticated: true,
			execute: func(context.Context, usecase.CreateCourseInput) (*entity.Course, error) {
				return nil, fmt.Errorf("%w: pending", domainerr.ErrUnauthorized)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:          "duplicated slug",
			body:          validCreateBody(),
			authenticated: true,
			execute: func(context.Context, usecase.CreateCourseInput) (*entity.Course, error) {
				return nil, domainerr.ErrDuplicatedSlug
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:          "unexpected error",
			body:          validCreateBody(),
			authenticated: true,
			execute: func(context.Context, usecase.CreateCourseInput) (*entity.Course, error) {
				return nil, errors.New("db down")
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewCourseHandler(&mockCreator{ExecuteFunc: tt.execute}, &mockUpdater{}, &mockGetter{})
			w := doJSON(newRouter(h, tt.authenticated), http.MethodPost, "/courses", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedStatus == http.StatusInternalServerError {
				assert.NotContains(t, w.Body.String(), "db down")
			}
		})
	}
}

// TestCourseHandler_Create_ResponseBody は作成成功時のレスポンス形式を検証します。
func TestCourseHandler_Create_ResponseBody(t *testing.T) {
	h := NewCourseHandler(&mockCreator{
		ExecuteFunc: func(context.Context, usecase.CreateCourseInput) (*entity.Course, error) { return sampleCourse(), nil },
	}, &mockUpdater{}, &mockGetter{})

	w := doJSON(newRouter(h, true), http.MethodPost, "/courses", validCreateBody())

	require.Equal(t, http.StatusCreated, w.Code)
	var body struct {
		Course map[string]any `json:"course"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "course-1", body.Course["id"])
	assert.Equal(t, "javascript-course", body.Course["slug"])
	assert.Equal(t, "en-us", body.Course["language"])
	assert.Equal(t, categoryID, body.Course["categoryId"])
}

// TestCourseHandler_Update はコース更新エンドポイントを検証します。
func TestCourseHandler_Update(t *testing.T) {
	body := validCreateBody()
	body["courseId"] = courseID

	t.Run("success passes course id and actor", func(t *testing.T) {
		var got usecase.UpdateCourseInput
		h := NewCourseHandler(&mockCreator{}, &mockUpdater{
			ExecuteFunc: func(_ context.Context, in usecase.UpdateCourseInput) (*entity.Course, error) {
				got = in
				return sampleCourse(), nil
			},
		}, &mockGetter{})

		w := doJSON(newRouter(h, true), http.MethodPut, "/courses", body)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, courseID, got.CourseID)
		assert.Equal(t, actorID, got.InstructorID)
		assert.Equal(t, entity.DifficultyBeginner, got.Difficulty)
	})

	t.Run("missing course id", func(t *testing.T) {
		h := NewCourseHandler(&mockCreator{}, &mockUpdater{}, &mockGetter{})

		w := doJSON(newRouter(h, true), http.MethodPut, "/courses", validCreateBody())

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("course id is not a uuid", func(t *testing.T) {
		called := false
		h := NewCourseHandler(&mockCreator{}, &mockUpdater{
			ExecuteFunc: func(context.Context, usecase.UpdateCourseInput) (*entity.Course, error) {
				called = true
				return sampleCourse(), nil
			},
		}, &mockGetter{})
		malformed := validCreateBody()
		malformed["courseId"] = "abc"

		w := doJSON(newRouter(h, true), http.MethodPut, "/courses", malformed)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "courseId")
		assert.False(t, called, "usecase must not run for a malformed course id")
	})

	t.Run("not the owner", func(t *testing.T) {
		h := NewCourseHandler(&mockCreator{}, &mockUpdater{
			ExecuteFunc: func(context.Context, usecase.UpdateCourseInput) (*entity.Course, error) {
				return nil, domainerr.ErrUnauthorized
			},
		}, &mockGetter{})

		w := doJSON(newRouter(h, true), http.MethodPut, "/courses", body)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

// TestCourseHandler_GetBySlug はスラッグによる取得を検証します。
func TestCourseHandler_GetBySlug(t *testing.T) {
	h := NewCourseHandler(&mockCreator{}, &mockUpdater{}, &mockGetter{
		ExecuteFunc: func(_ context.Context, slug string) (*entity.Course, error) {
			if slug == "javascript-course" {
				return sampleCourse(), nil
			}
			return nil, domainerr.ErrResourceNotFound
		},
	})
	r := newRouter(h, false)

	w := doJSON(r, http.MethodGet, "/courses/javascript-course", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/courses/unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
