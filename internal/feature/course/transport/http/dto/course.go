// Package dto はcourseフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import (
	"time"

	"course_backend/internal/feature/course/domain/entity"
)

// CreateCourseReq は POST /courses のリクエストボディです。
// 操作するインストラクターはボディではなく認証済みトークンから決まります。
type CreateCourseReq struct {
	Title       string `json:"title" binding:"required,max=255,sluggable"`
	Description string `json:"description" binding:"max=5000"`
	Difficulty  string `json:"difficulty" binding:"required,oneof=beginner intermediary advanced"`
	Language    string `json:"language" binding:"required,oneof=pt-br en-us es-es"`
	CategoryID  string `json:"categoryId" binding:"required,uuid"`
}

// UpdateCourseReq は PUT /courses のリクエストボディです。
type UpdateCourseReq struct {
	CourseID string `json:"courseId" binding:"required,uuid"`
	CreateCourseReq
}

// CourseRes はコースのレスポンス表現です。
type CourseRes struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	Difficulty   string    `json:"difficulty"`
	Language     string    `json:"language"`
	InstructorID string    `json:"instructorId"`
	CategoryID   string    `json:"categoryId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CourseEnvelope wraps a course as {"course": ...}.
type CourseEnvelope struct {
	Course CourseRes `json:"course"`
}

// FromEntity はエンティティをレスポンスに変換します。
func FromEntity(c *entity.Course) CourseEnvelope {
	return CourseEnvelope{Course: CourseRes{
		ID:           c.ID,
		Title:        c.Title,
		Slug:         c.Slug,
		Description:  c.Description,
		Difficulty:   string(c.Difficulty),
		Language:     string(c.Language),
		InstructorID: c.InstructorID,
		CategoryID:   c.CategoryID,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}}
}
