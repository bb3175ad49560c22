// Package usecase はcourseフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"course_backend/internal/feature/course/domain/entity"
)

// CoursesRepository はコースエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
// 対象が存在しない場合、各Find系メソッドはErrCourseNotFoundを返します。
type CoursesRepository interface {
	// Create は新しいコースを永続化し、ID・タイムスタンプが設定されたコースを返します。
	// スラッグが既に使われている場合、domainerr.ErrDuplicatedSlugを返します。
	Create(ctx context.Context, course *entity.Course) (*entity.Course, error)

	// FindByID はIDでコースを取得します。
	FindByID(ctx context.Context, id string) (*entity.Course, error)

	// FindBySlug はスラッグでコースを取得します。
	FindBySlug(ctx context.Context, slug string) (*entity.Course, error)

	// FindByIDWithInstructor はIDでコースを取得し、所有インストラクターを解決して返します。
	// インストラクターが存在しない場合、Course.Instructorはnilになります。
	FindByIDWithInstructor(ctx context.Context, id string) (*entity.Course, error)

	// UpdateByID はnilでないフィールドのみを更新し、更新後のコースを返します。
	// 新しいスラッグが他のコースで使われている場合、domainerr.ErrDuplicatedSlugを返します。
	UpdateByID(ctx context.Context, id string, update entity.CourseUpdate) (*entity.Course, error)
}

// CategoriesRepository はカテゴリの読み取り専用アクセスを抽象化します。
type CategoriesRepository interface {
	// FindByID はIDでカテゴリを取得します。存在しない場合ErrCategoryNotFoundを返します。
	FindByID(ctx context.Context, id string) (*entity.Category, error)
}

// InstructorsRepository はインストラクターの読み取り専用アクセスを抽象化します。
type InstructorsRepository interface {
	// FindByID は所有ユーザーのIDでインストラクターを取得します。存在しない場合ErrInstructorNotFoundを返します。
	FindByID(ctx context.Context, userID string) (*entity.Instructor, error)
}
