package usecase

import (
	"context"
	"errors"
	"fmt"

	"course_backend/internal/feature/course/domain/entity"
	"course_backend/internal/shared/domainerr"
)

// CreateCourseInput はコース作成の入力です。InstructorIDは認証済みユーザーのIDです。
type CreateCourseInput struct {
	InstructorID string
	CategoryID   string
	Title        string
	Description  string
	Language     entity.Language
	Difficulty   entity.Difficulty
}

// CreateCourseUsecase はインストラクターの認可・カテゴリの存在・スラッグの一意性を確認してコースを作成します。
type CreateCourseUsecase struct {
	courses     CoursesRepository
	categories  CategoriesRepository
	instructors InstructorsRepository
}

// NewCreateCourseUsecase はCreateCourseUsecaseの新しいインスタンスを生成します。
func NewCreateCourseUsecase(courses CoursesRepository, categories CategoriesRepository, instructors InstructorsRepository) *CreateCourseUsecase {
	return &CreateCourseUsecase{
		courses:     courses,
		categories:  categories,
		instructors: instructors,
	}
}

// Execute はコースを作成します。
// チェックは以下の順序で行い、最初に失敗したものがエラーになります。
//  1. カテゴリが存在しない → domainerr.ErrResourceNotFound
//  2. インストラクターが存在しない、またはactiveでない → domainerr.ErrUnauthorized
//  3. タイトルから導出したスラッグが使用済み → domainerr.ErrDuplicatedSlug
//
// 失敗時は何も永続化しません。
func (u *CreateCourseUsecase) Execute(ctx context.Context, in CreateCourseInput) (*entity.Course, error) {
	if err := validateCourseEnums(in.Language, in.Difficulty); err != nil {
		return nil, err
	}

	// インストラクターとカテゴリは両方取得してから判定する
	instructor, err := u.instructors.FindByID(ctx, in.InstructorID)
	if err != nil && !errors.Is(err, ErrInstructorNotFound) {
		return nil, fmt.Errorf("failed to find instructor: %w", err)
	}
	category, err := u.categories.FindByID(ctx, in.CategoryID)
	if err != nil && !errors.Is(err, ErrCategoryNotFound) {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	if category == nil {
		return nil, fmt.Errorf("%w: category %s", domainerr.ErrResourceNotFound, in.CategoryID)
	}
	if instructor == nil {
		return nil, fmt.Errorf("%w: user is not an instructor", domainerr.ErrUnauthorized)
	}
	if !instructor.IsActive() {
		return nil, fmt.Errorf("%w: instructor status is %s", domainerr.ErrUnauthorized, instructor.Status)
	}

	slug, err := courseSlug(in.Title)
	if err != nil {
		return nil, err
	}

	existing, err := u.courses.FindBySlug(ctx, slug)
	if err != nil && !errors.Is(err, ErrCourseNotFound) {
		return nil, fmt.Errorf("failed to find course by slug: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", domainerr.ErrDuplicatedSlug, slug)
	}

	course := &entity.Course{
		Title:        in.Title,
		Slug:         slug,
		Description:  in.Description,
		Language:     in.Language,
		Difficulty:   in.Difficulty,
		InstructorID: instructor.UserID,
		CategoryID:   category.ID,
	}
	return u.courses.Create(ctx, course)
}
