package usecase

import (
	"context"
	"errors"
	"fmt"

	"course_backend/internal/feature/course/domain/entity"
	"course_backend/internal/shared/domainerr"
)

// UpdateCourseInput はコース更新の入力です。InstructorIDは操作を行う認証済みユーザーのIDです。
type UpdateCourseInput struct {
	CourseID     string
	InstructorID string
	CategoryID   string
	Title        string
	Description  string
	Language     entity.Language
	Difficulty   entity.Difficulty
}

// UpdateCourseUsecase は所有者チェック・カテゴリの再検証・自分以外とのスラッグ重複チェックを行ってコースを更新します。
type UpdateCourseUsecase struct {
	courses    CoursesRepository
	categories CategoriesRepository
}

// NewUpdateCourseUsecase はUpdateCourseUsecaseの新しいインスタンスを生成します。
func NewUpdateCourseUsecase(courses CoursesRepository, categories CategoriesRepository) *UpdateCourseUsecase {
	return &UpdateCourseUsecase{
		courses:    courses,
		categories: categories,
	}
}

// Execute はコースを更新します。
// チェックの順序:
//  1. コースが存在しない → domainerr.ErrResourceNotFound
//  2. 所有インストラクターが存在しない・操作者と異なる・activeでない → domainerr.ErrUnauthorized
//  3. カテゴリが存在しない → domainerr.ErrResourceNotFound
//  4. 新しいスラッグが他のコースで使用済み → domainerr.ErrDuplicatedSlug
//
// 自分自身の現在のスラッグへの更新は許可されます。インストラクターは変更しません。
func (u *UpdateCourseUsecase) Execute(ctx context.Context, in UpdateCourseInput) (*entity.Course, error) {
	if err := validateCourseEnums(in.Language, in.Difficulty); err != nil {
		return nil, err
	}

	course, err := u.courses.FindByIDWithInstructor(ctx, in.CourseID)
	if err != nil && !errors.Is(err, ErrCourseNotFound) {
		return nil, fmt.Errorf("failed to find course: %w", err)
	}
	if course == nil {
		return nil, fmt.Errorf("%w: course %s", domainerr.ErrResourceNotFound, in.CourseID)
	}

	if !course.Instructor.CanManage(in.InstructorID) {
		return nil, fmt.Errorf("%w: not allowed to manage course %s", domainerr.ErrUnauthorized, course.ID)
	}

	category, err := u.categories.FindByID(ctx, in.CategoryID)
	if err != nil && !errors.Is(err, ErrCategoryNotFound) {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if category == nil {
		return nil, fmt.Errorf("%w: category %s", domainerr.ErrResourceNotFound, in.CategoryID)
	}

	slug, err := courseSlug(in.Title)
	if err != nil {
		return nil, err
	}

	existing, err := u.courses.FindBySlug(ctx, slug)
	if err != nil && !errors.Is(err, ErrCourseNotFound) {
		return nil, fmt.Errorf("failed to find course by slug: %w", err)
	}
	if existing != nil && existing.ID != course.ID {
		return nil, fmt.Errorf("%w: %s", domainerr.ErrDuplicatedSlug, slug)
	}

	title, description := in.Title, in.Description
	language, difficulty := in.Language, in.Difficulty
	categoryID := category.ID
	return u.courses.UpdateByID(ctx, course.ID, entity.CourseUpdate{
		Title:       &title,
		Slug:        &slug,
		Description: &description,
		Language:    &language,
		Difficulty:  &difficulty,
		CategoryID:  &categoryID,
	})
}
