package usecase

import (
	"context"
	"errors"
	"fmt"

	"course_backend/internal/feature/course/domain/entity"
	"course_backend/internal/shared/domainerr"
)

// CourseFinder はスラッグによるコースの読み取りを抽象化します。
// 公開ページ向けの読み取りはキャッシュ付きのリポジトリを渡せます。
type CourseFinder interface {
	FindBySlug(ctx context.Context, slug string) (*entity.Course, error)
}

// GetCourseUsecase はスラッグでコースを取得します。
type GetCourseUsecase struct {
	courses CourseFinder
}

// NewGetCourseUsecase はGetCourseUsecaseの新しいインスタンスを生成します。
func NewGetCourseUsecase(courses CourseFinder) *GetCourseUsecase {
	return &GetCourseUsecase{courses: courses}
}

// Execute はスラッグに一致するコースを返します。存在しない場合domainerr.ErrResourceNotFoundを返します。
func (u *GetCourseUsecase) Execute(ctx context.Context, slug string) (*entity.Course, error) {
	course, err := u.courses.FindBySlug(ctx, slug)
	if err != nil && !errors.Is(err, ErrCourseNotFound) {
		return nil, fmt.Errorf("failed to find course: %w", err)
	}
	if course == nil {
		return nil, fmt.Errorf("%w: course %s", domainerr.ErrResourceNotFound, slug)
	}
	return course, nil
}
