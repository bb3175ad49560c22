package usecase

import "errors"

// リポジトリが「存在しない」ことを表すために返すエラーです。
// usecaseはこれらをdomainerrの分類に変換してから上位レイヤーへ返します。
var (
	// ErrCourseNotFound is returned when no course matches the lookup.
	ErrCourseNotFound = errors.New("course not found")

	// ErrCategoryNotFound is returned when no category matches the lookup.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInstructorNotFound is returned when the user has no instructor record.
	ErrInstructorNotFound = errors.New("instructor not found")
)
