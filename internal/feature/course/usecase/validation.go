package usecase

import (
	"errors"
	"fmt"

	"course_backend/internal/feature/course/domain/entity"
	"course_backend/internal/shared/domainerr"
	"course_backend/internal/shared/slug"
)

// courseSlug はタイトルからコースのスラッグを導出します。
// スラッグ化できる文字を含まないタイトルはバリデーションエラーになります。
func courseSlug(title string) (string, error) {
	s, err := slug.CreateFromText(title)
	if err != nil {
		if errors.Is(err, slug.ErrEmpty) {
			return "", fmt.Errorf("%w: title must contain at least one letter or digit", domainerr.ErrValidation)
		}
		return "", err
	}
	return s.Value(), nil
}

// validateCourseEnums は言語と難易度が既知の値であることを確認します。
func validateCourseEnums(language entity.Language, difficulty entity.Difficulty) error {
	if !language.Valid() {
		return fmt.Errorf("%w: unsupported language %q", domainerr.ErrValidation, language)
	}
	if !difficulty.Valid() {
		return fmt.Errorf("%w: unsupported difficulty %q", domainerr.ErrValidation, difficulty)
	}
	return nil
}
