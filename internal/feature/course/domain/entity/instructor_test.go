package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestInstructor_IsActive はactiveステータスのみが認可ゲートを通過することを検証します。
func TestInstructor_IsActive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		instructor *Instructor
		want       bool
	}{
		{"nil instructor", nil, false},
		{"pending", &Instructor{UserID: "u1", Status: InstructorStatusPending}, false},
		{"active", &Instructor{UserID: "u1", Status: InstructorStatusActive}, true},
		{"suspended", &Instructor{UserID: "u1", Status: InstructorStatusSuspended}, false},
		{"banned", &Instructor{UserID: "u1", Status: InstructorStatusBanned}, false},
		{"unknown status", &Instructor{UserID: "u1", Status: "retired"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.instructor.IsActive())
		})
	}
}

// TestInstructor_CanManage は所有者かつactiveの場合のみ管理可能であることを検証します。
func TestInstructor_CanManage(t *testing.T) {
	t.Parallel()

	active := &Instructor{UserID: "owner", Status: InstructorStatusActive}
	pending := &Instructor{UserID: "owner", Status: InstructorStatusPending}
	var missing *Instructor

	assert.True(t, active.CanManage("owner"))
	assert.False(t, active.CanManage("someone-else"))
	assert.False(t, pending.CanManage("owner"))
	assert.False(t, missing.CanManage("owner"))
}

// TestEnums_Valid は列挙型の妥当性判定を検証します。
func TestEnums_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, LanguagePtBR.Valid())
	assert.True(t, LanguageEnUS.Valid())
	assert.True(t, LanguageEsES.Valid())
	assert.False(t, Language("fr-fr").Valid())

	assert.True(t, DifficultyBeginner.Valid())
	assert.True(t, DifficultyIntermediary.Valid())
	assert.True(t, DifficultyAdvanced.Valid())
	assert.False(t, Difficulty("expert").Valid())

	assert.True(t, InstructorStatusBanned.Valid())
	assert.False(t, InstructorStatus("").Valid())
}

// TestCourseUpdate_Apply はnilでないフィールドのみが上書きされることを検証します。
func TestCourseUpdate_Apply(t *testing.T) {
	t.Parallel()

	c := &Course{
		ID:           "c1",
		Title:        "JavaScript Course",
		Slug:         "javascript-course",
		Description:  "old",
		Language:     LanguageEnUS,
		Difficulty:   DifficultyBeginner,
		InstructorID: "owner",
		CategoryID:   "cat-1",
	}

	title := "TypeScript Course"
	slug := "typescript-course"
	diff := DifficultyAdvanced
	CourseUpdate{Title: &title, Slug: &slug, Difficulty: &diff}.Apply(c)

	assert.Equal(t, "TypeScript Course", c.Title)
	assert.Equal(t, "typescript-course", c.Slug)
	assert.Equal(t, DifficultyAdvanced, c.Difficulty)
	assert.Equal(t, "old", c.Description, "description must be untouched")
	assert.Equal(t, LanguageEnUS, c.Language, "language must be untouched")
	assert.Equal(t, "cat-1", c.CategoryID, "category must be untouched")
	assert.Equal(t, "owner", c.InstructorID, "instructor is never changed")
}
