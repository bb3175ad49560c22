package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"course_backend/internal/feature/course/adapters/memory"
	"course_backend/internal/feature/course/domain/entity"
	"course_backend/internal/feature/course/usecase"
)

const (
	ownerID    = "0d8f1f4a-5b6e-4c1d-8a3b-00000000000a"
	strangerID = "0d8f1f4a-5b6e-4c1d-8a3b-00000000000b"
)

// fixture wires the use cases to in-memory repositories seeded with
// one active instructor and one category.
type fixture struct {
	courses     *memory.CourseRepository
	categories  *memory.CategoryRepository
	instructors *memory.InstructorRepository
	category    *entity.Category

	create *usecase.CreateCourseUsecase
	update *usecase.UpdateCourseUsecase
	get    *usecase.GetCourseUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	instructors := memory.NewInstructorRepository()
	categories := memory.NewCategoryRepository()
	courses := memory.NewCourseRepository(instructors)

	_, err := instructors.SetStatus(ctx, ownerID, entity.InstructorStatusActive)
	require.NoError(t, err)
	category, err := categories.Upsert(ctx, "Programming", "programming")
	require.NoError(t, err)

	return &fixture{
		courses:     courses,
		categories:  categories,
		instructors: instructors,
		category:    category,
		create:      usecase.NewCreateCourseUsecase(courses, categories, instructors),
		update:      usecase.NewUpdateCourseUsecase(courses, categories),
		get:         usecase.NewGetCourseUsecase(courses),
	}
}

func (f *fixture) createInput(title string) usecase.CreateCourseInput {
	return usecase.CreateCourseInput{
		InstructorID: ownerID,
		CategoryID:   f.category.ID,
		Title:        title,
		Description:  "A hands-on course",
		Language:     entity.LanguageEnUS,
		Difficulty:   entity.DifficultyBeginner,
	}
}

func (f *fixture) updateInput(courseID, title string) usecase.UpdateCourseInput {
	return usecase.UpdateCourseInput{
		CourseID:     courseID,
		InstructorID: ownerID,
		CategoryID:   f.category.ID,
		Title:        title,
		Description:  "Updated description",
		Language:     entity.LanguagePtBR,
		Difficulty:   entity.DifficultyAdvanced,
	}
}

// mustCreate creates a course owned by the active instructor.
func (f *fixture) mustCreate(t *testing.T, title string) *entity.Course {
	t.Helper()
	course, err := f.create.Execute(context.Background(), f.createInput(title))
	require.NoError(t, err)
	return course
}

// mockCoursesRepository is a func-field mock of usecase.CoursesRepository.
// Unset funcs behave like an empty repository.
type mockCoursesRepository struct {
	CreateFunc                 func(ctx context.Context, course *entity.Course) (*entity.Course, error)
	FindByIDFunc               func(ctx context.Context, id string) (*entity.Course, error)
	FindBySlugFunc             func(ctx context.Context, slug string) (*entity.Course, error)
	FindByIDWithInstructorFunc func(ctx context.Context, id string) (*entity.Course, error)
	UpdateByIDFunc             func(ctx context.Context, id string, update entity.CourseUpdate) (*entity.Course, error)
}

func (m *mockCoursesRepository) Create(ctx context.Context, course *entity.Course) (*entity.Course, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, course)
	}
	out := *course
	out.ID = "generated"
	return &out, nil
}

func (m *mockCoursesRepository) FindByID(ctx context.Context, id string) (*entity.Course, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, usecase.ErrCourseNotFound
}

func (m *mockCoursesRepository) FindBySlug(ctx context.Context, slug string) (*entity.Course, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	return nil, usecase.ErrCourseNotFound
}

func (m *mockCoursesRepository) FindByIDWithInstructor(ctx context.Context, id string) (*entity.Course, error) {
	if m.FindByIDWithInstructorFunc != nil {
		return m.FindByIDWithInstructorFunc(ctx, id)
	}
	return nil, usecase.ErrCourseNotFound
}

func (m *mockCoursesRepository) UpdateByID(ctx context.Context, id string, update entity.CourseUpdate) (*entity.Course, error) {
	if m.UpdateByIDFunc != nil {
		return m.UpdateByIDFunc(ctx, id, update)
	}
	return nil, usecase.ErrCourseNotFound
}

// categoriesFunc adapts a function to usecase.CategoriesRepository.
type categoriesFunc func(ctx context.Context, id string) (*entity.Category, error)

func (f categoriesFunc) FindByID(ctx context.Context, id string) (*entity.Category, error) {
	return f(ctx, id)
}

// instructorsFunc adapts a function to usecase.InstructorsRepository.
type instructorsFunc func(ctx context.Context, userID string) (*entity.Instructor, error)

func (f instructorsFunc) FindByID(ctx context.Context, userID string) (*entity.Instructor, error) {
	return f(ctx, userID)
}
