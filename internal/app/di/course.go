// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	courseadapters "course_backend/internal/feature/course/adapters"
	coursehandler "course_backend/internal/feature/course/transport/handler"
	courseusecase "course_backend/internal/feature/course/usecase"
	"course_backend/internal/platform/cache"
)

// CourseCacheTTL is how long a course-by-slug lookup stays in Redis.
const CourseCacheTTL = 10 * time.Minute

// NewCourseHandler wires the course feature on top of Postgres.
// If rdb is nil, slug lookups go straight to the database.
func NewCourseHandler(db *gorm.DB, rdb *redis.Client) *coursehandler.CourseHandler {
	instructors := courseadapters.NewInstructorGorm(db)
	categories := courseadapters.NewCategoryGorm(db)
	courses := cache.NewCachingCourseRepository(rdb, CourseCacheTTL, courseadapters.NewCourseGorm(db), "courses")

	return coursehandler.NewCourseHandler(
		courseusecase.NewCreateCourseUsecase(courses, categories, instructors),
		courseusecase.NewUpdateCourseUsecase(courses, categories),
		courseusecase.NewGetCourseUsecase(courses),
	)
}
