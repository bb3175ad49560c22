// Package adapters はcourseフィーチャーのGORMリポジトリ実装を提供します。
package adapters

import (
	"time"

	"course_backend/internal/feature/course/domain/entity"
)

// CourseModel is the GORM model for the courses table.
type CourseModel struct {
	ID           string `gorm:"primaryKey;size:36"`
	Title        string `gorm:"size:255;not null"`
	Slug         string `gorm:"size:255;not null;uniqueIndex:idx_courses_slug"`
	Description  string `gorm:"type:text;not null"`
	Language     string `gorm:"size:16;not null"`
	Difficulty   string `gorm:"size:16;not null"`
	InstructorID string `gorm:"size:36;not null;index"`
	CategoryID   string `gorm:"size:36;not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM.
func (CourseModel) TableName() string {
	return "courses"
}

// ToEntity converts the GORM model to a domain entity.
func (m *CourseModel) ToEntity() *entity.Course {
	return &entity.Course{
		ID:           m.ID,
		Title:        m.Title,
		Slug:         m.Slug,
		Description:  m.Description,
		Language:     entity.Language(m.Language),
		Difficulty:   entity.Difficulty(m.Difficulty),
		InstructorID: m.InstructorID,
		CategoryID:   m.CategoryID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// CourseModelFromEntity converts a domain entity to a GORM model.
func CourseModelFromEntity(c *entity.Course) *CourseModel {
	return &CourseModel{
		ID:           c.ID,
		Title:        c.Title,
		Slug:         c.Slug,
		Description:  c.Description,
		Language:     string(c.Language),
		Difficulty:   string(c.Difficulty),
		InstructorID: c.InstructorID,
		CategoryID:   c.CategoryID,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// CategoryModel is the GORM model for the categories table.
type CategoryModel struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"size:100;not null;uniqueIndex:idx_categories_name"`
	Slug      string `gorm:"size:120;not null;uniqueIndex:idx_categories_slug"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts the GORM model to a domain entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:        m.ID,
		Name:      m.Name,
		Slug:      m.Slug,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// InstructorModel is the GORM model for the instructors table.
type InstructorModel struct {
	UserID    string `gorm:"primaryKey;size:36"`
	Status    string `gorm:"size:16;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM.
func (InstructorModel) TableName() string {
	return "instructors"
}

// ToEntity converts the GORM model to a domain entity.
func (m *InstructorModel) ToEntity() *entity.Instructor {
	return &entity.Instructor{
		UserID:    m.UserID,
		Status:    entity.InstructorStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
