// Package entity defines the domain entities for the course feature.
package entity

import "time"

// Language is the language a course is taught in.
type Language string

const (
	LanguagePtBR Language = "pt-br"
	LanguageEnUS Language = "en-us"
	LanguageEsES Language = "es-es"
)

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	switch l {
	case LanguagePtBR, LanguageEnUS, LanguageEsES:
		return true
	}
	return false
}

// Difficulty is the expected level of a course's audience.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediary Difficulty = "intermediary"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Valid reports whether d is one of the supported difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediary, DifficultyAdvanced:
		return true
	}
	return false
}

// Course is the aggregate published by an instructor under a category.
// Slug is always derived from Title and is unique across all courses.
type Course struct {
	ID           string
	Title        string
	Slug         string
	Description  string
	Language     Language
	Difficulty   Difficulty
	InstructorID string
	CategoryID   string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Instructor is populated only by lookups that resolve the owning instructor.
	Instructor *Instructor `json:",omitempty"`
}

// CourseUpdate lists the fields a course update may change. Nil fields are left untouched.
// The owning instructor is deliberately absent.
type CourseUpdate struct {
	Title       *string
	Slug        *string
	Description *string
	Language    *Language
	Difficulty  *Difficulty
	CategoryID  *string
}

// Apply copies every non-nil field of u onto c.
func (u CourseUpdate) Apply(c *Course) {
	if u.Title != nil {
		c.Title = *u.Title
	}
	if u.Slug != nil {
		c.Slug = *u.Slug
	}
	if u.Description != nil {
		c.Description = *u.Description
	}
	if u.Language != nil {
		c.Language = *u.Language
	}
	if u.Difficulty != nil {
		c.Difficulty = *u.Difficulty
	}
	if u.CategoryID != nil {
		c.CategoryID = *u.CategoryID
	}
}
