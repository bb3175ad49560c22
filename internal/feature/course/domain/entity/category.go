package entity

import "time"

// Category groups courses. Course use cases only read categories.
type Category struct {
	ID        string
	Name      string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
