package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email, id or slug.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when the storage rejects a user because of a unique key.
	ErrEmailAlreadyExists = errors.New("email already exists")
)
