// Package domainerr defines the closed set of failure kinds raised by use cases.
// The transport layer maps each kind to a response; anything else is an internal error.
package domainerr

import "errors"

var (
	// ErrResourceNotFound indicates that a referenced entity (course, category, user) does not exist.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrUnauthorized indicates that the actor lacks the status or ownership required for the operation.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrDuplicatedSlug indicates that another course already occupies the target slug.
	ErrDuplicatedSlug = errors.New("slug already in use")

	// ErrInvalidCredentials is returned when email or password do not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserAlreadyExists is returned when registering an email that is already taken.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrInvalidTypeFile is returned when an uploaded file has an unsupported content type.
	ErrInvalidTypeFile = errors.New("invalid file type")

	// ErrValidation represents input that passed transport validation but violates a domain rule.
	ErrValidation = errors.New("validation error")
)

var kinds = []error{
	ErrResourceNotFound,
	ErrUnauthorized,
	ErrDuplicatedSlug,
	ErrInvalidCredentials,
	ErrUserAlreadyExists,
	ErrInvalidTypeFile,
	ErrValidation,
}

// Kind returns the taxonomy sentinel that err wraps, or nil when err is not a domain error.
func Kind(err error) error {
	if err == nil {
		return nil
	}
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
