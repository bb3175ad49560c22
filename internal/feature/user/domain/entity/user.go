// Package entity defines the domain entities for the user feature.
package entity

import "time"

// User represents a registered user.
type User struct {
	ID        string
	FirstName string
	LastName  string

	// Email is unique across all users and is used for authentication.
	Email string

	// PasswordHash is the bcrypt hash. Plaintext passwords are never stored.
	PasswordHash string

	// Slug is the public handle used in profile URLs. Unique.
	Slug string

	// Phone is optional and empty when not provided.
	Phone      string
	Occupation string
	Biography  string
	AvatarURL  string
	CoverURL   string

	// HasTwoFactorAuthentication is false for newly registered users.
	HasTwoFactorAuthentication bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Profile is the public view of a user.
type Profile struct {
	FirstName  string
	LastName   string
	Slug       string
	Occupation string
	Biography  string
	AvatarURL  string
	CoverURL   string
	CreatedAt  time.Time
}

// Profile returns the public fields of u.
func (u *User) Profile() *Profile {
	return &Profile{
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Slug:       u.Slug,
		Occupation: u.Occupation,
		Biography:  u.Biography,
		AvatarURL:  u.AvatarURL,
		CoverURL:   u.CoverURL,
		CreatedAt:  u.CreatedAt,
	}
}

// UserUpdate lists the profile fields that may change after registration. Nil fields are left untouched.
type UserUpdate struct {
	Biography *string
	AvatarURL *string
	CoverURL  *string
}

// Apply copies every non-nil field of p onto u.
func (p UserUpdate) Apply(u *User) {
	if p.Biography != nil {
		u.Biography = *p.Biography
	}
	if p.AvatarURL != nil {
		u.AvatarURL = *p.AvatarURL
	}
	if p.CoverURL != nil {
		u.CoverURL = *p.CoverURL
	}
}
