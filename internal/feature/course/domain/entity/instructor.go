package entity

import "time"

// InstructorStatus is the lifecycle state gating a user's authority over courses.
// Transitions (pending -> active -> suspended|banned) are administrative.
type InstructorStatus string

const (
	InstructorStatusPending   InstructorStatus = "pending"
	InstructorStatusActive    InstructorStatus = "active"
	InstructorStatusSuspended InstructorStatus = "suspended"
	InstructorStatusBanned    InstructorStatus = "banned"
)

// Valid reports whether s is a known status.
func (s InstructorStatus) Valid() bool {
	switch s {
	case InstructorStatusPending, InstructorStatusActive, InstructorStatusSuspended, InstructorStatusBanned:
		return true
	}
	return false
}

// Instructor is the instructor role of a user, keyed by the owning user's id.
type Instructor struct {
	UserID    string
	Status    InstructorStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the instructor may create or modify courses.
func (i *Instructor) IsActive() bool {
	return i != nil && i.Status == InstructorStatusActive
}

// CanManage reports whether the instructor is active and is the user identified by actorID.
func (i *Instructor) CanManage(actorID string) bool {
	return i.IsActive() && i.UserID == actorID
}
