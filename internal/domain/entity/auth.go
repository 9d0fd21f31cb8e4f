// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserMetadata is the cached attribute set attached to a session.
// It is written at sign-up and by attribute updates, and may lag behind the profile.
type UserMetadata struct {
	Role      *Role  `json:"role,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// MetadataPatch is a partial update of UserMetadata. Nil fields are left untouched.
type MetadataPatch struct {
	Role      *Role
	FirstName *string
	LastName  *string
}

// IsEmpty reports whether the patch changes nothing.
func (p MetadataPatch) IsEmpty() bool {
	return p.Role == nil && p.FirstName == nil && p.LastName == nil
}

// Merge returns a copy of m with the non-nil fields of p applied.
func (m UserMetadata) Merge(p MetadataPatch) UserMetadata {
	merged := m
	if p.Role != nil {
		merged.Role = p.Role.Ptr()
	}
	if p.FirstName != nil {
		merged.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		merged.LastName = *p.LastName
	}

	return merged
}

// AuthUser is the credential record of the session provider.
type AuthUser struct {
	ID           uuid.UUID    // Same value as the principal and profile ID.
	Email        string       // Login identifier, stored lower-cased.
	PasswordHash string       // bcrypt hash of the password.
	Metadata     UserMetadata // Cached attributes embedded in access tokens.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshToken represents a long-lived, authorized user session.
// It is used to obtain a new Access Token after the old one expires, without requiring credentials.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this specific refresh token record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // Stores a SHA-256 hash of the raw refresh token for secure comparison in the database.
	ExpiresAt time.Time // The exact time when this refresh token will expire and become invalid.
	CreatedAt time.Time // Timestamp of when this session was created (i.e., when the user logged in).
}
