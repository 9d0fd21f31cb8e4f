package entity

import (
	"time"

	"github.com/google/uuid"
)

// Principal is the identity carried by an authenticated session.
type Principal struct {
	ID       uuid.UUID    `json:"id"`
	Email    string       `json:"email"`
	Metadata UserMetadata `json:"user_metadata"`
}

// Session is an active authenticated session.
type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
	Principal    Principal `json:"user"`
}

// SessionEvent is the kind of change reported to session subscribers.
type SessionEvent string

const (
	SessionSignedIn       SessionEvent = "SIGNED_IN"
	SessionSignedOut      SessionEvent = "SIGNED_OUT"
	SessionTokenRefreshed SessionEvent = "TOKEN_REFRESHED"
	SessionUserUpdated    SessionEvent = "USER_UPDATED"
)

// SessionChange is delivered to session subscribers. Session is nil for SIGNED_OUT
// and USER_UPDATED. Metadata is the merged metadata of a USER_UPDATED change.
type SessionChange struct {
	Event    SessionEvent
	UserID   uuid.UUID
	Session  *Session
	Metadata *UserMetadata
}
