// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"printhub/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to create an account.
type SignUpInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	Role        entity.Role // empty means user
	AdminSecret string      // required when Role is admin
}

// SessionCallback receives session changes. It runs on the publishing goroutine.
type SessionCallback func(change entity.SessionChange)

// SessionUsecase is the session provider: it owns credentials, tokens and the
// cached metadata carried by sessions.
type SessionUsecase interface {
	SignUp(ctx context.Context, input SignUpInput) (*entity.Session, error)
	SignInWithCredentials(ctx context.Context, email, password string) (*entity.Session, error)
	Refresh(ctx context.Context, refreshToken string) (*entity.Session, error)
	SignOut(ctx context.Context, refreshToken string) error

	// GetSession validates an access token and returns its session. The principal's
	// metadata is the cached copy from the token and may be stale.
	GetSession(ctx context.Context, accessToken string) (*entity.Session, error)

	// UpdateUserAttributes merges patch into the stored metadata, then notifies subscribers.
	UpdateUserAttributes(ctx context.Context, userID uuid.UUID, patch entity.MetadataPatch) (*entity.UserMetadata, error)

	// OnSessionChange subscribes fn to session changes and returns its unsubscribe function.
	OnSessionChange(fn SessionCallback) (unsubscribe func())
}

// SessionEvents is the process-wide session change feed.
type SessionEvents interface {
	Subscribe(fn SessionCallback) (unsubscribe func())
	Publish(change entity.SessionChange)
}
