package repository

import (
	"context"
	"errors"

	"printhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when no profile row exists for a principal.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository persists the profiles table.
type ProfileRepository interface {
	// Create persists a new profile.
	Create(ctx context.Context, profile *entity.Profile) error

	// FindByID retrieves the profile of a principal. It returns ErrProfileNotFound when there is none.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// List returns all profiles, newest first.
	List(ctx context.Context) ([]*entity.Profile, error)

	// UpdateRole sets the role of a profile.
	UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error
}
