// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"printhub/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrAuthUserNotFound is returned when no credential record matches.
	ErrAuthUserNotFound = errors.New("auth user not found")
	// ErrAuthUserEmailExists is returned when the email is already registered.
	ErrAuthUserEmailExists = errors.New("auth user email already exists")
)

// AuthUserRepository persists the session provider's credential records.
type AuthUserRepository interface {
	// Create persists a new auth user.
	Create(ctx context.Context, user *entity.AuthUser) error

	// FindByID retrieves an auth user by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AuthUser, error)

	// FindByEmail retrieves an auth user by email, case-insensitively.
	FindByEmail(ctx context.Context, email string) (*entity.AuthUser, error)

	// MergeMetadata applies patch onto the stored metadata and returns the result.
	// Applying the same patch twice leaves the same result.
	MergeMetadata(ctx context.Context, id uuid.UUID, patch entity.MetadataPatch) (*entity.UserMetadata, error)
}
