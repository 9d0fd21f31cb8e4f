package repository

import (
	"context"
	"time"

	"printhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRefreshTokenNotFound is returned when no stored session matches a refresh token hash.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository stores one row per signed-in session, keyed by the refresh token hash.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByHash returns the session even when it has expired; callers check ExpiresAt.
	FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteByHash ends a session. It returns ErrRefreshTokenNotFound when nothing matched.
	DeleteByHash(ctx context.Context, tokenHash string) error

	// CountActive counts the user's sessions still valid at now.
	CountActive(ctx context.Context, userID uuid.UUID, now time.Time) (int, error)

	// DeleteExpired removes the user's sessions that expired before now and reports how many.
	DeleteExpired(ctx context.Context, userID uuid.UUID, now time.Time) (int64, error)
}
