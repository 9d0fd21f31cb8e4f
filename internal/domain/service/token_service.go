package service

import (
	"time"

	"printhub/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID   uuid.UUID            `json:"uid"`
	Email    string               `json:"email,omitempty"`
	Metadata *entity.UserMetadata `json:"user_metadata,omitempty"` // access tokens only
	Type     string               `json:"type"`
	jwt.RegisteredClaims
}

// Principal returns the identity carried by an access token.
func (c *Claims) Principal() *entity.Principal {
	p := &entity.Principal{ID: c.UserID, Email: c.Email}
	if c.Metadata != nil {
		p.Metadata = *c.Metadata
	}

	return p
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a principal.
	// The access token embeds the principal's cached metadata.
	GenerateTokens(principal entity.Principal) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks a refresh token and returns its claims.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// GetAccessTokenDuration returns the configured duration for access tokens.
	GetAccessTokenDuration() time.Duration

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
