package auth

import (
	"testing"
	"time"

	"printhub/config"
	"printhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"
	cfg.Auth = &config.AuthConfig{AccessTTL: 5 * time.Minute, RefreshTTL: time.Hour}

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	principal := entity.Principal{
		ID:    uuid.New(),
		Email: "ada@example.com",
		Metadata: entity.UserMetadata{
			Role:      entity.RoleShopkeeper.Ptr(),
			FirstName: "Ada",
		},
	}

	accessToken, refreshToken, err := jwtService.GenerateTokens(principal)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	// Validate access token
	accessClaims, err := jwtService.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, principal.ID, accessClaims.UserID)
	assert.Equal(t, "access", accessClaims.Type)
	assert.Equal(t, &principal, accessClaims.Principal())

	// Validate refresh token
	refreshClaims, err := jwtService.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, principal.ID, refreshClaims.UserID)
	assert.Nil(t, refreshClaims.Metadata) // Refresh tokens don't carry metadata
	assert.Equal(t, "refresh", refreshClaims.Type)
}

func TestJWTService_TokenTypesAreNotInterchangeable(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	accessToken, refreshToken, err := jwtService.GenerateTokens(entity.Principal{ID: uuid.New()})
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken(refreshToken)
	assert.Error(t, err)

	_, err = jwtService.ValidateRefreshToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	// Test invalid token - using clearly non-JWT format
	claims, err := jwtService.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return time.Now().Add(-time.Hour) }
	accessToken, _, err := impl.GenerateTokens(entity.Principal{ID: uuid.New()})
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.ValidateAccessToken(accessToken)
	assert.Error(t, err)
}

func TestNewJWTService_MissingSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_DefaultDurations(t *testing.T) {
	cfg := newTestConfig()
	cfg.Auth = nil

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, svc.GetAccessTokenDuration())
	assert.Equal(t, 7*24*time.Hour, svc.GetRefreshTokenDuration())
}
