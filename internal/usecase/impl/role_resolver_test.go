package impl

import (
	"context"
	"testing"
	"time"

	"printhub/config"
	"printhub/internal/domain/entity"
	domainerrors "printhub/internal/domain/errors"
	"printhub/internal/domain/repository"
	"printhub/internal/errors"
	mockRepo "printhub/internal/mocks/repository"
	mockUsecase "printhub/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T, cfg *config.Config) (*roleResolver, *mockRepo.MockProfileRepository, *mockUsecase.MockSessionUsecase) {
	t.Helper()

	profileRepo := mockRepo.NewMockProfileRepository(t)
	session := mockUsecase.NewMockSessionUsecase(t)
	resolver := NewRoleResolver(RoleResolverParams{
		ProfileRepo: profileRepo,
		Session:     session,
		Config:      cfg,
		Logger:      newDiscardLogger(),
	}).(*roleResolver)

	return resolver, profileRepo, session
}

func rolePatch(role entity.Role) interface{} {
	return mock.MatchedBy(func(p entity.MetadataPatch) bool {
		return p.Role != nil && *p.Role == role && p.FirstName == nil && p.LastName == nil
	})
}

func TestRoleResolver_NilPrincipal(t *testing.T) {
	resolver, _, _ := newTestResolver(t, newTestConfig(0))

	role, err := resolver.ResolveRole(context.Background(), nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	assert.Equal(t, entity.RoleUnknown, role)
}

func TestRoleResolver_CachedRoleSkipsProfileFetch(t *testing.T) {
	// The profile repository mock has no expectations: any call fails the test.
	resolver, _, _ := newTestResolver(t, newTestConfig(0))
	principal := &entity.Principal{
		ID:       uuid.New(),
		Metadata: entity.UserMetadata{Role: entity.RoleAdmin.Ptr()},
	}

	role, err := resolver.ResolveRole(context.Background(), principal)
	resolver.Wait()

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestRoleResolver_ProfileRoleIsBackfilledOnce(t *testing.T) {
	resolver, profileRepo, session := newTestResolver(t, newTestConfig(0))
	ctx := context.Background()
	userID := uuid.New()
	principal := &entity.Principal{ID: userID}

	profileRepo.EXPECT().FindByID(mock.Anything, userID).
		Return(&entity.Profile{ID: userID, Role: entity.RoleShopkeeper.Ptr()}, nil).Once()
	session.EXPECT().UpdateUserAttributes(mock.Anything, userID, rolePatch(entity.RoleShopkeeper)).
		Return(&entity.UserMetadata{Role: entity.RoleShopkeeper.Ptr()}, nil).Once()

	role, err := resolver.ResolveRole(ctx, principal)
	resolver.Wait()

	require.NoError(t, err)
	assert.Equal(t, entity.RoleShopkeeper, role)
}

func TestRoleResolver_BackfillOutlivesRequestContext(t *testing.T) {
	resolver, profileRepo, session := newTestResolver(t, newTestConfig(0))
	ctx, cancel := context.WithCancel(context.Background())
	userID := uuid.New()

	profileRepo.EXPECT().FindByID(mock.Anything, userID).
		Return(&entity.Profile{ID: userID, Role: entity.RoleUser.Ptr()}, nil)

	var backfillErr error
	var hasDeadline bool
	session.EXPECT().UpdateUserAttributes(mock.Anything, userID, rolePatch(entity.RoleUser)).
		Run(func(ctx context.Context, _ uuid.UUID, _ entity.MetadataPatch) {
			backfillErr = ctx.Err()
			_, hasDeadline = ctx.Deadline()
		}).
		Return(&entity.UserMetadata{}, nil).Once()

	role, err := resolver.ResolveRole(ctx, &entity.Principal{ID: userID})
	cancel()
	resolver.Wait()

	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, role)
	assert.NoError(t, backfillErr)
	assert.True(t, hasDeadline)
}

func TestRoleResolver_BackfillFailureIsNotReturned(t *testing.T) {
	resolver, profileRepo, session := newTestResolver(t, newTestConfig(0))
	userID := uuid.New()

	profileRepo.EXPECT().FindByID(mock.Anything, userID).
		Return(&entity.Profile{ID: userID, Role: entity.RoleAdmin.Ptr()}, nil)
	session.EXPECT().UpdateUserAttributes(mock.Anything, userID, rolePatch(entity.RoleAdmin)).
		Return(nil, errors.New("connection reset")).Once()

	role, err := resolver.ResolveRole(context.Background(), &entity.Principal{ID: userID})
	resolver.Wait()

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestRoleResolver_UnknownOutcomes(t *testing.T) {
	tests := []struct {
		name    string
		profile *entity.Profile
		err     error
	}{
		{name: "no profile row", err: repository.ErrProfileNotFound},
		{name: "profile without role", profile: &entity.Profile{}},
		{name: "profile with unassignable role", profile: &entity.Profile{Role: entity.RoleUnknown.Ptr()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver, profileRepo, _ := newTestResolver(t, newTestConfig(0))
			userID := uuid.New()

			profileRepo.EXPECT().FindByID(mock.Anything, userID).Return(tt.profile, tt.err)

			role, err := resolver.ResolveRole(context.Background(), &entity.Principal{ID: userID})
			resolver.Wait()

			require.NoError(t, err)
			assert.Equal(t, entity.RoleUnknown, role)
		})
	}
}

func TestRoleResolver_FetchErrorIsResolutionFailure(t *testing.T) {
	resolver, profileRepo, _ := newTestResolver(t, newTestConfig(0))
	userID := uuid.New()

	profileRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, errors.New("connection refused"))

	role, err := resolver.ResolveRole(context.Background(), &entity.Principal{ID: userID})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrResolutionFailed))
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, entity.RoleUnknown, role)
}

func TestRoleResolver_ResolveTimeoutBoundsProfileFetch(t *testing.T) {
	cfg := newTestConfig(0)
	cfg.Auth.ResolveTimeout = 50 * time.Millisecond
	resolver, profileRepo, _ := newTestResolver(t, cfg)
	userID := uuid.New()

	var deadline time.Time
	profileRepo.EXPECT().FindByID(mock.Anything, userID).
		Run(func(ctx context.Context, _ uuid.UUID) {
			deadline, _ = ctx.Deadline()
		}).
		Return(nil, repository.ErrProfileNotFound)

	_, err := resolver.ResolveRole(context.Background(), &entity.Principal{ID: userID})

	require.NoError(t, err)
	assert.False(t, deadline.IsZero())
	assert.WithinDuration(t, time.Now(), deadline, time.Second)
}

func TestRoleResolver_CachesProfileRoleForLaterTokens(t *testing.T) {
	resolver, profileRepo, session := newTestResolver(t, newTestConfig(0))
	userID := uuid.New()

	profileRepo.EXPECT().FindByID(mock.Anything, userID).
		Return(&entity.Profile{ID: userID, Role: entity.RoleUser.Ptr()}, nil).Once()
	session.EXPECT().UpdateUserAttributes(mock.Anything, userID, rolePatch(entity.RoleUser)).
		Return(&entity.UserMetadata{Role: entity.RoleUser.Ptr()}, nil).Once()

	first := &entity.Principal{ID: userID}
	role, err := resolver.ResolveRole(context.Background(), first)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, role)
	require.NotNil(t, first.Metadata.Role)
	assert.Equal(t, entity.RoleUser, *first.Metadata.Role)

	role, err = resolver.ResolveRole(context.Background(), &entity.Principal{ID: userID})
	resolver.Wait()

	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, role)
}

func TestRoleResolver_FollowsUserUpdatedChanges(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	events := NewSessionEvents()
	resolver := NewRoleResolver(RoleResolverParams{
		ProfileRepo: profileRepo,
		Session:     mockUsecase.NewMockSessionUsecase(t),
		Events:      events,
		Config:      newTestConfig(0),
		Logger:      newDiscardLogger(),
	})
	userID := uuid.New()

	events.Publish(entity.SessionChange{
		Event:    entity.SessionUserUpdated,
		UserID:   userID,
		Metadata: &entity.UserMetadata{Role: entity.RoleAdmin.Ptr()},
	})
	role, err := resolver.ResolveRole(context.Background(), &entity.Principal{ID: userID})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, role)

	// A change without a role forgets the entry, so the profile is read again.
	events.Publish(entity.SessionChange{Event: entity.SessionUserUpdated, UserID: userID, Metadata: &entity.UserMetadata{}})
	profileRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.Profile{ID: userID}, nil).Once()

	role, err = resolver.ResolveRole(context.Background(), &entity.Principal{ID: userID})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUnknown, role)
}
