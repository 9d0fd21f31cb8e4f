package impl

import (
	"context"
	"testing"

	"printhub/internal/domain/entity"
	domainerrors "printhub/internal/domain/errors"
	"printhub/internal/errors"
	mockUsecase "printhub/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestGuard(t *testing.T, unknownRoleIsUser bool) (*routeGuard, *mockUsecase.MockRoleResolver) {
	t.Helper()

	cfg := newTestConfig(0)
	cfg.Auth.UnknownRoleIsUser = unknownRoleIsUser
	resolver := mockUsecase.NewMockRoleResolver(t)
	guard := NewRouteGuard(RouteGuardParams{Resolver: resolver, Config: cfg, Logger: newDiscardLogger()}).(*routeGuard)

	return guard, resolver
}

func TestRouteGuard_Decide(t *testing.T) {
	tests := []struct {
		name              string
		required          *entity.Role
		resolved          entity.Role
		unknownRoleIsUser bool
		wantState         entity.GuardState
		wantRedirect      string
		wantNotice        bool
	}{
		{name: "matching admin", required: entity.RoleAdmin.Ptr(), resolved: entity.RoleAdmin, wantState: entity.GuardAuthorized},
		{name: "matching shopkeeper", required: entity.RoleShopkeeper.Ptr(), resolved: entity.RoleShopkeeper, wantState: entity.GuardAuthorized},
		{name: "matching user", required: entity.RoleUser.Ptr(), resolved: entity.RoleUser, wantState: entity.GuardAuthorized},
		{
			name: "shopkeeper on admin route", required: entity.RoleAdmin.Ptr(), resolved: entity.RoleShopkeeper,
			wantState: entity.GuardDenied, wantRedirect: entity.RouteShopDashboard, wantNotice: true,
		},
		{
			name: "user on shopkeeper route", required: entity.RoleShopkeeper.Ptr(), resolved: entity.RoleUser,
			wantState: entity.GuardDenied, wantRedirect: entity.RouteUserDashboard, wantNotice: true,
		},
		{
			name: "admin on user route", required: entity.RoleUser.Ptr(), resolved: entity.RoleAdmin,
			wantState: entity.GuardDenied, wantRedirect: entity.RouteAdminDashboard, wantNotice: true,
		},
		{
			name: "unknown on user route with leniency", required: entity.RoleUser.Ptr(), resolved: entity.RoleUnknown,
			unknownRoleIsUser: true, wantState: entity.GuardAuthorized,
		},
		{
			name: "unknown on user route without leniency", required: entity.RoleUser.Ptr(), resolved: entity.RoleUnknown,
			wantState: entity.GuardDenied, wantRedirect: entity.RouteHome, wantNotice: true,
		},
		{
			name: "unknown on admin route", required: entity.RoleAdmin.Ptr(), resolved: entity.RoleUnknown,
			unknownRoleIsUser: true, wantState: entity.GuardDenied, wantRedirect: entity.RouteUserDashboard, wantNotice: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard, resolver := newTestGuard(t, tt.unknownRoleIsUser)
			principal := &entity.Principal{ID: uuid.New()}

			resolver.EXPECT().ResolveRole(mock.Anything, principal).Return(tt.resolved, nil).Once()

			decision := guard.Decide(context.Background(), principal, tt.required)

			assert.Equal(t, tt.wantState, decision.State)
			assert.Equal(t, tt.wantRedirect, decision.Redirect)
			assert.Equal(t, tt.resolved, decision.Role)
			if tt.wantNotice {
				require.NotNil(t, decision.Notice)
				assert.Equal(t, "Access Denied", decision.Notice.Title)
				assert.Contains(t, decision.Notice.Description, string(*tt.required))
				assert.Equal(t, entity.NoticeDestructive, decision.Notice.Kind)
			} else {
				assert.Nil(t, decision.Notice)
			}
		})
	}
}

func TestRouteGuard_Decide_NoPrincipal(t *testing.T) {
	guard, _ := newTestGuard(t, true)

	decision := guard.Decide(context.Background(), nil, entity.RoleUser.Ptr())

	assert.Equal(t, entity.GuardDenied, decision.State)
	assert.Equal(t, entity.RouteLogin, decision.Redirect)
	assert.Nil(t, decision.Notice)
}

func TestRouteGuard_Decide_NoRequiredRole(t *testing.T) {
	// No resolver expectations: any resolution fails the test.
	guard, _ := newTestGuard(t, true)

	decision := guard.Decide(context.Background(), &entity.Principal{ID: uuid.New()}, nil)
	assert.True(t, decision.Authorized())
	assert.Equal(t, entity.RoleUnknown, decision.Role)

	cached := &entity.Principal{ID: uuid.New(), Metadata: entity.UserMetadata{Role: entity.RoleAdmin.Ptr()}}
	decision = guard.Decide(context.Background(), cached, nil)
	assert.True(t, decision.Authorized())
	assert.Equal(t, entity.RoleAdmin, decision.Role)
}

func TestRouteGuard_ProfileFetchedOnceAcrossRequests(t *testing.T) {
	resolver, profileRepo, session := newTestResolver(t, newTestConfig(0))
	guard := NewRouteGuard(RouteGuardParams{Resolver: resolver, Config: newTestConfig(0), Logger: newDiscardLogger()})
	ctx := context.Background()
	userID := uuid.New()

	fetches, backfills := 0, 0
	profileRepo.EXPECT().FindByID(mock.Anything, userID).
		Run(func(context.Context, uuid.UUID) { fetches++ }).
		Return(&entity.Profile{ID: userID, Role: entity.RoleShopkeeper.Ptr()}, nil).Once()
	session.EXPECT().UpdateUserAttributes(mock.Anything, userID, rolePatch(entity.RoleShopkeeper)).
		Run(func(context.Context, uuid.UUID, entity.MetadataPatch) { backfills++ }).
		Return(&entity.UserMetadata{Role: entity.RoleShopkeeper.Ptr()}, nil).Once()

	// One /navbar request: optional session check, then the links.
	principal := &entity.Principal{ID: userID}
	assert.True(t, guard.Decide(ctx, principal, nil).Authorized())
	assert.Equal(t, entity.NavLinksFor(true, entity.RoleShopkeeper), guard.NavLinks(ctx, principal))
	resolver.Wait()

	// A later request presenting the same role-less token.
	again := &entity.Principal{ID: userID}
	decision := guard.Decide(ctx, again, entity.RoleShopkeeper.Ptr())
	resolver.Wait()

	assert.True(t, decision.Authorized())
	assert.Equal(t, 1, fetches)
	assert.Equal(t, 1, backfills)
}

func TestRouteGuard_Decide_ResolutionError(t *testing.T) {
	guard, resolver := newTestGuard(t, true)
	principal := &entity.Principal{ID: uuid.New()}

	resolver.EXPECT().ResolveRole(mock.Anything, principal).
		Return(entity.RoleUnknown, errors.Wrap(domainerrors.ErrResolutionFailed, "timeout"))

	decision := guard.Decide(context.Background(), principal, entity.RoleAdmin.Ptr())

	assert.Equal(t, entity.GuardDenied, decision.State)
	assert.Equal(t, entity.RouteLogin, decision.Redirect)
	require.NotNil(t, decision.Notice)
	assert.Equal(t, "Authentication Error", decision.Notice.Title)
}

func TestRouteGuard_LandingRoute(t *testing.T) {
	tests := []struct {
		name     string
		resolved entity.Role
		err      error
		want     string
	}{
		{name: "admin", resolved: entity.RoleAdmin, want: entity.RouteAdminDashboard},
		{name: "shopkeeper", resolved: entity.RoleShopkeeper, want: entity.RouteShopDashboard},
		{name: "user", resolved: entity.RoleUser, want: entity.RouteUserDashboard},
		{name: "unknown", resolved: entity.RoleUnknown, want: entity.RouteUserDashboard},
		{name: "resolution failure", resolved: entity.RoleUnknown, err: domainerrors.ErrResolutionFailed, want: entity.RouteLogin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard, resolver := newTestGuard(t, true)
			principal := &entity.Principal{ID: uuid.New()}

			resolver.EXPECT().ResolveRole(mock.Anything, principal).Return(tt.resolved, tt.err)

			assert.Equal(t, tt.want, guard.LandingRoute(context.Background(), principal))
		})
	}
}

func TestRouteGuard_LandingRoute_NoPrincipal(t *testing.T) {
	guard, _ := newTestGuard(t, true)

	assert.Equal(t, entity.RouteLogin, guard.LandingRoute(context.Background(), nil))
}

func TestRouteGuard_NavLinks(t *testing.T) {
	guard, resolver := newTestGuard(t, true)
	principal := &entity.Principal{ID: uuid.New()}

	resolver.EXPECT().ResolveRole(mock.Anything, principal).Return(entity.RoleShopkeeper, nil)

	assert.Equal(t, entity.NavLinksFor(false, entity.RoleUnknown), guard.NavLinks(context.Background(), nil))
	assert.Equal(t, entity.NavLinksFor(true, entity.RoleShopkeeper), guard.NavLinks(context.Background(), principal))
}
