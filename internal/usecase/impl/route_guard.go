package impl

import (
	"context"
	"fmt"
	"log/slog"

	"printhub/config"
	deliverycontext "printhub/internal/delivery/context"
	"printhub/internal/domain/entity"
	"printhub/internal/usecase"

	"go.uber.org/fx"
)

// routeGuard implements the RouteGuard interface on top of a RoleResolver.
type routeGuard struct {
	resolver          usecase.RoleResolver
	unknownRoleIsUser bool
	logger            *slog.Logger
}

// RouteGuardParams holds dependencies for RouteGuard, injected by Fx.
type RouteGuardParams struct {
	fx.In

	Resolver usecase.RoleResolver
	Config   *config.Config
	Logger   *slog.Logger
}

// NewRouteGuard is the constructor for routeGuard.
func NewRouteGuard(params RouteGuardParams) usecase.RouteGuard {
	unknownRoleIsUser := true
	if params.Config != nil && params.Config.Auth != nil {
		unknownRoleIsUser = params.Config.Auth.UnknownRoleIsUser
	}

	return &routeGuard{
		resolver:          params.Resolver,
		unknownRoleIsUser: unknownRoleIsUser,
		logger:            params.Logger,
	}
}

func (g *routeGuard) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, g.logger)
}

// Decide authorizes principal for a route requiring the given role.
func (g *routeGuard) Decide(ctx context.Context, principal *entity.Principal, required *entity.Role) entity.GuardDecision {
	if principal == nil {
		return entity.GuardDecision{State: entity.GuardDenied, Redirect: entity.RouteLogin}
	}

	// Any session may enter; the role is only reported when the claims already carry it.
	if required == nil {
		role := entity.RoleUnknown
		if cached := principal.Metadata.Role; cached != nil && cached.IsValid() {
			role = *cached
		}

		return entity.GuardDecision{State: entity.GuardAuthorized, Role: role}
	}

	role, err := g.resolver.ResolveRole(ctx, principal)
	if err != nil {
		g.log(ctx).Warn("Role resolution failed", slog.Any("userID", principal.ID), slog.Any("error", err))

		return entity.GuardDecision{
			State:    entity.GuardDenied,
			Redirect: entity.RouteLogin,
			Notice: &entity.Notice{
				Title:       "Authentication Error",
				Description: "There was a problem verifying your access. Please sign in again.",
				Kind:        entity.NoticeDestructive,
			},
			Role: entity.RoleUnknown,
		}
	}

	if role == *required || (*required == entity.RoleUser && role == entity.RoleUnknown && g.unknownRoleIsUser) {
		return entity.GuardDecision{State: entity.GuardAuthorized, Role: role}
	}

	g.log(ctx).Info("Route access denied", slog.Any("userID", principal.ID), slog.Any("role", role), slog.Any("required", *required))

	return entity.GuardDecision{
		State:    entity.GuardDenied,
		Redirect: g.landingFor(role),
		Notice: &entity.Notice{
			Title:       "Access Denied",
			Description: fmt.Sprintf("You do not have permission to access this page. It requires %s access.", *required),
			Kind:        entity.NoticeDestructive,
		},
		Role: role,
	}
}

// LandingRoute returns the dashboard of principal's resolved role.
func (g *routeGuard) LandingRoute(ctx context.Context, principal *entity.Principal) string {
	if principal == nil {
		return entity.RouteLogin
	}

	role, err := g.resolver.ResolveRole(ctx, principal)
	if err != nil {
		g.log(ctx).Warn("Role resolution failed for landing route", slog.Any("userID", principal.ID), slog.Any("error", err))

		return entity.RouteLogin
	}

	return g.landingFor(role)
}

// landingFor maps a resolved role to its dashboard. Without the unknown-role leniency the
// user dashboard would reject an unknown principal again, so they land on the home page.
func (g *routeGuard) landingFor(role entity.Role) string {
	if role == entity.RoleUnknown && !g.unknownRoleIsUser {
		return entity.RouteHome
	}

	return entity.LandingRoute(role)
}

// NavLinks returns the navigation entries for principal.
func (g *routeGuard) NavLinks(ctx context.Context, principal *entity.Principal) []entity.NavLink {
	if principal == nil {
		return entity.NavLinksFor(false, entity.RoleUnknown)
	}

	return entity.NavLinksFor(true, g.resolveOrUnknown(ctx, principal))
}

func (g *routeGuard) resolveOrUnknown(ctx context.Context, principal *entity.Principal) entity.Role {
	role, err := g.resolver.ResolveRole(ctx, principal)
	if err != nil {
		g.log(ctx).Warn("Role resolution failed", slog.Any("userID", principal.ID), slog.Any("error", err))

		return entity.RoleUnknown
	}

	return role
}
