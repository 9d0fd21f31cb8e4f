package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"printhub/config"
	deliverycontext "printhub/internal/delivery/context"
	"printhub/internal/domain/entity"
	domainerrors "printhub/internal/domain/errors"
	"printhub/internal/domain/repository"
	"printhub/internal/errors"
	"printhub/internal/usecase"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/fx"
)

const (
	defaultBackfillTimeout = 5 * time.Second
	defaultRoleCacheTTL    = 15 * time.Minute
	roleCacheSize          = 10_000
)

// roleResolver implements the RoleResolver interface.
// The role in the token claims wins. Next comes the process role cache and then the
// profile row. A profile role is written back into the stored metadata, which tokens
// issued from then on (sign-in, /token/refresh) carry. Until the client refreshes, the
// process cache serves the role to requests still presenting the older token. Cache
// entries live for one access token lifetime and follow USER_UPDATED changes.
type roleResolver struct {
	profileRepo     repository.ProfileRepository
	session         usecase.SessionUsecase
	roles           *lru.LRU[uuid.UUID, entity.Role]
	resolveTimeout  time.Duration
	backfillTimeout time.Duration
	backfills       sync.WaitGroup
	logger          *slog.Logger
}

// RoleResolverParams holds dependencies for RoleResolver, injected by Fx.
type RoleResolverParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Session     usecase.SessionUsecase
	Events      usecase.SessionEvents `optional:"true"`
	Config      *config.Config
	Logger      *slog.Logger
}

// NewRoleResolver is the constructor for roleResolver.
func NewRoleResolver(params RoleResolverParams) usecase.RoleResolver {
	r := &roleResolver{
		profileRepo:     params.ProfileRepo,
		session:         params.Session,
		backfillTimeout: defaultBackfillTimeout,
		logger:          params.Logger,
	}
	cacheTTL := defaultRoleCacheTTL
	if params.Config != nil && params.Config.Auth != nil {
		r.resolveTimeout = params.Config.Auth.ResolveTimeout
		if params.Config.Auth.BackfillTimeout > 0 {
			r.backfillTimeout = params.Config.Auth.BackfillTimeout
		}
		if params.Config.Auth.AccessTTL > 0 {
			cacheTTL = params.Config.Auth.AccessTTL
		}
	}
	r.roles = lru.NewLRU[uuid.UUID, entity.Role](roleCacheSize, nil, cacheTTL)

	if params.Events != nil {
		params.Events.Subscribe(r.onSessionChange)
	}

	return r
}

// onSessionChange keeps the role cache in line with metadata writes. A change without
// a metadata role drops the entry so the next resolution reads the profile.
func (r *roleResolver) onSessionChange(change entity.SessionChange) {
	if change.Event != entity.SessionUserUpdated {
		return
	}

	if change.Metadata != nil && change.Metadata.Role != nil && change.Metadata.Role.IsValid() {
		r.roles.Add(change.UserID, *change.Metadata.Role)

		return
	}
	r.roles.Remove(change.UserID)
}

func (r *roleResolver) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// ResolveRole returns the role of principal. A role found past the token claims is
// recorded on principal.Metadata, so later checks in the same request skip the lookup.
func (r *roleResolver) ResolveRole(ctx context.Context, principal *entity.Principal) (entity.Role, error) {
	if principal == nil {
		return entity.RoleUnknown, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	if role := principal.Metadata.Role; role != nil && role.IsValid() {
		return *role, nil
	}
	if role, ok := r.roles.Get(principal.ID); ok {
		principal.Metadata.Role = role.Ptr()

		return role, nil
	}

	profile, err := r.fetchProfile(ctx, principal)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return entity.RoleUnknown, nil
		}
		r.log(ctx).Error("Failed to fetch profile for role resolution", slog.Any("userID", principal.ID), slog.Any("error", err))

		return entity.RoleUnknown, errors.Wrap(domainerrors.ErrResolutionFailed, err.Error())
	}

	if profile.Role == nil || !profile.Role.IsValid() {
		return entity.RoleUnknown, nil
	}

	role := *profile.Role
	principal.Metadata.Role = role.Ptr()
	r.roles.Add(principal.ID, role)
	r.backfill(ctx, principal, role)

	return role, nil
}

// Wait blocks until every scheduled back-fill has returned.
func (r *roleResolver) Wait() {
	r.backfills.Wait()
}

func (r *roleResolver) fetchProfile(ctx context.Context, principal *entity.Principal) (*entity.Profile, error) {
	if r.resolveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.resolveTimeout)
		defer cancel()
	}

	profile, err := r.profileRepo.FindByID(ctx, principal.ID)
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// backfill writes role into the stored session metadata. It outlives the request,
// so it runs on a context detached from cancellation with its own deadline.
func (r *roleResolver) backfill(ctx context.Context, principal *entity.Principal, role entity.Role) {
	bgCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.backfillTimeout)
	userID := principal.ID

	r.backfills.Add(1)
	go func() {
		defer r.backfills.Done()
		defer cancel()

		if _, err := r.session.UpdateUserAttributes(bgCtx, userID, entity.MetadataPatch{Role: role.Ptr()}); err != nil {
			r.log(bgCtx).Warn("Failed to back-fill role into session metadata",
				slog.Any("userID", userID), slog.Any("role", role), slog.Any("error", err))

			return
		}
		r.log(bgCtx).Debug("Back-filled role into session metadata", slog.Any("userID", userID), slog.Any("role", role))
	}()
}
