package impl

import (
	"context"
	"log/slog"

	deliverycontext "printhub/internal/delivery/context"
	"printhub/internal/domain/entity"
	domainerrors "printhub/internal/domain/errors"
	"printhub/internal/domain/repository"
	"printhub/internal/errors"
	"printhub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager   repository.TransactionManager
	profileRepo repository.ProfileRepository
	shopRepo    repository.ShopRepository
	events      usecase.SessionEvents
	logger      *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProfileRepo repository.ProfileRepository
	ShopRepo    repository.ShopRepository
	Events      usecase.SessionEvents
	Logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:   params.TxManager,
		profileRepo: params.ProfileRepo,
		shopRepo:    params.ShopRepo,
		events:      params.Events,
		logger:      params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dashboard lists every profile and every shop.
func (srv *adminService) Dashboard(ctx context.Context) (*usecase.AdminDashboard, error) {
	users, err := srv.profileRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	shops, err := srv.shopRepo.List(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	return &usecase.AdminDashboard{Users: users, Shops: shops}, nil
}

// SetUserRole writes the profile role and the cached session metadata role in one
// transaction, so a failed metadata write leaves the profile untouched. Subscribers are
// told only after the commit.
func (srv *adminService) SetUserRole(ctx context.Context, userID uuid.UUID, role entity.Role) error {
	if !role.IsValid() {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("unknown role"), "set user role")
	}

	var merged *entity.UserMetadata
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewProfileRepository().UpdateRole(ctx, userID, role); err != nil {
			return errors.Wrap(err, "failed to update profile role")
		}

		var err error
		merged, err = repoFactory.NewAuthUserRepository().MergeMetadata(ctx, userID, entity.MetadataPatch{Role: role.Ptr()})

		return errors.Wrap(err, "failed to update session metadata role")
	})
	if err != nil {
		srv.log(ctx).Warn("User role change rolled back", slog.Any("userID", userID), slog.Any("role", role), slog.Any("error", err))
		if errors.Is(err, repository.ErrProfileNotFound) || errors.Is(err, repository.ErrAuthUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, err.Error())
		}

		return err
	}

	srv.events.Publish(entity.SessionChange{Event: entity.SessionUserUpdated, UserID: userID, Metadata: merged})
	srv.log(ctx).Info("User role changed", slog.Any("userID", userID), slog.Any("role", role))

	return nil
}

// SetShopStatus activates or deactivates a shop.
func (srv *adminService) SetShopStatus(ctx context.Context, shopID uuid.UUID, status entity.ShopStatus) error {
	if !status.IsValid() {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("unknown shop status"), "set shop status")
	}

	if err := srv.shopRepo.UpdateStatus(ctx, shopID, status); err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return errors.Wrap(domainerrors.ErrShopNotFound, err.Error())
		}

		return errors.Wrap(err, "failed to update shop status")
	}
	srv.log(ctx).Info("Shop status changed", slog.Any("shopID", shopID), slog.Any("status", status))

	return nil
}
