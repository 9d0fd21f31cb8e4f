package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"printhub/config"
	deliverycontext "printhub/internal/delivery/context"
	"printhub/internal/domain/entity"
	domainerrors "printhub/internal/domain/errors"
	"printhub/internal/domain/repository"
	"printhub/internal/errors"
	"printhub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// shopService implements the ShopUsecase interface.
type shopService struct {
	txManager          repository.TransactionManager
	shopRepo           repository.ShopRepository
	pricingRepo        repository.PricingRepository
	orderRepo          repository.OrderRepository
	singleShopPerOwner bool
	logger             *slog.Logger
}

// ShopServiceParams holds dependencies for ShopService, injected by Fx.
type ShopServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ShopRepo    repository.ShopRepository
	PricingRepo repository.PricingRepository
	OrderRepo   repository.OrderRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewShopService is the constructor for shopService.
func NewShopService(params ShopServiceParams) usecase.ShopUsecase {
	singleShopPerOwner := true
	if params.Config != nil && params.Config.Shop != nil {
		singleShopPerOwner = params.Config.Shop.SingleShopPerOwner
	}

	return &shopService{
		txManager:          params.TxManager,
		shopRepo:           params.ShopRepo,
		pricingRepo:        params.PricingRepo,
		orderRepo:          params.OrderRepo,
		singleShopPerOwner: singleShopPerOwner,
		logger:             params.Logger,
	}
}

func (srv *shopService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SetupShop creates an active shop owned by principal.
func (srv *shopService) SetupShop(ctx context.Context, principal *entity.Principal, input usecase.ShopInput) (*entity.Shop, error) {
	if principal == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}
	if err := validateShopInput(input); err != nil {
		return nil, err
	}

	shop := &entity.Shop{
		ID:      uuid.New(),
		OwnerID: principal.ID,
		Status:  entity.ShopStatusActive,
	}
	applyShopInput(shop, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shopRepo := repoFactory.NewShopRepository()

		if srv.singleShopPerOwner {
			// Concurrent setups by one owner queue here, so the second sees the first's shop.
			if err := shopRepo.LockOwner(ctx, principal.ID); err != nil {
				return err
			}

			existing, err := shopRepo.FindByOwner(ctx, principal.ID)
			switch {
			case err == nil:
				return errors.Wrap(
					domainerrors.ErrConflict.WithDetails(fmt.Sprintf("shop %s already exists", existing.ID)),
					"owner already has a shop",
				)
			case !errors.Is(err, repository.ErrShopNotFound):
				return errors.Wrap(err, "failed to find owner shop")
			}
		}

		return errors.Wrap(shopRepo.Create(ctx, shop), "failed to create shop")
	})
	if err != nil {
		srv.log(ctx).Warn("Shop setup failed", slog.Any("ownerID", principal.ID), slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("Shop created", slog.Any("shopID", shop.ID), slog.Any("ownerID", principal.ID))

	return shop, nil
}

// UpdateShop replaces the editable profile of the principal's shop.
func (srv *shopService) UpdateShop(ctx context.Context, principal *entity.Principal, input usecase.ShopInput) (*entity.Shop, error) {
	if err := validateShopInput(input); err != nil {
		return nil, err
	}

	shop, err := srv.ownShop(ctx, principal)
	if err != nil {
		return nil, err
	}
	applyShopInput(shop, input)

	if err := srv.shopRepo.Update(ctx, shop); err != nil {
		return nil, errors.Wrap(err, "failed to update shop")
	}

	return shop, nil
}

// UpsertPricing writes price entries for the principal's shop and returns the full price list.
func (srv *shopService) UpsertPricing(ctx context.Context, principal *entity.Principal, prices []usecase.PriceInput) ([]entity.PriceEntry, error) {
	if len(prices) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("no price entries"), "upsert pricing")
	}
	for _, p := range prices {
		if err := validatePriceInput(p); err != nil {
			return nil, err
		}
	}

	shop, err := srv.ownShop(ctx, principal)
	if err != nil {
		return nil, err
	}

	var list []entity.PriceEntry
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		pricingRepo := repoFactory.NewPricingRepository()

		for _, p := range prices {
			entry := &entity.PriceEntry{
				ID:               uuid.New(),
				ShopID:           shop.ID,
				PaperSize:        p.PaperSize,
				ColorMode:        p.ColorMode,
				SingleSidedPrice: p.SingleSidedPrice,
				DoubleSidedPrice: p.DoubleSidedPrice,
			}
			if err := pricingRepo.Upsert(ctx, entry); err != nil {
				return errors.Wrapf(err, "failed to upsert %s/%s price", p.PaperSize, p.ColorMode)
			}
		}

		var err error
		list, err = pricingRepo.ListByShop(ctx, shop.ID)

		return errors.Wrap(err, "failed to list shop pricing")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to upsert pricing", slog.Any("shopID", shop.ID), slog.Any("error", err))

		return nil, err
	}

	return list, nil
}

// Dashboard returns the principal's shop with its price list and orders.
func (srv *shopService) Dashboard(ctx context.Context, principal *entity.Principal) (*usecase.ShopDashboard, error) {
	shop, err := srv.ownShop(ctx, principal)
	if err != nil {
		if errors.Is(err, domainerrors.ErrShopNotFound) {
			return &usecase.ShopDashboard{}, nil
		}

		return nil, err
	}

	prices, err := srv.pricingRepo.ListByShop(ctx, shop.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shop pricing")
	}

	orders, err := srv.orderRepo.ListByShop(ctx, shop.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shop orders")
	}

	return &usecase.ShopDashboard{Shop: shop, Pricing: prices, Orders: orders}, nil
}

// CountActiveShops returns the number of shops accepting orders.
func (srv *shopService) CountActiveShops(ctx context.Context) (int64, error) {
	count, err := srv.shopRepo.CountActive(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count active shops")
	}

	return count, nil
}

func (srv *shopService) ownShop(ctx context.Context, principal *entity.Principal) (*entity.Shop, error) {
	if principal == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	shop, err := srv.shopRepo.FindByOwner(ctx, principal.ID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, errors.Wrap(domainerrors.ErrShopNotFound, "no shop set up for this account")
		}

		return nil, errors.Wrap(err, "failed to find owner shop")
	}

	return shop, nil
}

func validateShopInput(input usecase.ShopInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("shop name is required"), "shop input")
	}

	return nil
}

func validatePriceInput(p usecase.PriceInput) error {
	switch {
	case !p.PaperSize.IsValid():
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("unsupported paper size"), "price input")
	case !p.ColorMode.IsValid():
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("unsupported color mode"), "price input")
	case p.SingleSidedPrice.IsNegative() || p.DoubleSidedPrice.IsNegative():
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("prices must not be negative"), "price input")
	}

	return nil
}

func applyShopInput(shop *entity.Shop, input usecase.ShopInput) {
	shop.Name = strings.TrimSpace(input.Name)
	shop.Address = strings.TrimSpace(input.Address)
	shop.City = strings.TrimSpace(input.City)
	shop.State = strings.TrimSpace(input.State)
	shop.PostalCode = strings.TrimSpace(input.PostalCode)
	shop.Phone = strings.TrimSpace(input.Phone)
	shop.Email = strings.TrimSpace(input.Email)
	shop.Description = strings.TrimSpace(input.Description)
}
