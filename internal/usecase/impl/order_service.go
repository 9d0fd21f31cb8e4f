package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"printhub/config"
	deliverycontext "printhub/internal/delivery/context"
	"printhub/internal/domain/constants"
	"printhub/internal/domain/entity"
	domainerrors "printhub/internal/domain/errors"
	"printhub/internal/domain/repository"
	"printhub/internal/domain/service"
	"printhub/internal/errors"
	"printhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const defaultDocumentLinkTTL = 24 * time.Hour

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager   repository.TransactionManager
	shopRepo    repository.ShopRepository
	pricingRepo repository.PricingRepository
	orderRepo   repository.OrderRepository
	storage     service.DocumentStorage
	publisher   service.EventPublisher
	qrService   service.QRCodeService
	surcharge   decimal.Decimal
	policy      entity.StatusPolicy
	linkTTL     time.Duration
	logger      *slog.Logger
	now         func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ShopRepo    repository.ShopRepository
	PricingRepo repository.PricingRepository
	OrderRepo   repository.OrderRepository
	Storage     service.DocumentStorage
	Publisher   service.EventPublisher
	QRService   service.QRCodeService
	Config      *config.Config
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) (usecase.OrderUsecase, error) {
	srv := &orderService{
		txManager:   params.TxManager,
		shopRepo:    params.ShopRepo,
		pricingRepo: params.PricingRepo,
		orderRepo:   params.OrderRepo,
		storage:     params.Storage,
		publisher:   params.Publisher,
		qrService:   params.QRService,
		surcharge:   decimal.RequireFromString("0.50"),
		policy:      entity.StatusPolicyStrict,
		linkTTL:     defaultDocumentLinkTTL,
		logger:      params.Logger,
		now:         time.Now,
	}

	cfg := params.Config
	if cfg != nil && cfg.Pricing != nil && strings.TrimSpace(cfg.Pricing.StaplingSurcharge) != "" {
		surcharge, err := decimal.NewFromString(cfg.Pricing.StaplingSurcharge)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid pricing.staplingSurcharge %q", cfg.Pricing.StaplingSurcharge)
		}
		if surcharge.IsNegative() {
			return nil, errors.Errorf("pricing.staplingSurcharge must not be negative, got %s", surcharge)
		}
		srv.surcharge = surcharge
	}
	if cfg != nil && cfg.Orders != nil {
		srv.policy = entity.ParseStatusPolicy(cfg.Orders.StatusPolicy)
	}
	if cfg != nil && cfg.Storage != nil && cfg.Storage.LinkTTL > 0 {
		srv.linkTTL = cfg.Storage.LinkTTL
	}

	return srv, nil
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListActiveShops returns the shops accepting orders.
func (srv *orderService) ListActiveShops(ctx context.Context) ([]*entity.Shop, error) {
	status := entity.ShopStatusActive

	shops, err := srv.shopRepo.List(ctx, &status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active shops")
	}

	return shops, nil
}

// ShopPricing returns the price list of a shop.
func (srv *orderService) ShopPricing(ctx context.Context, shopID uuid.UUID) ([]entity.PriceEntry, error) {
	if _, err := srv.findShop(ctx, shopID); err != nil {
		return nil, err
	}

	prices, err := srv.pricingRepo.ListByShop(ctx, shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shop pricing")
	}

	return prices, nil
}

// Quote prices a configuration at a shop without placing an order.
func (srv *orderService) Quote(ctx context.Context, input usecase.QuoteInput) (*usecase.QuoteOutput, error) {
	if err := validateOrderConfig(input.Config); err != nil {
		return nil, err
	}

	prices, err := srv.ShopPricing(ctx, input.ShopID)
	if err != nil {
		return nil, err
	}

	total, priced := entity.Quote(prices, input.Config, srv.surcharge)

	return &usecase.QuoteOutput{Total: total, Priced: priced}, nil
}

// CreateOrder prices the configuration, stores the document and records a pending order.
func (srv *orderService) CreateOrder(ctx context.Context, principal *entity.Principal, input usecase.CreateOrderInput) (*entity.Order, error) {
	if principal == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}
	if err := validateCreateOrder(input); err != nil {
		return nil, err
	}

	shop, err := srv.findShop(ctx, input.ShopID)
	if err != nil {
		return nil, err
	}
	if !shop.IsActive() {
		return nil, errors.Wrap(domainerrors.ErrShopInactive, "create order")
	}

	prices, err := srv.pricingRepo.ListByShop(ctx, shop.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load shop pricing")
	}
	total := entity.ComputeTotal(prices, input.Config, srv.surcharge)

	now := srv.now()
	key := documentKey(principal.ID, now, input.FileName)

	ref, err := srv.storage.Upload(ctx, key, input.Document, input.ContentType)
	if err != nil {
		srv.log(ctx).Error("Failed to upload print document", slog.Any("userID", principal.ID), slog.String("key", key), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	order := &entity.Order{
		ID:                  uuid.New(),
		UserID:              principal.ID,
		ShopID:              shop.ID,
		DocumentRef:         ref,
		FileName:            input.FileName,
		PaperSize:           input.Config.PaperSize,
		ColorMode:           input.Config.ColorMode,
		Copies:              input.Config.Copies,
		DoubleSided:         input.Config.DoubleSided,
		Stapled:             input.Config.Stapled,
		SpecialInstructions: normalizeInstructions(input.SpecialInstructions),
		TotalPrice:          total,
		Status:              entity.OrderStatusPending,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		srv.log(ctx).Error("Failed to insert order", slog.Any("userID", principal.ID), slog.Any("shopID", shop.ID), slog.Any("error", err))
		srv.discardDocument(ctx, ref)

		return nil, errors.Wrap(domainerrors.ErrInsertFailed, err.Error())
	}
	srv.log(ctx).Info("Order created", slog.Any("orderID", order.ID), slog.Any("shopID", shop.ID), slog.String("total", total.StringFixed(2)))

	srv.publish(ctx, &service.OrderEvent{
		Type:       constants.EventOrderCreated,
		OrderID:    order.ID.String(),
		UserID:     order.UserID.String(),
		ShopID:     shop.ID.String(),
		ShopName:   shop.Name,
		FileName:   order.FileName,
		Status:     string(order.Status),
		TotalPrice: total.StringFixed(2),
		OccurredAt: now,
	})

	return order, nil
}

// GetOrder returns an order with its shop. Only the customer and the shop owner may read it.
func (srv *orderService) GetOrder(ctx context.Context, principal *entity.Principal, orderID uuid.UUID) (*usecase.OrderDetail, error) {
	if principal == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, err.Error())
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	shop, err := srv.findShop(ctx, order.ShopID)
	if err != nil {
		return nil, err
	}

	if order.UserID != principal.ID && shop.OwnerID != principal.ID {
		srv.log(ctx).Warn("Order access denied", slog.Any("orderID", orderID), slog.Any("userID", principal.ID))

		return nil, errors.Wrap(domainerrors.ErrAuthorizationDenied, "order belongs to another account")
	}

	return &usecase.OrderDetail{Order: order, Shop: shop}, nil
}

// DocumentLink returns a temporary retrieval URL for the order's document.
func (srv *orderService) DocumentLink(ctx context.Context, principal *entity.Principal, orderID uuid.UUID) (string, error) {
	detail, err := srv.GetOrder(ctx, principal, orderID)
	if err != nil {
		return "", err
	}

	link, err := srv.storage.TemporaryLink(ctx, detail.Order.DocumentRef, srv.linkTTL)
	if err != nil {
		srv.log(ctx).Error("Failed to create document link", slog.Any("orderID", orderID), slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrDocumentLinkFailed, err.Error())
	}

	return link, nil
}

// PickupQR returns a PNG QR code that opens the order page.
func (srv *orderService) PickupQR(ctx context.Context, principal *entity.Principal, orderID uuid.UUID) ([]byte, error) {
	detail, err := srv.GetOrder(ctx, principal, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GeneratePickupQR(detail.Order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pickup QR code")
	}

	return png, nil
}

// ListUserOrders returns the principal's orders, newest first.
func (srv *orderService) ListUserOrders(ctx context.Context, principal *entity.Principal) ([]*entity.Order, error) {
	if principal == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	orders, err := srv.orderRepo.ListByUser(ctx, principal.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return orders, nil
}

// UpdateStatus moves an order of the principal's shop to status.
func (srv *orderService) UpdateStatus(ctx context.Context, principal *entity.Principal, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if principal == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}
	if !status.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("unknown order status"), "update order status")
	}

	var (
		order *entity.Order
		shop  *entity.Shop
		prev  entity.OrderStatus
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		var err error
		order, err = orderRepo.FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, err.Error())
			}

			return errors.Wrap(err, "failed to find order")
		}

		shop, err = repoFactory.NewShopRepository().FindByID(ctx, order.ShopID)
		if err != nil {
			return errors.Wrap(err, "failed to find order shop")
		}
		if shop.OwnerID != principal.ID {
			return errors.Wrap(domainerrors.ErrAuthorizationDenied, "order belongs to another shop")
		}

		prev = order.Status
		if !srv.policy.Allows(prev, status) {
			return errors.Wrap(
				domainerrors.ErrInvalidStatusTransition.WithDetails(fmt.Sprintf("%s -> %s", prev, status)),
				"update order status",
			)
		}

		if err := orderRepo.UpdateStatus(ctx, orderID, prev, status); err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				// The row moved on between the read and the write.
				return errors.Wrap(domainerrors.ErrInvalidStatusTransition, "order status changed concurrently")
			}

			return errors.Wrap(err, "failed to update order status")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update order status", slog.Any("orderID", orderID), slog.Any("status", status), slog.Any("error", err))

		return nil, err
	}

	order.Status = status
	order.UpdatedAt = srv.now()
	srv.log(ctx).Info("Order status updated", slog.Any("orderID", orderID), slog.Any("from", prev), slog.Any("to", status))

	srv.publish(ctx, &service.OrderEvent{
		Type:       constants.EventOrderStatusChanged,
		OrderID:    order.ID.String(),
		UserID:     order.UserID.String(),
		ShopID:     shop.ID.String(),
		ShopName:   shop.Name,
		FileName:   order.FileName,
		Status:     string(status),
		PrevStatus: string(prev),
		OccurredAt: order.UpdatedAt,
	})

	return order, nil
}

func (srv *orderService) findShop(ctx context.Context, shopID uuid.UUID) (*entity.Shop, error) {
	shop, err := srv.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, errors.Wrap(domainerrors.ErrShopNotFound, err.Error())
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}

	return shop, nil
}

// publish sends an order event. Delivery is best effort and never fails the request.
func (srv *orderService) publish(ctx context.Context, event *service.OrderEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("type", event.Type), slog.String("orderID", event.OrderID), slog.Any("error", err))
	}
}

// discardDocument removes an uploaded document whose order could not be recorded.
func (srv *orderService) discardDocument(ctx context.Context, ref string) {
	if err := srv.storage.Delete(context.WithoutCancel(ctx), ref); err != nil {
		srv.log(ctx).Warn("Failed to delete orphaned document", slog.String("ref", ref), slog.Any("error", err))
	}
}

func validateCreateOrder(input usecase.CreateOrderInput) error {
	var missing []string
	if input.ShopID == uuid.Nil {
		missing = append(missing, "shop_id")
	}
	if input.Document == nil || strings.TrimSpace(input.FileName) == "" {
		missing = append(missing, "document")
	}
	if len(missing) > 0 {
		return errors.Wrap(
			domainerrors.ErrValidationFailed.WithDetails("missing "+strings.Join(missing, ", ")),
			"create order",
		)
	}

	return validateOrderConfig(input.Config)
}

func validateOrderConfig(cfg entity.OrderConfig) error {
	switch {
	case !cfg.PaperSize.IsValid():
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("unsupported paper size"), "order config")
	case !cfg.ColorMode.IsValid():
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("unsupported color mode"), "order config")
	case cfg.Copies < 1:
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("copies must be at least 1"), "order config")
	}

	return nil
}

// documentKey builds the storage key <userID>/<unixMillis>.<ext>.
func documentKey(userID uuid.UUID, at time.Time, fileName string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileName)), ".")
	if ext == "" {
		ext = "bin"
	}

	return fmt.Sprintf("%s/%d.%s", userID, at.UnixMilli(), ext)
}

func normalizeInstructions(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
