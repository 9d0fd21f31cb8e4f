package usecase

import (
	"context"
	"io"

	"printhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// CreateOrderInput defines the data required to place a print order.
type CreateOrderInput struct {
	ShopID              uuid.UUID
	FileName            string
	ContentType         string
	Document            io.Reader
	Config              entity.OrderConfig
	SpecialInstructions *string
}

// QuoteInput asks for the price of a configuration at a shop.
type QuoteInput struct {
	ShopID uuid.UUID
	Config entity.OrderConfig
}

// --- Output DTOs ---

// QuoteOutput is a computed price. Priced is false when the shop has no matching entry.
type QuoteOutput struct {
	Total  decimal.Decimal `json:"total"`
	Priced bool            `json:"priced"`
}

// OrderDetail is an order together with the shop it was placed at.
type OrderDetail struct {
	Order *entity.Order `json:"order"`
	Shop  *entity.Shop  `json:"shop"`
}

// OrderUsecase defines the order lifecycle operations.
type OrderUsecase interface {
	ListActiveShops(ctx context.Context) ([]*entity.Shop, error)
	ShopPricing(ctx context.Context, shopID uuid.UUID) ([]entity.PriceEntry, error)
	Quote(ctx context.Context, input QuoteInput) (*QuoteOutput, error)

	CreateOrder(ctx context.Context, principal *entity.Principal, input CreateOrderInput) (*entity.Order, error)
	GetOrder(ctx context.Context, principal *entity.Principal, orderID uuid.UUID) (*OrderDetail, error)
	DocumentLink(ctx context.Context, principal *entity.Principal, orderID uuid.UUID) (string, error)
	PickupQR(ctx context.Context, principal *entity.Principal, orderID uuid.UUID) ([]byte, error)

	ListUserOrders(ctx context.Context, principal *entity.Principal) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, principal *entity.Principal, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
}
