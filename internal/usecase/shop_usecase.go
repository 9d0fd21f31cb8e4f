package usecase

import (
	"context"

	"printhub/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// ShopInput is the editable part of a shop profile.
type ShopInput struct {
	Name        string
	Address     string
	City        string
	State       string
	PostalCode  string
	Phone       string
	Email       string
	Description string
}

// PriceInput is one price list entry to upsert.
type PriceInput struct {
	PaperSize        entity.PaperSize
	ColorMode        entity.ColorMode
	SingleSidedPrice decimal.Decimal
	DoubleSidedPrice decimal.Decimal
}

// --- Output DTOs ---

// ShopDashboard is what a shopkeeper sees: their shop, its price list and its orders.
// Shop is nil when the shopkeeper has not set up a shop yet.
type ShopDashboard struct {
	Shop    *entity.Shop        `json:"shop"`
	Pricing []entity.PriceEntry `json:"pricing"`
	Orders  []*entity.Order     `json:"orders"`
}

// ShopUsecase defines shopkeeper operations.
type ShopUsecase interface {
	SetupShop(ctx context.Context, principal *entity.Principal, input ShopInput) (*entity.Shop, error)
	UpdateShop(ctx context.Context, principal *entity.Principal, input ShopInput) (*entity.Shop, error)
	UpsertPricing(ctx context.Context, principal *entity.Principal, prices []PriceInput) ([]entity.PriceEntry, error)
	Dashboard(ctx context.Context, principal *entity.Principal) (*ShopDashboard, error)
	CountActiveShops(ctx context.Context) (int64, error)
}
