package repository

import (
	"context"

	"printhub/internal/domain/entity"

	"github.com/google/uuid"
)

// PricingRepository persists the print_pricing table.
type PricingRepository interface {
	// ListByShop returns the price list of a shop. An unpriced shop yields an empty list.
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]entity.PriceEntry, error)

	// Upsert inserts or replaces the entry for (ShopID, PaperSize, ColorMode).
	Upsert(ctx context.Context, entry *entity.PriceEntry) error
}
