package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaperSize is a supported print paper size.
type PaperSize string

const (
	PaperSizeA4     PaperSize = "a4"
	PaperSizeA3     PaperSize = "a3"
	PaperSizeLetter PaperSize = "letter"
	PaperSizeLegal  PaperSize = "legal"
)

// IsValid checks if the paper size is supported.
func (p PaperSize) IsValid() bool {
	switch p {
	case PaperSizeA4, PaperSizeA3, PaperSizeLetter, PaperSizeLegal:
		return true
	default:
		return false
	}
}

// ColorMode is a supported print color mode.
type ColorMode string

const (
	ColorModeBlackAndWhite ColorMode = "black_and_white"
	ColorModeColor         ColorMode = "color"
)

// IsValid checks if the color mode is supported.
func (c ColorMode) IsValid() bool {
	return c == ColorModeBlackAndWhite || c == ColorModeColor
}

// PriceEntry is one row of a shop's price list. A shop has at most one entry
// per (PaperSize, ColorMode).
type PriceEntry struct {
	ID               uuid.UUID       `json:"id"`
	ShopID           uuid.UUID       `json:"shop_id"`
	PaperSize        PaperSize       `json:"paper_size"`
	ColorMode        ColorMode       `json:"color_mode"`
	SingleSidedPrice decimal.Decimal `json:"single_sided_price"`
	DoubleSidedPrice decimal.Decimal `json:"double_sided_price"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// OrderConfig is the print configuration chosen for an order.
type OrderConfig struct {
	PaperSize   PaperSize `json:"paper_size"`
	ColorMode   ColorMode `json:"color_mode"`
	Copies      int       `json:"copies"`
	DoubleSided bool      `json:"double_sided"`
	Stapled     bool      `json:"stapled"`
}

// ComputeTotal returns the total price of cfg against priceList.
// It returns zero when no entry matches the paper size and color mode.
func ComputeTotal(priceList []PriceEntry, cfg OrderConfig, staplingSurcharge decimal.Decimal) decimal.Decimal {
	total, _ := Quote(priceList, cfg, staplingSurcharge)

	return total
}

// Quote is ComputeTotal that also reports whether a matching price entry exists,
// so callers can tell an unpriced configuration from a free one.
func Quote(priceList []PriceEntry, cfg OrderConfig, staplingSurcharge decimal.Decimal) (total decimal.Decimal, priced bool) {
	entry, ok := findPriceEntry(priceList, cfg.PaperSize, cfg.ColorMode)
	if !ok {
		return decimal.Zero, false
	}

	perCopy := entry.SingleSidedPrice
	if cfg.DoubleSided {
		perCopy = entry.DoubleSidedPrice
	}
	if cfg.Stapled {
		perCopy = perCopy.Add(staplingSurcharge)
	}

	return perCopy.Mul(decimal.NewFromInt(int64(cfg.Copies))), true
}

func findPriceEntry(priceList []PriceEntry, size PaperSize, mode ColorMode) (PriceEntry, bool) {
	for _, entry := range priceList {
		if entry.PaperSize == size && entry.ColorMode == mode {
			return entry, true
		}
	}

	return PriceEntry{}, false
}
