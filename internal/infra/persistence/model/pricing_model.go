package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PricingModel mirrors the 'print_pricing' table. (shop_id, paper_size, color_mode) is unique.
type PricingModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key"`
	ShopID           uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_pricing_shop_paper_color"`
	PaperSize        string          `gorm:"type:varchar(20);not null;uniqueIndex:idx_pricing_shop_paper_color"`
	ColorMode        string          `gorm:"type:varchar(20);not null;uniqueIndex:idx_pricing_shop_paper_color"`
	SingleSidedPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	DoubleSidedPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (PricingModel) TableName() string {
	return "print_pricing"
}
