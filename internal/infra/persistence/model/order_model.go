package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'print_orders' table.
type OrderModel struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key"`
	UserID              uuid.UUID       `gorm:"type:uuid;not null;index"`
	ShopID              uuid.UUID       `gorm:"type:uuid;not null;index"`
	DocumentURL         string          `gorm:"column:document_url;type:text;not null"`
	FileName            string          `gorm:"type:varchar(255);not null"`
	PaperSize           string          `gorm:"type:varchar(20);not null"`
	ColorMode           string          `gorm:"type:varchar(20);not null"`
	Copies              int             `gorm:"not null;default:1"`
	DoubleSided         bool            `gorm:"not null;default:false"`
	Stapled             bool            `gorm:"not null;default:false"`
	SpecialInstructions *string         `gorm:"type:text"`
	TotalPrice          decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Status              string          `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt           time.Time       `gorm:"index"`
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "print_orders"
}
