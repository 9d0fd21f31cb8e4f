package model

import (
	"time"

	"github.com/google/uuid"
)

// ShopModel mirrors the 'print_shops' table.
type ShopModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Address     string    `gorm:"type:text"`
	City        string    `gorm:"type:varchar(100)"`
	State       string    `gorm:"type:varchar(100)"`
	PostalCode  string    `gorm:"type:varchar(20)"`
	Phone       string    `gorm:"type:varchar(50)"`
	Email       string    `gorm:"type:varchar(255)"`
	Description string    `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(20);not null;default:'active';index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "print_shops"
}
