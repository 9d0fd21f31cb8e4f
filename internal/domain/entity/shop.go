package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShopStatus is the availability of a print shop.
type ShopStatus string

const (
	ShopStatusActive   ShopStatus = "active"
	ShopStatusInactive ShopStatus = "inactive"
)

// IsValid checks if the status is a defined value.
func (s ShopStatus) IsValid() bool {
	return s == ShopStatusActive || s == ShopStatusInactive
}

// Shop is a print shop run by a shopkeeper.
type Shop struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	City        string     `json:"city"`
	State       string     `json:"state"`
	PostalCode  string     `json:"postal_code"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email"`
	Description string     `json:"description"`
	Status      ShopStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsActive reports whether the shop accepts new orders.
func (s *Shop) IsActive() bool {
	return s.Status == ShopStatusActive
}
