package usecase

import (
	"context"

	"printhub/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminDashboard lists every profile and shop.
type AdminDashboard struct {
	Users []*entity.Profile `json:"users"`
	Shops []*entity.Shop    `json:"shops"`
}

// AdminUsecase defines administrator operations.
type AdminUsecase interface {
	Dashboard(ctx context.Context) (*AdminDashboard, error)

	// SetUserRole assigns a role to a profile and to the user's session metadata.
	SetUserRole(ctx context.Context, userID uuid.UUID, role entity.Role) error

	SetShopStatus(ctx context.Context, shopID uuid.UUID, status entity.ShopStatus) error
}
