package repository

import (
	"context"
	"errors"

	"printhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrShopNotFound is returned when a shop does not exist.
var ErrShopNotFound = errors.New("shop not found")

// ShopRepository persists the print_shops table.
type ShopRepository interface {
	Create(ctx context.Context, shop *entity.Shop) error
	Update(ctx context.Context, shop *entity.Shop) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)

	// LockOwner serializes shop creation for one owner until the surrounding
	// transaction ends. Outside a transaction the lock is released immediately.
	LockOwner(ctx context.Context, ownerID uuid.UUID) error

	// FindByOwner returns the oldest shop of an owner, or ErrShopNotFound.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error)

	// List returns shops, newest first. A nil status returns every shop.
	List(ctx context.Context, status *entity.ShopStatus) ([]*entity.Shop, error)

	// CountActive returns the number of active shops.
	CountActive(ctx context.Context) (int64, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ShopStatus) error
}
