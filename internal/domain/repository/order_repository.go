package repository

import (
	"context"
	"errors"

	"printhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository persists the print_orders table.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByUser returns a user's orders, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// ListByShop returns a shop's orders, newest first.
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.Order, error)

	// UpdateStatus moves an order to status only while it is still in from, and
	// returns ErrOrderNotFound when no row matched.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error
}
