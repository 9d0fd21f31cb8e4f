package postgres

import (
	"context"

	"printhub/internal/domain/entity"
	domainerrors "printhub/internal/domain/errors"
	"printhub/internal/domain/repository"
	"printhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)
	if orderM.ID == uuid.Nil {
		orderM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrShopNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves an order by ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// ListByUser returns a user's orders, newest first.
func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	return repo.list(ctx, "user_id = ?", userID)
}

// ListByShop returns a shop's orders, newest first.
func (repo *orderRepository) ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.Order, error) {
	return repo.list(ctx, "shop_id = ?", shopID)
}

// UpdateStatus moves an order from one status to another. The from condition makes
// concurrent updates of the same order fail instead of silently overwriting each other.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Update("status", string(to))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func (repo *orderRepository) list(ctx context.Context, where string, arg uuid.UUID) ([]*entity.Order, error) {
	var orderModels []model.OrderModel
	if err := repo.db.WithContext(ctx).Where(where, arg).Order("created_at DESC").Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for i := range orderModels {
		orders = append(orders, toOrderDomain(&orderModels[i]))
	}

	return orders, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:                  data.ID,
		UserID:              data.UserID,
		ShopID:              data.ShopID,
		DocumentRef:         data.DocumentURL,
		FileName:            data.FileName,
		PaperSize:           entity.PaperSize(data.PaperSize),
		ColorMode:           entity.ColorMode(data.ColorMode),
		Copies:              data.Copies,
		DoubleSided:         data.DoubleSided,
		Stapled:             data.Stapled,
		SpecialInstructions: data.SpecialInstructions,
		TotalPrice:          data.TotalPrice,
		Status:              entity.OrderStatus(data.Status),
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:                  data.ID,
		UserID:              data.UserID,
		ShopID:              data.ShopID,
		DocumentURL:         data.DocumentRef,
		FileName:            data.FileName,
		PaperSize:           string(data.PaperSize),
		ColorMode:           string(data.ColorMode),
		Copies:              data.Copies,
		DoubleSided:         data.DoubleSided,
		Stapled:             data.Stapled,
		SpecialInstructions: data.SpecialInstructions,
		TotalPrice:          data.TotalPrice,
		Status:              string(data.Status),
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
