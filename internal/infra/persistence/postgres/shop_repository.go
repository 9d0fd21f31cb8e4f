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

// shopOwnerLockClass namespaces the advisory locks taken per shop owner.
const shopOwnerLockClass = 7301

// shopRepository implements the domain.ShopRepository interface using GORM.
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{db: db}
}

// Create persists a new shop.
func (repo *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)
	if shopM.ID == uuid.Nil {
		shopM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(shopM).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return domainerrors.ErrConflict.WrapMessage("shop already exists")
		case isNotNullConstraintViolation(err):
			return domainerrors.ErrValidationFailed.WrapMessage("missing required shop information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop")
	}

	shop.ID = shopM.ID
	shop.CreatedAt = shopM.CreatedAt
	shop.UpdatedAt = shopM.UpdatedAt

	return nil
}

// LockOwner takes a transaction-scoped advisory lock on the owner id.
func (repo *shopRepository) LockOwner(ctx context.Context, ownerID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(?, hashtext(?))", shopOwnerLockClass, ownerID.String()).Error

	return errors.Wrap(err, "failed to lock shop owner")
}

// Update saves the editable profile fields of a shop.
func (repo *shopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)

	result := repo.db.WithContext(ctx).
		Model(shopM).
		Select("name", "address", "city", "state", "postal_code", "phone", "email", "description", "updated_at").
		Updates(shopM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update shop")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	shop.UpdatedAt = shopM.UpdatedAt

	return nil
}

// FindByID retrieves a shop by ID.
func (repo *shopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	var shopM model.ShopModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by id")
	}

	return toShopDomain(&shopM), nil
}

// FindByOwner returns the oldest shop of an owner.
func (repo *shopRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error) {
	var shopM model.ShopModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		First(&shopM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by owner")
	}

	return toShopDomain(&shopM), nil
}

// List returns shops, newest first, optionally filtered by status.
func (repo *shopRepository) List(ctx context.Context, status *entity.ShopStatus) ([]*entity.Shop, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var shopModels []model.ShopModel
	if err := query.Find(&shopModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	shops := make([]*entity.Shop, 0, len(shopModels))
	for i := range shopModels {
		shops = append(shops, toShopDomain(&shopModels[i]))
	}

	return shops, nil
}

// CountActive returns the number of active shops.
func (repo *shopRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("status = ?", string(entity.ShopStatusActive)).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count active shops")
	}

	return count, nil
}

// UpdateStatus sets the status of a shop.
func (repo *shopRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ShopStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update shop status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toShopDomain(data *model.ShopModel) *entity.Shop {
	if data == nil {
		return nil
	}

	return &entity.Shop{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Address:     data.Address,
		City:        data.City,
		State:       data.State,
		PostalCode:  data.PostalCode,
		Phone:       data.Phone,
		Email:       data.Email,
		Description: data.Description,
		Status:      entity.ShopStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromShopDomain(data *entity.Shop) *model.ShopModel {
	if data == nil {
		return nil
	}

	return &model.ShopModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Address:     data.Address,
		City:        data.City,
		State:       data.State,
		PostalCode:  data.PostalCode,
		Phone:       data.Phone,
		Email:       data.Email,
		Description: data.Description,
		Status:      string(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
