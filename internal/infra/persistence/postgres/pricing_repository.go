package postgres

import (
	"context"
	"time"

	"printhub/internal/domain/entity"
	domainerrors "printhub/internal/domain/errors"
	"printhub/internal/domain/repository"
	"printhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// pricingRepository implements the domain.PricingRepository interface using GORM.
type pricingRepository struct {
	db *gorm.DB
}

// NewPricingRepository is the constructor for pricingRepository.
func NewPricingRepository(db *gorm.DB) repository.PricingRepository {
	return &pricingRepository{db: db}
}

// ListByShop returns the price list of a shop.
func (repo *pricingRepository) ListByShop(ctx context.Context, shopID uuid.UUID) ([]entity.PriceEntry, error) {
	var pricingModels []model.PricingModel
	err := repo.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("paper_size ASC, color_mode ASC").
		Find(&pricingModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shop pricing")
	}

	entries := make([]entity.PriceEntry, 0, len(pricingModels))
	for i := range pricingModels {
		entries = append(entries, toPriceEntryDomain(&pricingModels[i]))
	}

	return entries, nil
}

// Upsert inserts or replaces the entry for (ShopID, PaperSize, ColorMode).
func (repo *pricingRepository) Upsert(ctx context.Context, entry *entity.PriceEntry) error {
	pricingM := fromPriceEntryDomain(entry)
	if pricingM.ID == uuid.Nil {
		pricingM.ID = uuid.New()
	}
	pricingM.UpdatedAt = time.Now()

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "shop_id"}, {Name: "paper_size"}, {Name: "color_mode"}},
			DoUpdates: clause.AssignmentColumns([]string{"single_sided_price", "double_sided_price", "updated_at"}),
		}).
		// On conflict the stored row keeps its id; read it back over the minted one.
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "id"}}}).
		Create(pricingM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrShopNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid price")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert shop pricing")
	}

	entry.ID = pricingM.ID
	entry.UpdatedAt = pricingM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toPriceEntryDomain(data *model.PricingModel) entity.PriceEntry {
	return entity.PriceEntry{
		ID:               data.ID,
		ShopID:           data.ShopID,
		PaperSize:        entity.PaperSize(data.PaperSize),
		ColorMode:        entity.ColorMode(data.ColorMode),
		SingleSidedPrice: data.SingleSidedPrice,
		DoubleSidedPrice: data.DoubleSidedPrice,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromPriceEntryDomain(data *entity.PriceEntry) *model.PricingModel {
	return &model.PricingModel{
		ID:               data.ID,
		ShopID:           data.ShopID,
		PaperSize:        string(data.PaperSize),
		ColorMode:        string(data.ColorMode),
		SingleSidedPrice: data.SingleSidedPrice,
		DoubleSidedPrice: data.DoubleSidedPrice,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
