package postgres

import (
	"context"
	"strings"

	"printhub/internal/domain/entity"
	domainerrors "printhub/internal/domain/errors"
	"printhub/internal/domain/repository"
	"printhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// authUserRepository implements the domain.AuthUserRepository interface using GORM.
type authUserRepository struct {
	db *gorm.DB
}

// NewAuthUserRepository is the constructor for authUserRepository.
func NewAuthUserRepository(db *gorm.DB) repository.AuthUserRepository {
	return &authUserRepository{db: db}
}

// Create persists a new auth user.
func (repo *authUserRepository) Create(ctx context.Context, user *entity.AuthUser) error {
	userM := fromAuthUserDomain(user)
	if userM.ID == uuid.Nil {
		userM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAuthUserEmailExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create auth user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByID retrieves an auth user by ID.
func (repo *authUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AuthUser, error) {
	var userM model.AuthUserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find auth user by id")
	}

	return toAuthUserDomain(&userM), nil
}

// FindByEmail retrieves an auth user by email, case-insensitively.
func (repo *authUserRepository) FindByEmail(ctx context.Context, email string) (*entity.AuthUser, error) {
	var userM model.AuthUserModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find auth user by email")
	}

	return toAuthUserDomain(&userM), nil
}

// MergeMetadata applies patch onto the stored metadata. The row is locked for the
// read-modify-write so concurrent merges are serialized and the last one wins.
func (repo *authUserRepository) MergeMetadata(ctx context.Context, id uuid.UUID, patch entity.MetadataPatch) (*entity.UserMetadata, error) {
	var merged entity.UserMetadata

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var userM model.AuthUserModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&userM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrAuthUserNotFound
			}

			return errors.Wrap(err, "failed to lock auth user")
		}

		merged = userM.Metadata.Merge(patch)
		userM.Metadata = merged

		if err := tx.Model(&userM).Select("metadata", "updated_at").Updates(&userM).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to update auth user metadata")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &merged, nil
}

// --- Mapper Functions ---

func toAuthUserDomain(data *model.AuthUserModel) *entity.AuthUser {
	if data == nil {
		return nil
	}

	return &entity.AuthUser{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Metadata:     data.Metadata,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromAuthUserDomain(data *entity.AuthUser) *model.AuthUserModel {
	if data == nil {
		return nil
	}

	return &model.AuthUserModel{
		ID:           data.ID,
		Email:        strings.ToLower(strings.TrimSpace(data.Email)),
		PasswordHash: data.PasswordHash,
		Metadata:     data.Metadata,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
