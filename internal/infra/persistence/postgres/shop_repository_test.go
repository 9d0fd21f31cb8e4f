package postgres

import (
	"context"
	"testing"

	"printhub/internal/domain/entity"
	domainerrors "printhub/internal/domain/errors"
	"printhub/internal/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestShopRepository_LockOwnerTakesAdvisoryLock(t *testing.T) {
	db := newDryRunDB(t)

	var (
		statement string
		vars      []any
	)
	err := db.Callback().Raw().After("gorm:raw").Register("test:capture_sql", func(tx *gorm.DB) {
		statement = tx.Statement.SQL.String()
		vars = tx.Statement.Vars
	})
	require.NoError(t, err)

	ownerID := uuid.New()
	require.NoError(t, NewShopRepository(db).LockOwner(context.Background(), ownerID))

	assert.Equal(t, "SELECT pg_advisory_xact_lock(?, hashtext(?))", statement)
	assert.Equal(t, []any{shopOwnerLockClass, ownerID.String()}, vars)
}

func TestShopRepository_CreateUniqueViolationIsConflict(t *testing.T) {
	db := newDryRunDB(t)

	err := db.Callback().Create().Before("gorm:create").Register("test:unique_violation", func(tx *gorm.DB) {
		_ = tx.AddError(&pgconn.PgError{Code: sqlStateUnique})
	})
	require.NoError(t, err)

	err = NewShopRepository(db).Create(context.Background(), &entity.Shop{OwnerID: uuid.New(), Name: "Campus Prints"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}
