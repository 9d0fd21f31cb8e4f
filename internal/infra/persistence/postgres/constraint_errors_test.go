package postgres

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolations(t *testing.T) {
	wrapped := func(code string) error {
		return fmt.Errorf("insert: %w", &pgconn.PgError{Code: code})
	}

	assert.True(t, isUniqueConstraintViolation(wrapped(sqlStateUnique)))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(wrapped(sqlStateForeignKey)))

	assert.True(t, isForeignKeyConstraintViolation(wrapped(sqlStateForeignKey)))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))

	assert.True(t, isCheckConstraintViolation(wrapped(sqlStateCheck)))
	assert.False(t, isCheckConstraintViolation(gorm.ErrRecordNotFound))

	assert.True(t, isNotNullConstraintViolation(wrapped(sqlStateNotNull)))
	assert.True(t, isNotNullConstraintViolation(fmt.Errorf(`null value in column "name" violates not-null constraint`)))
	assert.False(t, isNotNullConstraintViolation(nil))
	assert.False(t, isNotNullConstraintViolation(gorm.ErrRecordNotFound))
}
