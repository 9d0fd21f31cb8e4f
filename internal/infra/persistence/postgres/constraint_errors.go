package postgres

import (
	"strings"

	"printhub/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE class 23 codes mapped to domain errors by the repositories.
const (
	sqlStateNotNull    = "23502"
	sqlStateForeignKey = "23503"
	sqlStateUnique     = "23505"
	sqlStateCheck      = "23514"
)

func sqlState(err error) string {
	if pgErr, ok := errors.AsType[*pgconn.PgError](err); ok {
		return pgErr.Code
	}

	return ""
}

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || sqlState(err) == sqlStateUnique
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || sqlState(err) == sqlStateForeignKey
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) || sqlState(err) == sqlStateCheck
}

// isNotNullConstraintViolation also falls back to the message text for drivers that do not
// surface a PgError.
func isNotNullConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if sqlState(err) == sqlStateNotNull {
		return true
	}
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "null value") || strings.Contains(msg, "not null")
}
