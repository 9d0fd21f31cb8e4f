package errors

import (
	"net/http"
	"testing"

	"printhub/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	detailed := ErrShopInactive.WithDetails("shop 42 is inactive")
	wrapped := errors.Wrap(detailed, "create order")

	assert.True(t, errors.Is(wrapped, ErrShopInactive))
	assert.False(t, errors.Is(wrapped, ErrShopNotFound))
	assert.Empty(t, ErrShopInactive.Details(), "predefined value must stay untouched")

	appErr, ok := errors.AsType[AppError](wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, "SHOP_INACTIVE", appErr.ErrorCode())
	assert.Equal(t, "shop 42 is inactive", appErr.Details())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection refused")
	err := errors.Wrap(NewDatabaseExecuteError(cause, "failed to create order"), "place order")

	assert.True(t, errors.Is(err, cause))

	appErr, ok := errors.AsType[AppError](err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.Equal(t, "Database operation failed", appErr.Message())
	assert.Contains(t, err.Error(), "connection refused")
}
