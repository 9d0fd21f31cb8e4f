// Package handler contains the HTTP handlers of the API.
package handler

import (
	"printhub/internal/delivery/api/response"
	deliverycontext "printhub/internal/delivery/context"
	"printhub/internal/domain/entity"
	domainerrors "printhub/internal/domain/errors"
	"printhub/internal/errors"
	"printhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the request into req and runs the struct validations.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("malformed request body"), err.Error())
	}

	return errors.WithStack(c.Validate(req))
}

// pathID parses a UUID path parameter.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(name+" must be a valid UUID"), err.Error())
	}

	return id, nil
}

// denyOrFail sends the principal back to their dashboard when err is an authorization
// denial and returns every other error to the error handler.
func denyOrFail(c echo.Context, guard usecase.RouteGuard, err error) error {
	if !errors.Is(err, domainerrors.ErrAuthorizationDenied) {
		return errors.WithStack(err)
	}

	return response.SeeOther(c, landingOf(c, guard), &entity.Notice{
		Title:       "Access Denied",
		Description: "You do not have permission to view this order.",
		Kind:        entity.NoticeDestructive,
	})
}

// landingOf uses the role the guard middleware stored and resolves it only when the
// route admitted the principal without one.
func landingOf(c echo.Context, guard usecase.RouteGuard) string {
	if role := deliverycontext.GetRole(c); role.IsValid() {
		return entity.LandingRoute(role)
	}

	return guard.LandingRoute(c.Request().Context(), deliverycontext.GetPrincipal(c))
}
