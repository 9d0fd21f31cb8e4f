package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"printhub/internal/domain/entity"
	domainerrors "printhub/internal/domain/errors"
	"printhub/internal/errors"
	mockUsecase "printhub/internal/mocks/usecase"
	"printhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSessionTestEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockSessionUsecase, *mockUsecase.MockRouteGuard) {
	t.Helper()

	session := mockUsecase.NewMockSessionUsecase(t)
	guard := mockUsecase.NewMockRouteGuard(t)
	h := NewSessionHandler(SessionHandlerParams{Session: session, Guard: guard, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.POST("/signup", h.SignUp)
	e.POST("/login", h.Login)
	e.POST("/token/refresh", h.Refresh)
	e.POST("/logout", h.Logout)

	return e, session, guard
}

func TestSessionHandler_Login(t *testing.T) {
	e, session, guard := newSessionTestEcho(t)
	principal := entity.Principal{ID: uuid.New(), Email: "owner@example.com", Metadata: entity.UserMetadata{Role: entity.RoleShopkeeper.Ptr()}}

	session.EXPECT().SignInWithCredentials(mock.Anything, "owner@example.com", "hunter22").
		Return(&entity.Session{AccessToken: "access", RefreshToken: "refresh", Principal: principal}, nil)
	guard.EXPECT().LandingRoute(mock.Anything, &principal).Return(entity.RouteShopDashboard)

	rec := serve(e, http.MethodPost, "/login", LoginRequest{Email: "owner@example.com", Password: "hunter22"})

	requireStatus(t, rec, http.StatusOK)
	var body SessionResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
	assert.Equal(t, entity.RouteShopDashboard, body.Landing)
	assert.Equal(t, "access", body.Session.AccessToken)
}

func TestSessionHandler_Login_InvalidCredentials(t *testing.T) {
	e, session, _ := newSessionTestEcho(t)

	session.EXPECT().SignInWithCredentials(mock.Anything, "user@example.com", "wrong").
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch"))

	rec := serve(e, http.MethodPost, "/login", LoginRequest{Email: "user@example.com", Password: "wrong"})

	requireStatus(t, rec, http.StatusUnauthorized)
	assert.Equal(t, "INVALID_CREDENTIALS", decode(t, rec).Error.Code)
}

func TestSessionHandler_SignUp(t *testing.T) {
	e, session, guard := newSessionTestEcho(t)
	principal := entity.Principal{ID: uuid.New(), Email: "new@example.com"}

	session.EXPECT().SignUp(mock.Anything, mock.MatchedBy(func(in usecase.SignUpInput) bool {
		return in.Email == "new@example.com" && in.Role == entity.RoleShopkeeper && in.FirstName == "Ada"
	})).Return(&entity.Session{AccessToken: "access", Principal: principal}, nil)
	guard.EXPECT().LandingRoute(mock.Anything, &principal).Return(entity.RouteShopDashboard)

	rec := serve(e, http.MethodPost, "/signup", SignUpRequest{
		Email: "new@example.com", Password: "long-enough", FirstName: "Ada", Role: "shopkeeper",
	})

	requireStatus(t, rec, http.StatusCreated)
}

func TestSessionHandler_SignUp_Validation(t *testing.T) {
	tests := []struct {
		name  string
		body  SignUpRequest
		field string
	}{
		{name: "bad email", body: SignUpRequest{Email: "not-an-email", Password: "long-enough"}, field: "email"},
		{name: "missing password", body: SignUpRequest{Email: "a@example.com"}, field: "password"},
		{name: "unknown role", body: SignUpRequest{Email: "a@example.com", Password: "long-enough", Role: "unknown"}, field: "role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _, _ := newSessionTestEcho(t)

			rec := serve(e, http.MethodPost, "/signup", tt.body)

			requireStatus(t, rec, http.StatusBadRequest)
			env := decode(t, rec)
			assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
			assert.Contains(t, env.Error.Details, tt.field)
		})
	}
}

func TestSessionHandler_RefreshAndLogout(t *testing.T) {
	e, session, _ := newSessionTestEcho(t)

	session.EXPECT().Refresh(mock.Anything, "refresh").Return(&entity.Session{AccessToken: "fresh", RefreshToken: "refresh"}, nil)
	session.EXPECT().SignOut(mock.Anything, "refresh").Return(nil)

	rec := serve(e, http.MethodPost, "/token/refresh", RefreshRequest{RefreshToken: "refresh"})
	requireStatus(t, rec, http.StatusOK)
	assert.Contains(t, rec.Body.String(), "fresh")

	rec = serve(e, http.MethodPost, "/logout", RefreshRequest{RefreshToken: "refresh"})
	requireStatus(t, rec, http.StatusOK)
	assert.Contains(t, rec.Body.String(), entity.RouteLogin)
}

func TestSessionHandler_Refresh_Expired(t *testing.T) {
	e, session, _ := newSessionTestEcho(t)

	session.EXPECT().Refresh(mock.Anything, "stale").Return(nil, errors.WithStack(domainerrors.ErrRefreshTokenExpired))

	rec := serve(e, http.MethodPost, "/token/refresh", RefreshRequest{RefreshToken: "stale"})

	requireStatus(t, rec, domainerrors.ErrRefreshTokenExpired.HTTPCode())
}
