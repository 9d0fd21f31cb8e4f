package handler

import (
	"log/slog"
	"net/http"

	"printhub/internal/delivery/api/response"
	"printhub/internal/domain/entity"
	"printhub/internal/errors"
	"printhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	Session usecase.SessionUsecase
	Guard   usecase.RouteGuard
	Logger  *slog.Logger
}

// SessionHandler serves sign-up, sign-in, refresh and sign-out.
type SessionHandler struct {
	session usecase.SessionUsecase
	guard   usecase.RouteGuard
	logger  *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler.
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		session: params.Session,
		guard:   params.Guard,
		logger:  params.Logger,
	}
}

// SignUpRequest represents the request body for creating an account.
type SignUpRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	FirstName   string `json:"first_name" validate:"max=100"`
	LastName    string `json:"last_name" validate:"max=100"`
	Role        string `json:"role" validate:"omitempty,assignable_role"`
	AdminSecret string `json:"admin_secret"`
}

// LoginRequest represents the request body for signing in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest carries a refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// SessionResponse is a session with the dashboard the client should open.
type SessionResponse struct {
	Session *entity.Session `json:"session"`
	Landing string          `json:"landing"`
}

// SignUp creates an account and signs it in.
func (h *SessionHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	session, err := h.session.SignUp(c.Request().Context(), usecase.SignUpInput{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Role:        entity.Role(req.Role),
		AdminSecret: req.AdminSecret,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, h.withLanding(c, session))
}

// Login signs in with email and password.
func (h *SessionHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	session, err := h.session.SignInWithCredentials(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.withLanding(c, session))
}

// Refresh issues a new access token for a refresh token.
func (h *SessionHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	session, err := h.session.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session)
}

// Logout revokes a refresh token.
func (h *SessionHandler) Logout(c echo.Context) error {
	var req RefreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.session.SignOut(c.Request().Context(), req.RefreshToken); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"redirect": entity.RouteLogin})
}

func (h *SessionHandler) withLanding(c echo.Context, session *entity.Session) SessionResponse {
	return SessionResponse{
		Session: session,
		Landing: h.guard.LandingRoute(c.Request().Context(), &session.Principal),
	}
}
