// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"printhub/config"
	deliverycontext "printhub/internal/delivery/context"
	"printhub/internal/domain/entity"
	domainerrors "printhub/internal/domain/errors"
	"printhub/internal/domain/repository"
	"printhub/internal/domain/service"
	"printhub/internal/errors"
	"printhub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultMinPasswordLength = 8
	// bcrypt only reads the first 72 bytes of a password.
	maxPasswordBytes = 72
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager         repository.TransactionManager
	authUserRepo      repository.AuthUserRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	events            usecase.SessionEvents
	maxActiveSessions int
	minPasswordLength int
	adminSignupSecret string
	logger            *slog.Logger
	now               func() time.Time
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	AuthUserRepo     repository.AuthUserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Events           usecase.SessionEvents
	Config           *config.Config
	Logger           *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	srv := &sessionService{
		txManager:         params.TxManager,
		authUserRepo:      params.AuthUserRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		events:            params.Events,
		minPasswordLength: defaultMinPasswordLength,
		logger:            params.Logger,
		now:               time.Now,
	}
	if params.Config != nil && params.Config.Auth != nil {
		srv.maxActiveSessions = params.Config.Auth.MaxActiveSessions
		srv.adminSignupSecret = params.Config.Auth.AdminSignupSecret
		if params.Config.Auth.MinPasswordLength > 0 {
			srv.minPasswordLength = params.Config.Auth.MinPasswordLength
		}
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp creates the credential record and the profile in one transaction, then signs the user in.
func (srv *sessionService) SignUp(ctx context.Context, input usecase.SignUpInput) (*entity.Session, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting sign-up", slog.String("email", email), slog.Any("role", input.Role))

	role, err := srv.signUpRole(input)
	if err != nil {
		srv.log(ctx).Warn("Sign-up rejected", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("invalid email address"), "sign-up failed")
	}
	if len(input.Password) < srv.minPasswordLength {
		return nil, errors.Wrapf(domainerrors.ErrPasswordStrength, "password must be at least %d characters", srv.minPasswordLength)
	}
	if len(input.Password) > maxPasswordBytes {
		return nil, errors.Wrap(
			domainerrors.ErrPasswordStrength.WithDetails(fmt.Sprintf("password must be at most %d bytes", maxPasswordBytes)),
			"sign-up failed")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during sign-up", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.AuthUser{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Metadata: entity.UserMetadata{
			Role:      role.Ptr(),
			FirstName: strings.TrimSpace(input.FirstName),
			LastName:  strings.TrimSpace(input.LastName),
		},
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewAuthUserRepository().Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrAuthUserEmailExists) {
				return errors.Wrap(domainerrors.ErrUserAlreadyExists, "sign-up failed")
			}

			return errors.Wrap(err, "failed to create auth user")
		}

		profile := &entity.Profile{
			ID:        user.ID,
			FirstName: user.Metadata.FirstName,
			LastName:  user.Metadata.LastName,
			Email:     user.Email,
			Role:      role.Ptr(),
		}
		if err := repoFactory.NewProfileRepository().Create(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create profile")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute sign-up transaction", slog.String("email", email), slog.Any("error", err))

		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			return nil, err
		}

		return nil, errors.Wrap(domainerrors.ErrUserCreationFailed, err.Error())
	}

	session, err := srv.issueSession(ctx, user)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Debug("Sign-up completed", slog.Any("userID", user.ID), slog.Any("role", role))
	srv.events.Publish(entity.SessionChange{Event: entity.SessionSignedIn, UserID: user.ID, Session: session})

	return session, nil
}

func (srv *sessionService) signUpRole(input usecase.SignUpInput) (entity.Role, error) {
	if strings.TrimSpace(string(input.Role)) == "" {
		return entity.RoleUser, nil
	}

	role, ok := entity.ParseRole(string(input.Role))
	if !ok {
		return "", errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("unknown role"), "sign-up failed")
	}
	if role == entity.RoleAdmin {
		if srv.adminSignupSecret == "" ||
			subtle.ConstantTimeCompare([]byte(srv.adminSignupSecret), []byte(input.AdminSecret)) != 1 {
			return "", errors.Wrap(domainerrors.ErrForbidden, "admin sign-up not permitted")
		}
	}

	return role, nil
}

// SignInWithCredentials verifies an email and password and opens a new session.
func (srv *sessionService) SignInWithCredentials(ctx context.Context, email, password string) (*entity.Session, error) {
	email = normalizeEmail(email)
	srv.log(ctx).Debug("Starting sign-in", slog.String("email", email))

	user, err := srv.authUserRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthUserNotFound) {
			srv.log(ctx).Warn("Sign-in failed", slog.String("email", email), slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign-in failed")
		}

		return nil, errors.Wrap(err, "failed to find auth user")
	}

	// bcrypt is CPU-bound, keep it outside any transaction.
	if !srv.hasher.Check(password, user.PasswordHash) {
		srv.log(ctx).Warn("Sign-in failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign-in failed")
	}

	session, err := srv.issueSession(ctx, user)
	if err != nil {
		srv.log(ctx).Warn("Sign-in failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Debug("User signed in", slog.Any("userID", user.ID))
	srv.events.Publish(entity.SessionChange{Event: entity.SessionSignedIn, UserID: user.ID, Session: session})

	return session, nil
}

// Refresh issues a new access token carrying the current stored metadata.
// The refresh token itself stays unchanged.
func (srv *sessionService) Refresh(ctx context.Context, refreshToken string) (*entity.Session, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	stored, err := srv.refreshTokenRepo.FindByHash(ctx, hashToken(refreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token revoked")
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}
	if !stored.ExpiresAt.After(srv.now()) {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenExpired, "refresh failed")
	}

	user, err := srv.authUserRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrAuthUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find auth user")
	}

	principal := principalOf(user)
	accessToken, _, err := srv.tokenService.GenerateTokens(principal)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	session := &entity.Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    srv.now().Add(srv.tokenService.GetAccessTokenDuration()),
		Principal:    principal,
	}
	srv.events.Publish(entity.SessionChange{Event: entity.SessionTokenRefreshed, UserID: user.ID, Session: session})

	return session, nil
}

// SignOut revokes a refresh token. Revoking an unknown token is not an error.
func (srv *sessionService) SignOut(ctx context.Context, refreshToken string) error {
	srv.log(ctx).Info("Attempting to sign out")

	var userID uuid.UUID
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		// The stored hash is removed even for tokens that no longer validate.
		srv.log(ctx).Warn("Sign-out with invalid token", slog.Any("error", err))
	} else {
		userID = claims.UserID
	}

	if err := srv.refreshTokenRepo.DeleteByHash(ctx, hashToken(refreshToken)); err != nil &&
		!errors.Is(err, repository.ErrRefreshTokenNotFound) {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}

	srv.events.Publish(entity.SessionChange{Event: entity.SessionSignedOut, UserID: userID})

	return nil
}

// GetSession validates an access token and returns the session it represents.
func (srv *sessionService) GetSession(ctx context.Context, accessToken string) (*entity.Session, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	claims, err := srv.tokenService.ValidateAccessToken(accessToken)
	if err != nil {
		srv.log(ctx).Debug("Access token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, err.Error())
	}

	session := &entity.Session{
		AccessToken: accessToken,
		Principal:   *claims.Principal(),
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}

	return session, nil
}

// UpdateUserAttributes merges patch into the stored metadata and returns the merged result.
func (srv *sessionService) UpdateUserAttributes(ctx context.Context, userID uuid.UUID, patch entity.MetadataPatch) (*entity.UserMetadata, error) {
	if patch.Role != nil && !patch.Role.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("unknown role"), "update user attributes")
	}

	if patch.IsEmpty() {
		user, err := srv.authUserRepo.FindByID(ctx, userID)
		if err != nil {
			return nil, srv.mapAuthUserError(err)
		}

		return &user.Metadata, nil
	}

	merged, err := srv.authUserRepo.MergeMetadata(ctx, userID, patch)
	if err != nil {
		srv.log(ctx).Warn("Failed to merge user metadata", slog.Any("userID", userID), slog.Any("error", err))

		return nil, srv.mapAuthUserError(err)
	}
	srv.events.Publish(entity.SessionChange{Event: entity.SessionUserUpdated, UserID: userID, Metadata: merged})

	return merged, nil
}

// OnSessionChange subscribes fn to session changes.
func (srv *sessionService) OnSessionChange(fn usecase.SessionCallback) func() {
	return srv.events.Subscribe(fn)
}

func (srv *sessionService) mapAuthUserError(err error) error {
	if errors.Is(err, repository.ErrAuthUserNotFound) {
		return errors.Wrap(domainerrors.ErrUserNotFound, err.Error())
	}

	return errors.Wrap(domainerrors.ErrUserUpdateFailed, err.Error())
}

func (srv *sessionService) issueSession(ctx context.Context, user *entity.AuthUser) (*entity.Session, error) {
	principal := principalOf(user)

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(principal)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.persistRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, err
	}

	return &entity.Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    srv.now().Add(srv.tokenService.GetAccessTokenDuration()),
		Principal:    principal,
	}, nil
}

func (srv *sessionService) persistRefreshToken(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	now := srv.now()
	token := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: now.Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if srv.maxActiveSessions <= 0 {
		// No session limit: direct insert avoids unnecessary transaction overhead.
		if err := srv.refreshTokenRepo.Create(ctx, token); err != nil {
			return errors.Wrap(err, "failed to store refresh token")
		}

		return nil
	}

	// Prune, count and insert in one short transaction so expired sessions never hold a slot.
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.NewRefreshTokenRepository()

		if _, err := refreshRepo.DeleteExpired(ctx, userID, now); err != nil {
			return errors.Wrap(err, "failed to prune expired sessions")
		}

		activeSessions, err := refreshRepo.CountActive(ctx, userID, now)
		if err != nil {
			return errors.Wrap(err, "failed to count active sessions")
		}
		if activeSessions >= srv.maxActiveSessions {
			return errors.Wrap(domainerrors.ErrSessionLimitExceeded, "active session limit exceeded")
		}

		return errors.Wrap(refreshRepo.Create(ctx, token), "failed to store refresh token")
	}); err != nil {
		return errors.Wrap(err, "failed to persist refresh token")
	}

	return nil
}

func principalOf(user *entity.AuthUser) entity.Principal {
	return entity.Principal{ID: user.ID, Email: user.Email, Metadata: user.Metadata}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// hashToken returns the hex SHA-256 of a raw refresh token, the form stored in refresh_tokens.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
