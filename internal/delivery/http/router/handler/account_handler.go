// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"lazycook/internal/delivery/http/middleware"
	"lazycook/internal/delivery/http/response"
	domainerrors "lazycook/internal/domain/errors"
	"lazycook/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type accountResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type sessionResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type profileResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	AccountID uuid.UUID `json:"account_id"`
}

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})

	switch result.Outcome {
	case usecase.RegisterSucceeded:
		return response.Success(c, http.StatusCreated, accountResponse{
			ID:        result.Account.ID,
			Email:     result.Account.Email,
			Name:      result.Profile.Name,
			CreatedAt: result.Account.CreatedAt,
		}, "Registrierung erfolgreich")
	case usecase.RegisterEmailTaken:
		return response.Conflict(c,
			domainerrors.ErrEmailAlreadyRegistered.ErrorCode(),
			domainerrors.ErrEmailAlreadyRegistered.Message())
	case usecase.RegisterInvalidInput:
		return response.BadRequest(c,
			domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message())
	default:
		return response.InternalServerError(c,
			domainerrors.ErrAccountCreationFailed.ErrorCode(),
			domainerrors.ErrAccountCreationFailed.Message())
	}
}

// Login handles the login request and issues a session token.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result := h.uc.Authenticate(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})

	switch result.Outcome {
	case usecase.AuthSucceeded:
		return response.Success(c, http.StatusOK, sessionResponse{
			AccessToken: result.AccessToken,
			TokenType:   "bearer",
			ExpiresAt:   result.ExpiresAt,
		}, "Anmeldung erfolgreich")
	case usecase.AuthNoSuchAccount:
		return response.NotFound(c,
			domainerrors.ErrAccountNotFound.ErrorCode(),
			domainerrors.ErrAccountNotFound.Message())
	case usecase.AuthWrongPassword:
		return response.Unauthorized(c,
			domainerrors.ErrInvalidCredentials.ErrorCode(),
			domainerrors.ErrInvalidCredentials.Message())
	default:
		return response.InternalServerError(c, "LOGIN_FAILED", "Anmeldung fehlgeschlagen")
	}
}

// GetProfile returns the profile of the authenticated account.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	accountID, ok := c.Get(middleware.KeyAccountID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	profile, err := h.uc.Profile(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profileResponse{
		ID:        profile.ID,
		Name:      profile.Name,
		AccountID: profile.AccountID,
	}, "")
}
