package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lazycook/internal/delivery/http/middleware"
	"lazycook/internal/delivery/http/validator"
	"lazycook/internal/domain/entity"
	"lazycook/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAccountUsecase returns canned results; the handler tests only care
// about the outcome-to-HTTP mapping.
type stubAccountUsecase struct {
	registerResult *usecase.RegisterResult
	authResult     *usecase.AuthResult
	profile        *entity.Profile
	profileErr     error
}

func (s *stubAccountUsecase) Register(_ context.Context, _ *usecase.RegisterInput) *usecase.RegisterResult {
	return s.registerResult
}

func (s *stubAccountUsecase) Authenticate(_ context.Context, _ *usecase.LoginInput) *usecase.AuthResult {
	return s.authResult
}

func (s *stubAccountUsecase) Profile(_ context.Context, _ uuid.UUID) (*entity.Profile, error) {
	return s.profile, s.profileErr
}

func newAccountHandlerContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAccountHandler_Register_Created(t *testing.T) {
	t.Parallel()

	accountID := uuid.New()
	uc := &stubAccountUsecase{
		registerResult: &usecase.RegisterResult{
			Outcome: usecase.RegisterSucceeded,
			Account: &entity.Account{ID: accountID, Email: "anna@example.com"},
			Profile: &entity.Profile{Name: "Anna", AccountID: accountID},
		},
	}
	handler := NewAccountHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newAccountHandlerContext(t, http.MethodPost, "/api/register",
		`{"email":"anna@example.com","password":"pw","name":"Anna"}`)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "anna@example.com")
	assert.Contains(t, rec.Body.String(), "Registrierung erfolgreich")
}

func TestAccountHandler_Register_EmailTaken(t *testing.T) {
	t.Parallel()

	uc := &stubAccountUsecase{
		registerResult: &usecase.RegisterResult{Outcome: usecase.RegisterEmailTaken},
	}
	handler := NewAccountHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newAccountHandlerContext(t, http.MethodPost, "/api/register",
		`{"email":"taken@example.com","password":"pw"}`)

	require.NoError(t, handler.Register(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email schon in einem Konto registriert")
}

func TestAccountHandler_Register_InvalidEmail(t *testing.T) {
	t.Parallel()

	uc := &stubAccountUsecase{}
	handler := NewAccountHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, _ := newAccountHandlerContext(t, http.MethodPost, "/api/register",
		`{"email":"not-an-email","password":"pw"}`)

	// The validator rejects the payload before the usecase is reached;
	// the error handler turns this into a 400.
	assert.Error(t, handler.Register(c))
}

func TestAccountHandler_Login_Succeeded(t *testing.T) {
	t.Parallel()

	uc := &stubAccountUsecase{
		authResult: &usecase.AuthResult{
			Outcome:     usecase.AuthSucceeded,
			AccessToken: "signed-token",
			ExpiresAt:   time.Now().Add(15 * time.Minute),
		},
	}
	handler := NewAccountHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newAccountHandlerContext(t, http.MethodPost, "/api/login",
		`{"email":"anna@example.com","password":"pw"}`)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed-token")
	assert.Contains(t, rec.Body.String(), `"token_type":"bearer"`)
}

func TestAccountHandler_Login_NoSuchAccount(t *testing.T) {
	t.Parallel()

	uc := &stubAccountUsecase{
		authResult: &usecase.AuthResult{Outcome: usecase.AuthNoSuchAccount},
	}
	handler := NewAccountHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newAccountHandlerContext(t, http.MethodPost, "/api/login",
		`{"email":"ghost@example.com","password":"pw"}`)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Für diese Email ist kein Konto hinterlegt")
}

func TestAccountHandler_GetProfile_OK(t *testing.T) {
	t.Parallel()

	accountID := uuid.New()
	uc := &stubAccountUsecase{
		profile: &entity.Profile{ID: uuid.New(), Name: "Anna", AccountID: accountID},
	}
	handler := NewAccountHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newAccountHandlerContext(t, http.MethodGet, "/api/profile", "")
	c.Set(middleware.KeyAccountID, accountID)

	require.NoError(t, handler.GetProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Anna")
	assert.Contains(t, rec.Body.String(), accountID.String())
}

func TestAccountHandler_GetProfile_MissingAccountID(t *testing.T) {
	t.Parallel()

	handler := NewAccountHandler(&stubAccountUsecase{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newAccountHandlerContext(t, http.MethodGet, "/api/profile", "")

	require.NoError(t, handler.GetProfile(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAccountHandler_Login_WrongPassword(t *testing.T) {
	t.Parallel()

	uc := &stubAccountUsecase{
		authResult: &usecase.AuthResult{Outcome: usecase.AuthWrongPassword},
	}
	handler := NewAccountHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newAccountHandlerContext(t, http.MethodPost, "/api/login",
		`{"email":"anna@example.com","password":"wrong"}`)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Falsches Passwort")
}
