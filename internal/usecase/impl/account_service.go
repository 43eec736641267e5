// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"lazycook/config"
	deliverycontext "lazycook/internal/delivery/context"
	"lazycook/internal/domain/entity"
	domainerrors "lazycook/internal/domain/errors"
	"lazycook/internal/domain/repository"
	"lazycook/internal/domain/service"
	"lazycook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultStorageTimeout = 5 * time.Second

// accountService implements the AccountUsecase interface. It is
// stateless between calls; all state lives in the store.
type accountService struct {
	txManager      repository.TransactionManager
	accountRepo    repository.AccountRepository
	profileRepo    repository.ProfileRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	storageTimeout time.Duration
	logger         *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	ProfileRepo  repository.ProfileRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	storageTimeout := defaultStorageTimeout
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.StorageTimeout > 0 {
		storageTimeout = params.Config.Auth.StorageTimeout
	}

	return &accountService{
		txManager:      params.TxManager,
		accountRepo:    params.AccountRepo,
		profileRepo:    params.ProfileRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		storageTimeout: storageTimeout,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete registration: derive the salted
// secret, then create the account row and its profile row in a single
// transaction so two concurrent registrations for the same email can
// never both succeed.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) *usecase.RegisterResult {
	if input == nil || strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return &usecase.RegisterResult{Outcome: usecase.RegisterInvalidInput}
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	salt, secret, err := srv.hasher.Derive(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to derive password secret", slog.Any("error", err))

		return &usecase.RegisterResult{Outcome: usecase.RegisterFailed}
	}

	account := &entity.Account{
		Email:        input.Email,
		PasswordHash: secret,
		Salt:         salt,
	}
	profile := &entity.Profile{Name: displayName(input)}

	storageCtx, cancel := context.WithTimeout(ctx, srv.storageTimeout)
	defer cancel()

	err = srv.txManager.Execute(storageCtx, func(repoFactory repository.RepositoryFactory) error {
		txAccountRepo := repoFactory.AccountRepo()

		exists, err := txAccountRepo.EmailExists(storageCtx, input.Email)
		if err != nil {
			return err
		}
		if exists {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already registered")
		}

		if err := txAccountRepo.Create(storageCtx, account); err != nil {
			return err
		}

		profile.AccountID = account.ID

		return repoFactory.ProfileRepo().Create(storageCtx, profile)
	})

	switch {
	case err == nil:
		srv.log(ctx).Debug("Registration completed", slog.Any("accountID", account.ID))

		return &usecase.RegisterResult{
			Outcome: usecase.RegisterSucceeded,
			Account: account,
			Profile: profile,
		}
	case errors.Is(err, domainerrors.ErrEmailAlreadyRegistered):
		// Either the pre-check caught the address or a concurrent
		// registration won the race at the constraint. The konto table
		// carries a second unique column (salt), so confirm the email is
		// really taken before reporting it as such.
		if !srv.emailTaken(ctx, input.Email) {
			srv.log(ctx).Error("Duplicate key on registration but email is free",
				slog.String("email", input.Email), slog.Any("error", err))

			return &usecase.RegisterResult{Outcome: usecase.RegisterFailed}
		}

		srv.log(ctx).Info("Registration rejected: email taken", slog.String("email", input.Email))

		return &usecase.RegisterResult{Outcome: usecase.RegisterEmailTaken}
	case errors.Is(err, domainerrors.ErrProfileNameTaken):
		srv.log(ctx).Info("Registration rejected: display name taken", slog.String("name", profile.Name))

		return &usecase.RegisterResult{Outcome: usecase.RegisterInvalidInput}
	default:
		// Diagnostic detail stays in the logs; the caller only sees "failed".
		srv.log(ctx).Error("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return &usecase.RegisterResult{Outcome: usecase.RegisterFailed}
	}
}

// Authenticate verifies credentials against the stored salt and secret
// and issues a session token on success.
func (srv *accountService) Authenticate(ctx context.Context, input *usecase.LoginInput) *usecase.AuthResult {
	if input == nil {
		return &usecase.AuthResult{Outcome: usecase.AuthFailed}
	}

	storageCtx, cancel := context.WithTimeout(ctx, srv.storageTimeout)
	defer cancel()

	account, err := srv.accountRepo.FindByEmail(storageCtx, input.Email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return &usecase.AuthResult{Outcome: usecase.AuthNoSuchAccount}
	}
	if err != nil {
		srv.log(ctx).Error("Login lookup failed", slog.String("email", input.Email), slog.Any("error", err))

		return &usecase.AuthResult{Outcome: usecase.AuthFailed}
	}

	if !srv.hasher.Verify(input.Password, account.Salt, account.PasswordHash) {
		srv.log(ctx).Info("Login rejected: wrong password", slog.String("email", input.Email))

		return &usecase.AuthResult{Outcome: usecase.AuthWrongPassword}
	}

	token, expiresAt, err := srv.tokenService.GenerateAccessToken(account.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.Any("accountID", account.ID), slog.Any("error", err))

		return &usecase.AuthResult{Outcome: usecase.AuthFailed}
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("accountID", account.ID))

	return &usecase.AuthResult{
		Outcome:     usecase.AuthSucceeded,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}
}

// Profile retrieves the profile owned by the given account.
func (srv *accountService) Profile(ctx context.Context, accountID uuid.UUID) (*entity.Profile, error) {
	storageCtx, cancel := context.WithTimeout(ctx, srv.storageTimeout)
	defer cancel()

	profile, err := srv.profileRepo.FindByAccountID(storageCtx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "no profile for account")
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return profile, nil
}

// emailTaken re-checks the address on a fresh connection after a
// duplicate-key rollback, so only a genuinely taken email is reported
// as such. A failed check counts as taken, the overwhelmingly likely cause.
func (srv *accountService) emailTaken(ctx context.Context, email string) bool {
	checkCtx, cancel := context.WithTimeout(ctx, srv.storageTimeout)
	defer cancel()

	exists, err := srv.accountRepo.EmailExists(checkCtx, email)
	if err != nil {
		srv.log(ctx).Warn("Email re-check failed", slog.String("email", email), slog.Any("error", err))

		return true
	}

	return exists
}

// displayName resolves the profile name for a registration. When the
// caller supplies none, the local part of the email plus a random
// suffix keeps the unique constraint satisfiable.
func displayName(input *usecase.RegisterInput) string {
	if name := strings.TrimSpace(input.Name); name != "" {
		return name
	}

	local := input.Email
	if at := strings.IndexByte(local, '@'); at > 0 {
		local = local[:at]
	}

	return local + "-" + uuid.NewString()[:8]
}
