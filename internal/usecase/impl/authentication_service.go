// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "account/internal/delivery/context"
	"account/internal/domain/entity"
	domainerrors "account/internal/domain/errors"
	"account/internal/domain/repository"
	"account/internal/domain/service"
	"account/internal/usecase"
)

// authenticationService implements the AuthenticationUsecase interface.
type authenticationService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// AuthenticationServiceParams holds dependencies for AuthenticationService, injected by Fx.
type AuthenticationServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Publisher    service.EventPublisher `optional:"true"`
	Logger       *slog.Logger
}

// NewAuthenticationService is the constructor for authenticationService. It receives all dependencies as interfaces.
func NewAuthenticationService(params AuthenticationServiceParams) usecase.AuthenticationUsecase {
	return &authenticationService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authenticationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account for an unused email. The existence check is a
// fast path; the repository's uniqueness guarantee decides concurrent races.
func (srv *authenticationService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	email := entity.NormalizeEmail(input.Email)

	existing, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		srv.log(ctx).Warn("Registration rejected, email already registered", slog.String("email", email))

		return nil, errors.WithStack(domainerrors.ErrUserAlreadyExists)
	}
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, repositoryError(err, "failed to look up user by email")
	}

	user := entity.NewUser(email, input.Login, input.Avatar)
	if _, err := user.SetPassword(srv.hasher, input.Password); err != nil {
		return nil, srv.passwordError(ctx, err)
	}

	saved, err := srv.userRepo.Save(ctx, user)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			srv.log(ctx).Warn("Registration lost a race for the same email", slog.String("email", email))
		}

		return nil, repositoryError(err, "failed to save user")
	}

	srv.log(ctx).Info("User registered", slog.String("userID", saved.ID.String()))
	srv.publishRegistered(ctx, saved)

	return saved, nil
}

// VerifyUser checks credentials. An unknown email and a wrong password are
// reported with different kinds.
func (srv *authenticationService) VerifyUser(ctx context.Context, input *usecase.VerifyUserInput) (*entity.User, error) {
	email := entity.NormalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed, unknown email", slog.String("email", email))

			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, repositoryError(err, "failed to look up user by email")
	}

	if !user.ComparePassword(srv.hasher, input.Password) {
		srv.log(ctx).Warn("Login failed, wrong password", slog.String("userID", user.ID.String()))

		return nil, errors.WithStack(domainerrors.ErrUserPasswordWrong)
	}

	srv.log(ctx).Debug("User verified", slog.String("userID", user.ID.String()))

	return user, nil
}

// GetUser returns the user with the given id.
func (srv *authenticationService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, repositoryError(err, "failed to find user by id")
	}

	return user, nil
}

// GetUserByEmail returns the user registered under email.
func (srv *authenticationService) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	email = entity.NormalizeEmail(email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound.WithDetails("email " + email))
		}

		return nil, repositoryError(err, "failed to find user by email")
	}

	return user, nil
}

// ChangePassword replaces the password after checking the current one.
// Nothing is written when the current password does not match.
func (srv *authenticationService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) (*entity.User, error) {
	user, err := srv.GetUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if !user.ComparePassword(srv.hasher, input.Password) {
		srv.log(ctx).Warn("Password change rejected, current password mismatch", slog.String("userID", user.ID.String()))

		return nil, errors.WithStack(domainerrors.ErrPasswordMismatch)
	}

	if _, err := user.SetPassword(srv.hasher, input.NewPassword); err != nil {
		return nil, srv.passwordError(ctx, err)
	}

	updated, err := srv.userRepo.Update(ctx, user.ID, user)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, repositoryError(err, "failed to update user password")
	}

	srv.log(ctx).Info("Password changed", slog.String("userID", updated.ID.String()))

	return updated, nil
}

// CreateUserToken signs a fresh access/refresh pair for user. Signing
// failures are logged here and surface only as ErrTokenCreationFailed.
func (srv *authenticationService) CreateUserToken(ctx context.Context, user *entity.User) (service.TokenPair, error) {
	if user == nil {
		srv.log(ctx).Error("Token creation requested without a user")

		return service.TokenPair{}, errors.WithStack(domainerrors.ErrTokenCreationFailed)
	}

	pair, err := srv.tokenService.CreateTokenPair(service.TokenPayload{
		UserID: user.ID,
		Email:  user.Email,
		Login:  user.Login,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to sign token pair", slog.String("userID", user.ID.String()), slog.Any("error", err))

		return service.TokenPair{}, errors.WithStack(domainerrors.ErrTokenCreationFailed)
	}

	return pair, nil
}

// RefreshUserToken exchanges a valid refresh token for a new pair. The user
// is reloaded so a deleted account cannot keep refreshing.
func (srv *authenticationService) RefreshUserToken(ctx context.Context, refreshToken string) (service.TokenPair, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		srv.log(ctx).Debug("Refresh token rejected", slog.Any("error", err))

		return service.TokenPair{}, errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
	}

	userID, err := claims.UserID()
	if err != nil {
		return service.TokenPair{}, errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
	}

	user, err := srv.GetUser(ctx, userID)
	if err != nil {
		return service.TokenPair{}, err
	}

	return srv.CreateUserToken(ctx, user)
}

// publishRegistered announces a new account. Failures are logged and never
// fail the registration that already committed.
func (srv *authenticationService) publishRegistered(ctx context.Context, user *entity.User) {
	if srv.publisher == nil {
		return
	}

	event := &service.AccountEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      service.EventAccountRegistered,
		UserID:    user.ID.String(),
		Email:     user.Email,
		Login:     user.Login,
	}
	if err := srv.publisher.PublishAccountEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish account event",
			slog.String("type", event.Type),
			slog.String("userID", event.UserID),
			slog.Any("error", err),
		)
	}
}

func (srv *authenticationService) passwordError(ctx context.Context, err error) error {
	if errors.Is(err, entity.ErrEmptyPassword) {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("password must not be empty"))
	}

	srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

	return errors.WithStack(domainerrors.ErrPasswordHashFailed)
}

// repositoryError keeps errors the repository already classified and turns
// anything else into an internal database error.
func repositoryError(err error, details string) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return errors.Wrap(err, details)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
