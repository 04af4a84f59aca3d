package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"account/internal/domain/entity"
	domainerrors "account/internal/domain/errors"
	"account/internal/domain/repository"
	"account/internal/domain/service"
	mockRepo "account/internal/mocks/repository"
	mockSvc "account/internal/mocks/service"
	"account/internal/usecase"
)

// authenticationServiceFixtures holds all test dependencies for authentication service tests.
type authenticationServiceFixtures struct {
	service      usecase.AuthenticationUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	publisher    *mockSvc.MockEventPublisher
}

func createTestAuthenticationService(t *testing.T) authenticationServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewAuthenticationService(AuthenticationServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Publisher:    publisher,
		Logger:       newDiscardLogger(),
	})

	return authenticationServiceFixtures{
		service:      svc,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		publisher:    publisher,
	}
}

func storedUser(email string) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Email:        email,
		Login:        "alice",
		PasswordHash: "hashed_secret1",
	}
}

func assertAppErrorKind(t *testing.T, err error, kind domainerrors.Kind) {
	t.Helper()

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	assert.Equal(t, kind, appErr.Kind())
}

func TestAuthenticationService_Register_Success(t *testing.T) {
	fx := createTestAuthenticationService(t)
	ctx := context.Background()
	input := &usecase.RegisterInput{Email: "A@X.com", Login: "alice", Password: "secret1"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret1").Return("hashed_secret1", nil)
	fx.userRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) (*entity.User, error) {
			assert.Equal(t, "a@x.com", user.Email)
			assert.Equal(t, "hashed_secret1", user.PasswordHash)
			saved := *user
			saved.ID = uuid.New()

			return &saved, nil
		})
	fx.publisher.EXPECT().
		PublishAccountEvent(ctx, mock.MatchedBy(func(event *service.AccountEvent) bool {
			return event.Type == service.EventAccountRegistered && event.Email == "a@x.com" && event.Login == "alice"
		})).
		Return(nil)

	user, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "hashed_secret1", user.PasswordHash)
}

func TestAuthenticationService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthenticationService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(storedUser("a@x.com"), nil)

	user, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "a@x.com", Login: "alice", Password: "secret1"})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	assertAppErrorKind(t, err, domainerrors.KindConflict)
	assert.Equal(t, "user already exists", errors.Cause(err).Error())
}

func TestAuthenticationService_Register_SaveRaceIsConflict(t *testing.T) {
	fx := createTestAuthenticationService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret1").Return("hashed_secret1", nil)
	fx.userRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists"))

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "a@x.com", Login: "alice", Password: "secret1"})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	assertAppErrorKind(t, err, domainerrors.KindConflict)
}

func TestAuthenticationService_Register_RepositoryFailure(t *testing.T) {
	fx := createTestAuthenticationService(t)
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, dbErr)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "a@x.com", Login: "alice", Password: "secret1"})

	assert.ErrorIs(t, err, dbErr)
	assertAppErrorKind(t, err, domainerrors.KindInternal)
}

func TestAuthenticationService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthenticationService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret1").Return("", errors.New("entropy exhausted"))

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "a@x.com", Login: "alice", Password: "secret1"})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	assertAppErrorKind(t, err, domainerrors.KindInternal)
}

func TestAuthenticationService_Register_EmptyPassword(t *testing.T) {
	fx := createTestAuthenticationService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "a@x.com", Login: "alice"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthenticationService_Register_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestAuthenticationService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret1").Return("hashed_secret1", nil)
	fx.userRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.User")).Return(storedUser("a@x.com"), nil)
	fx.publisher.EXPECT().PublishAccountEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	user, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "a@x.com", Login: "alice", Password: "secret1"})

	require.NoError(t, err)
	assert.NotNil(t, user)
}

func TestAuthenticationService_VerifyUser(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthenticationService(t)
		existing := storedUser("a@x.com")
		fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(existing, nil)
		fx.hasher.EXPECT().Check("secret1", "hashed_secret1").Return(true)

		user, err := fx.service.VerifyUser(ctx, &usecase.VerifyUserInput{Email: " A@x.com", Password: "secret1"})

		require.NoError(t, err)
		assert.Equal(t, existing, user)
	})

	t.Run("unknown email is not found", func(t *testing.T) {
		fx := createTestAuthenticationService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@x.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.VerifyUser(ctx, &usecase.VerifyUserInput{Email: "nobody@x.com", Password: "secret1"})

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
		assertAppErrorKind(t, err, domainerrors.KindNotFound)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		fx := createTestAuthenticationService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(storedUser("a@x.com"), nil)
		fx.hasher.EXPECT().Check("secret2", "hashed_secret1").Return(false)

		_, err := fx.service.VerifyUser(ctx, &usecase.VerifyUserInput{Email: "a@x.com", Password: "secret2"})

		assert.ErrorIs(t, err, domainerrors.ErrUserPasswordWrong)
		assertAppErrorKind(t, err, domainerrors.KindUnauthorized)
	})
}

func TestAuthenticationService_GetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		fx := createTestAuthenticationService(t)
		existing := storedUser("a@x.com")
		fx.userRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)

		user, err := fx.service.GetUser(ctx, existing.ID)

		require.NoError(t, err)
		assert.Equal(t, existing, user)
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestAuthenticationService(t)
		id := uuid.New()
		fx.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.GetUser(ctx, id)

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
		assertAppErrorKind(t, err, domainerrors.KindNotFound)
	})
}

func TestAuthenticationService_GetUserByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		fx := createTestAuthenticationService(t)
		existing := storedUser("a@x.com")
		fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(existing, nil)

		user, err := fx.service.GetUserByEmail(ctx, "A@X.COM")

		require.NoError(t, err)
		assert.Equal(t, existing.ID, user.ID)
	})

	t.Run("not found names the email", func(t *testing.T) {
		fx := createTestAuthenticationService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@x.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.GetUserByEmail(ctx, "nobody@x.com")

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Contains(t, appErr.Details(), "nobody@x.com")
	})
}

func TestAuthenticationService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthenticationService(t)
		existing := storedUser("a@x.com")
		fx.userRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
		fx.hasher.EXPECT().Check("secret1", "hashed_secret1").Return(true)
		fx.hasher.EXPECT().Hash("secret2").Return("hashed_secret2", nil)
		fx.userRepo.EXPECT().
			Update(ctx, existing.ID, mock.AnythingOfType("*entity.User")).
			RunAndReturn(func(_ context.Context, _ uuid.UUID, user *entity.User) (*entity.User, error) {
				assert.Equal(t, "hashed_secret2", user.PasswordHash)

				return user, nil
			})

		user, err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
			UserID:      existing.ID,
			Password:    "secret1",
			NewPassword: "secret2",
		})

		require.NoError(t, err)
		assert.Equal(t, "hashed_secret2", user.PasswordHash)
	})

	t.Run("unknown user is checked before the password", func(t *testing.T) {
		fx := createTestAuthenticationService(t)
		id := uuid.New()
		fx.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{UserID: id, Password: "secret1", NewPassword: "secret2"})

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("wrong current password writes nothing", func(t *testing.T) {
		fx := createTestAuthenticationService(t)
		existing := storedUser("a@x.com")
		fx.userRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
		fx.hasher.EXPECT().Check("nope12", "hashed_secret1").Return(false)

		_, err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
			UserID:      existing.ID,
			Password:    "nope12",
			NewPassword: "secret2",
		})

		assert.ErrorIs(t, err, domainerrors.ErrPasswordMismatch)
		assertAppErrorKind(t, err, domainerrors.KindBadRequest)
		assert.Equal(t, "wrong password", errors.Cause(err).Error())
		fx.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
		fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
	})
}

func TestAuthenticationService_CreateUserToken(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthenticationService(t)
		user := storedUser("a@x.com")
		want := service.TokenPair{AccessToken: "access", RefreshToken: "refresh"}
		fx.tokenService.EXPECT().
			CreateTokenPair(service.TokenPayload{UserID: user.ID, Email: user.Email, Login: user.Login}).
			Return(want, nil)

		pair, err := fx.service.CreateUserToken(ctx, user)

		require.NoError(t, err)
		assert.Equal(t, want, pair)
	})

	t.Run("signing failure", func(t *testing.T) {
		fx := createTestAuthenticationService(t)
		fx.tokenService.EXPECT().
			CreateTokenPair(mock.Anything).
			Return(service.TokenPair{}, errors.New("key unavailable"))

		pair, err := fx.service.CreateUserToken(ctx, storedUser("a@x.com"))

		assert.Empty(t, pair)
		assert.ErrorIs(t, err, domainerrors.ErrTokenCreationFailed)
		assertAppErrorKind(t, err, domainerrors.KindInternal)
		assert.Equal(t, "token creation failed", errors.Cause(err).Error())
		assert.NotContains(t, err.Error(), "key unavailable")
	})

	t.Run("nil user", func(t *testing.T) {
		fx := createTestAuthenticationService(t)

		_, err := fx.service.CreateUserToken(ctx, nil)

		assert.ErrorIs(t, err, domainerrors.ErrTokenCreationFailed)
	})
}

func TestAuthenticationService_RefreshUserToken(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthenticationService(t)
		user := storedUser("a@x.com")
		claims := &service.Claims{Type: service.TokenTypeRefresh}
		claims.Subject = user.ID.String()
		want := service.TokenPair{AccessToken: "access2", RefreshToken: "refresh2"}

		fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(claims, nil)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.tokenService.EXPECT().CreateTokenPair(mock.Anything).Return(want, nil)

		pair, err := fx.service.RefreshUserToken(ctx, "refresh")

		require.NoError(t, err)
		assert.Equal(t, want, pair)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestAuthenticationService(t)
		fx.tokenService.EXPECT().ValidateRefreshToken("bogus").Return(nil, errors.New("token is expired"))

		_, err := fx.service.RefreshUserToken(ctx, "bogus")

		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
		assertAppErrorKind(t, err, domainerrors.KindUnauthorized)
	})

	t.Run("deleted user", func(t *testing.T) {
		fx := createTestAuthenticationService(t)
		id := uuid.New()
		claims := &service.Claims{Type: service.TokenTypeRefresh}
		claims.Subject = id.String()

		fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(claims, nil)
		fx.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.RefreshUserToken(ctx, "refresh")

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}
