package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	deliverycontext "account/internal/delivery/context"
	"account/internal/delivery/http/middleware"
	"account/internal/delivery/http/response"
	"account/internal/delivery/http/validator"
	"account/internal/domain/entity"
	domainerrors "account/internal/domain/errors"
	"account/internal/domain/service"
	mockUsecase "account/internal/mocks/usecase"
	"account/internal/usecase"
)

type handlerFixture struct {
	echo    *echo.Echo
	usecase *mockUsecase.MockAuthenticationUsecase
	handler *AuthenticationHandler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := mockUsecase.NewMockAuthenticationUsecase(t)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return &handlerFixture{
		echo:    e,
		usecase: uc,
		handler: NewAuthenticationHandler(AuthenticationHandlerParams{AuthUC: uc, Logger: logger}),
	}
}

// withClaims stands in for the auth middleware.
func withClaims(userID uuid.UUID) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := &service.Claims{Email: "a@x.com", Login: "alice", Type: service.TokenTypeAccess}
			claims.Subject = userID.String()
			claims.ExpiresAt = jwt.NewNumericDate(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
			deliverycontext.SetClaims(c, claims)

			return next(c)
		}
	}
}

func (f *handlerFixture) do(method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	var decoded map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &decoded)

	return rec, decoded
}

func errorCode(t *testing.T, body map[string]any) string {
	t.Helper()

	errInfo, ok := body["error"].(map[string]any)
	require.True(t, ok, "response has no error object: %v", body)

	return errInfo["code"].(string)
}

func sampleUser() *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Email:        "a@x.com",
		Login:        "alice",
		PasswordHash: "$2a$10$secrethash",
		CreatedAt:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestAuthenticationHandler_Register(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.echo.POST("/auth/register", f.handler.Register)
		user := sampleUser()

		f.usecase.EXPECT().
			Register(mock.Anything, &usecase.RegisterInput{Email: "a@x.com", Login: "alice", Password: "secret1"}).
			Return(user, nil)

		rec, body := f.do(http.MethodPost, "/auth/register", `{"email":"a@x.com","login":"alice","password":"secret1"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		data := body["data"].(map[string]any)
		assert.Equal(t, user.ID.String(), data["id"])
		assert.Equal(t, "a@x.com", data["email"])
		assert.NotContains(t, rec.Body.String(), "secrethash")
		assert.NotContains(t, rec.Body.String(), "secret1")
	})

	t.Run("validation failure never reaches the use case", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.echo.POST("/auth/register", f.handler.Register)

		rec, body := f.do(http.MethodPost, "/auth/register", `{"email":"not-an-email","login":"al","password":"123"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, body))
		details := body["error"].(map[string]any)["details"].([]any)
		assert.Len(t, details, 3)
	})

	t.Run("password too long", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.echo.POST("/auth/register", f.handler.Register)

		rec, _ := f.do(http.MethodPost, "/auth/register", `{"email":"a@x.com","login":"alice","password":"1234567890123"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.echo.POST("/auth/register", f.handler.Register)

		rec, body := f.do(http.MethodPost, "/auth/register", `{"email":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", errorCode(t, body))
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.echo.POST("/auth/register", f.handler.Register)

		f.usecase.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)

		rec, body := f.do(http.MethodPost, "/auth/register", `{"email":"a@x.com","login":"alice","password":"secret1"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "USER_ALREADY_EXISTS", errorCode(t, body))
	})
}

func TestAuthenticationHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(uc *mockUsecase.MockAuthenticationUsecase, user *entity.User)
		wantStatus int
		wantCode   string
	}{
		{
			name: "success",
			setup: func(uc *mockUsecase.MockAuthenticationUsecase, user *entity.User) {
				uc.EXPECT().VerifyUser(mock.Anything, &usecase.VerifyUserInput{Email: "a@x.com", Password: "secret1"}).Return(user, nil)
				uc.EXPECT().CreateUserToken(mock.Anything, user).Return(service.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown email",
			setup: func(uc *mockUsecase.MockAuthenticationUsecase, _ *entity.User) {
				uc.EXPECT().VerifyUser(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "USER_NOT_FOUND",
		},
		{
			name: "wrong password",
			setup: func(uc *mockUsecase.MockAuthenticationUsecase, _ *entity.User) {
				uc.EXPECT().VerifyUser(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserPasswordWrong)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "USER_PASSWORD_WRONG",
		},
		{
			name: "token signing failure",
			setup: func(uc *mockUsecase.MockAuthenticationUsecase, user *entity.User) {
				uc.EXPECT().VerifyUser(mock.Anything, mock.Anything).Return(user, nil)
				uc.EXPECT().CreateUserToken(mock.Anything, user).Return(service.TokenPair{}, domainerrors.ErrTokenCreationFailed)
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "TOKEN_CREATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			f.echo.POST("/auth/login", f.handler.Login)
			user := sampleUser()
			tt.setup(f.usecase, user)

			rec, body := f.do(http.MethodPost, "/auth/login", `{"email":"a@x.com","password":"secret1"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, body))

				return
			}
			data := body["data"].(map[string]any)
			assert.Equal(t, user.ID.String(), data["id"])
			assert.Equal(t, "access", data["accessToken"])
			assert.Equal(t, "refresh", data["refreshToken"])
		})
	}
}

func TestAuthenticationHandler_Refresh(t *testing.T) {
	f := newHandlerFixture(t)
	f.echo.POST("/auth/refresh", f.handler.Refresh)

	f.usecase.EXPECT().RefreshUserToken(mock.Anything, "good").
		Return(service.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil)
	f.usecase.EXPECT().RefreshUserToken(mock.Anything, "bad").
		Return(service.TokenPair{}, domainerrors.ErrRefreshTokenInvalid)

	rec, body := f.do(http.MethodPost, "/auth/refresh", `{"refreshToken":"good"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a2", body["data"].(map[string]any)["accessToken"])

	rec, body = f.do(http.MethodPost, "/auth/refresh", `{"refreshToken":"bad"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "REFRESH_TOKEN_INVALID", errorCode(t, body))

	rec, _ = f.do(http.MethodPost, "/auth/refresh", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthenticationHandler_Show(t *testing.T) {
	f := newHandlerFixture(t)
	f.echo.GET("/auth/:id", f.handler.Show)
	user := sampleUser()
	missing := uuid.New()

	f.usecase.EXPECT().GetUser(mock.Anything, user.ID).Return(user, nil)
	f.usecase.EXPECT().GetUser(mock.Anything, missing).Return(nil, domainerrors.ErrUserNotFound)

	rec, body := f.do(http.MethodGet, "/auth/"+user.ID.String(), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", body["data"].(map[string]any)["login"])

	rec, _ = f.do(http.MethodGet, "/auth/"+missing.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, body = f.do(http.MethodGet, "/auth/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, body))
}

func TestAuthenticationHandler_ChangePassword(t *testing.T) {
	user := sampleUser()

	t.Run("changes the password of the token owner", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.echo.PATCH("/auth/password", f.handler.ChangePassword, withClaims(user.ID))

		f.usecase.EXPECT().ChangePassword(mock.Anything, &usecase.ChangePasswordInput{
			UserID:      user.ID,
			Password:    "secret1",
			NewPassword: "secret2",
		}).Return(user, nil)

		rec, _ := f.do(http.MethodPatch, "/auth/password", `{"password":"secret1","newPassword":"secret2"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong current password", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.echo.PATCH("/auth/password", f.handler.ChangePassword, withClaims(user.ID))

		f.usecase.EXPECT().ChangePassword(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrPasswordMismatch)

		rec, body := f.do(http.MethodPatch, "/auth/password", `{"password":"wrong11","newPassword":"secret2"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "PASSWORD_MISMATCH", errorCode(t, body))
	})

	t.Run("without claims", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.echo.PATCH("/auth/password", f.handler.ChangePassword)

		rec, _ := f.do(http.MethodPatch, "/auth/password", `{"password":"secret1","newPassword":"secret2"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthenticationHandler_Check(t *testing.T) {
	f := newHandlerFixture(t)
	userID := uuid.New()
	f.echo.GET("/auth/check", f.handler.Check, withClaims(userID))

	rec, body := f.do(http.MethodGet, "/auth/check", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, userID.String(), data["id"])
	assert.Equal(t, "alice", data["login"])
}

func TestHealthAndSpec(t *testing.T) {
	e := echo.New()
	e.GET("/health", HealthCheck)
	e.GET("/spec", SwaggerUI)
	e.GET("/spec/openapi.yaml", OpenAPISpec)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	var health response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.True(t, health.Success)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/spec", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "swagger-ui")

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/spec/openapi.yaml", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/auth/register:")
}
