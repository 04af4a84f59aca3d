// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "account/internal/delivery/context"
	"account/internal/delivery/http/response"
	"account/internal/domain/entity"
	domainerrors "account/internal/domain/errors"
	"account/internal/usecase"
)

// AuthenticationHandlerParams holds dependencies for AuthenticationHandler, injected by Fx.
type AuthenticationHandlerParams struct {
	fx.In

	AuthUC usecase.AuthenticationUsecase
	Logger *slog.Logger
}

// AuthenticationHandler serves the /auth routes.
type AuthenticationHandler struct {
	authUC usecase.AuthenticationUsecase
	logger *slog.Logger
}

// NewAuthenticationHandler is the constructor for AuthenticationHandler.
func NewAuthenticationHandler(params AuthenticationHandlerParams) *AuthenticationHandler {
	return &AuthenticationHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// CreateUserRequest is the registration body.
type CreateUserRequest struct {
	Avatar   string `json:"avatar" validate:"omitempty,max=500"`
	Email    string `json:"email" validate:"required,email"`
	Login    string `json:"login" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6,max=12"`
}

// LoginUserRequest is the login body.
type LoginUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=12"`
}

// ChangePasswordRequest is the password change body. The user comes from the access token.
type ChangePasswordRequest struct {
	Password    string `json:"password" validate:"required,min=6,max=12"`
	NewPassword string `json:"newPassword" validate:"required,min=6,max=12"`
}

// RefreshTokenRequest carries a refresh token to exchange for a new pair.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Login     string    `json:"login"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LoggedUserResponse is returned on login.
type LoggedUserResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Login        string    `json:"login"`
	Avatar       string    `json:"avatar,omitempty"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
}

// TokenCheckResponse echoes the verified access token payload.
type TokenCheckResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Login     string    `json:"login"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func newUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Login:     user.Login,
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// Register handles POST /auth/register.
func (h *AuthenticationHandler) Register(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Avatar:   req.Avatar,
		Email:    req.Email,
		Login:    req.Login,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newUserResponse(user), "The new user has been successfully created.")
}

// Login handles POST /auth/login.
func (h *AuthenticationHandler) Login(c echo.Context) error {
	var req LoginUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	ctx := c.Request().Context()
	user, err := h.authUC.VerifyUser(ctx, &usecase.VerifyUserInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	tokens, err := h.authUC.CreateUserToken(ctx, user)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &LoggedUserResponse{
		ID:           user.ID,
		Email:        user.Email,
		Login:        user.Login,
		Avatar:       user.Avatar,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, "User has been successfully logged.")
}

// Refresh handles POST /auth/refresh.
func (h *AuthenticationHandler) Refresh(c echo.Context) error {
	var req RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	tokens, err := h.authUC.RefreshUserToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokens, "Tokens have been refreshed.")
}

// Show handles GET /auth/:id.
func (h *AuthenticationHandler) Show(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("id must be a valid UUID"))
	}

	user, err := h.authUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user), "User found.")
}

// ChangePassword handles PATCH /auth/password for the authenticated user.
func (h *AuthenticationHandler) ChangePassword(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrAccessTokenInvalid)
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password change input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.authUC.ChangePassword(c.Request().Context(), &usecase.ChangePasswordInput{
		UserID:      userID,
		Password:    req.Password,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user), "Password has been changed.")
}

// Check handles GET /auth/check and returns the verified access token payload.
func (h *AuthenticationHandler) Check(c echo.Context) error {
	claims := deliverycontext.GetClaims(c)
	if claims == nil {
		return errors.WithStack(domainerrors.ErrAccessTokenInvalid)
	}

	resp := &TokenCheckResponse{
		ID:    claims.Subject,
		Email: claims.Email,
		Login: claims.Login,
	}
	if claims.ExpiresAt != nil {
		resp.ExpiresAt = claims.ExpiresAt.Time
	}

	return response.Success(c, http.StatusOK, resp, "Token is valid.")
}
