package middleware

import (
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "account/internal/delivery/context"
	domainerrors "account/internal/domain/errors"
	"account/internal/domain/service"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the Bearer access token and stores its claims on
// the context. Refresh tokens are rejected here.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return errors.WithStack(domainerrors.ErrAccessTokenInvalid.WithDetails("authorization header is missing"))
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || strings.TrimSpace(tokenString) == "" {
			return errors.WithStack(domainerrors.ErrAccessTokenInvalid.WithDetails("authorization header must be a Bearer token"))
		}

		claims, err := m.tokenSvc.ValidateAccessToken(strings.TrimSpace(tokenString))
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Access token rejected", slog.Any("error", err))

			return errors.WithStack(domainerrors.ErrAccessTokenInvalid)
		}

		deliverycontext.SetClaims(c, claims)

		return next(c)
	}
}
