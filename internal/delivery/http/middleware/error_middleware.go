package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "account/internal/delivery/context"
	"account/internal/delivery/http/response"
	"account/internal/delivery/http/validator"
	domainerrors "account/internal/domain/errors"
)

var kindStatus = map[domainerrors.Kind]int{
	domainerrors.KindConflict:     http.StatusConflict,
	domainerrors.KindNotFound:     http.StatusNotFound,
	domainerrors.KindUnauthorized: http.StatusUnauthorized,
	domainerrors.KindBadRequest:   http.StatusBadRequest,
	domainerrors.KindValidation:   http.StatusBadRequest,
	domainerrors.KindInternal:     http.StatusInternalServerError,
}

// StatusFromKind is the only place a domain error kind becomes an HTTP status.
func StatusFromKind(kind domainerrors.Kind) int {
	if status, ok := kindStatus[kind]; ok {
		return status
	}

	return http.StatusInternalServerError
}

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	// Request body failed struct validation
	var validationErr *validator.ValidationError
	if errors.As(err, &validationErr) {
		_ = response.BadRequestWithDetails(c,
			domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(),
			validationErr.Fields,
		)

		return
	}

	// Attempt to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		status := StatusFromKind(appErr.Kind())
		if status >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
		}

		_ = response.Error(c, status, appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	// Check if it is an Echo HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	// Default to internal error, log the error but return a generic message (do not expose internal details)
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), "Internal server error, please try again later")
}
