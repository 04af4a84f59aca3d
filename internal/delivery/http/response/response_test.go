package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deliverycontext "account/internal/delivery/context"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]string{"id": "1"}, ""))

	resp := decode(t, rec)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "Success", resp.Message)
	assert.Equal(t, "req-1", resp.Meta.RequestID)
	assert.Nil(t, resp.Error)
}

func TestError_KeepsDetailsForClientErrors(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, BadRequestWithDetails(c, "VALIDATION_FAILED", "input validation failed", []string{"email"}))

	resp := decode(t, rec)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
	assert.Equal(t, []any{"email"}, resp.Error.Details)
}

func TestError_DropsDetails(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "internal", status: http.StatusInternalServerError},
		{name: "unauthorized", status: http.StatusUnauthorized},
		{name: "forbidden", status: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, Error(c, tt.status, "CODE", "", "secret cause"))

			resp := decode(t, rec)
			assert.Nil(t, resp.Error.Details)
			assert.Equal(t, http.StatusText(tt.status), resp.Message)
		})
	}
}
