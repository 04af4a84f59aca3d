package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signUp struct {
	Email    string `json:"email" validate:"required,email"`
	Login    string `json:"login" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6,max=12"`
	Avatar   string `json:"avatar,omitempty" validate:"omitempty,max=500"`
}

func TestValidate_Valid(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&signUp{Email: "a@x.com", Login: "alice", Password: "secret1"}))
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&signUp{Email: "not-an-email", Login: "al", Password: "thirteen-char"})
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))

	byField := map[string]FieldError{}
	for _, f := range validationErr.Fields {
		byField[f.Field] = f
	}

	require.Len(t, byField, 3)
	assert.Equal(t, "email", byField["email"].Rule)
	assert.Equal(t, "min", byField["login"].Rule)
	assert.Equal(t, "3", byField["login"].Param)
	assert.Equal(t, "max", byField["password"].Rule)
	assert.Equal(t, "must be at most 12 characters", byField["password"].Message)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_Required(t *testing.T) {
	v := New()

	err := v.Validate(&signUp{})

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Len(t, validationErr.Fields, 3)
	for _, f := range validationErr.Fields {
		assert.Equal(t, "required", f.Rule)
		assert.Equal(t, "is required", f.Message)
	}
}

func TestValidate_NonStruct(t *testing.T) {
	v := New()

	err := v.Validate("just a string")
	require.Error(t, err)

	var validationErr *ValidationError
	assert.False(t, errors.As(err, &validationErr))
}
