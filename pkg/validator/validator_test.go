package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

func TestValidate_Success(t *testing.T) {
	err := Validate(loginForm{Email: "shopper@example.com", Password: "hunter22"})
	assert.NoError(t, err)
}

func TestValidate_MissingFields(t *testing.T) {
	err := Validate(loginForm{})
	require.Error(t, err)

	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))

	fields := valErr.Fields()
	assert.Equal(t, "is required", fields["Email"])
	assert.Equal(t, "is required", fields["Password"])
}

func TestValidate_InvalidEmail(t *testing.T) {
	err := Validate(loginForm{Email: "not-an-email", Password: "hunter22"})
	require.Error(t, err)

	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "must be a valid email address", valErr.Fields()["Email"])
	assert.Contains(t, valErr.Error(), "Email")
}

func TestValidate_MinLength(t *testing.T) {
	err := Validate(loginForm{Email: "shopper@example.com", Password: "abc"})
	require.Error(t, err)

	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "must be at least 6 characters", valErr.Fields()["Password"])
}
