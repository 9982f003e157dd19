package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShopError_Error(t *testing.T) {
	err := New(ErrCodeAuthLoginFailed, "login failed")
	assert.Equal(t, "[AUTH-003] login failed", err.Error())
}

func TestShopError_ErrorWithCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(ErrCodeAPIUnavailable, "api unreachable", cause)

	assert.Contains(t, err.Error(), "[API-003] api unreachable")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestShopError_ErrorWithSuggestions(t *testing.T) {
	err := New(ErrCodeAuthNotLoggedIn, "not logged in").
		WithSuggestions("run 'shopctl auth login' first")

	assert.Contains(t, err.Error(), "Suggestions:")
	assert.Contains(t, err.Error(), "auth login")
}

func TestShopError_Unwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(ErrCodeFileReadFailed, "read failed", cause)

	assert.True(t, stderrors.Is(err, cause))

	var shopErr *ShopError
	require.True(t, stderrors.As(err, &shopErr))
	assert.Equal(t, ErrCodeFileReadFailed, shopErr.Code)
}

func TestRoleMismatch(t *testing.T) {
	err := RoleMismatch("business", "customer")
	assert.Equal(t, ErrCodeAuthRoleMismatch, err.Code)
	assert.Contains(t, err.Message, "business")
	assert.Contains(t, err.Message, "customer")
}
