package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Unauthenticated(t *testing.T) {
	s := New()

	assert.Nil(t, s.User)
	assert.Empty(t, s.Token)
	assert.Equal(t, RoleNone, s.Role)
	assert.False(t, s.Authenticated)
}

func TestSetCredentials(t *testing.T) {
	s := New()
	user := User{ID: "u-1", Name: "Ada", Email: "ada@example.com"}

	s.SetCredentials(user, "tok-abc", RoleCustomer)

	assert.True(t, s.Authenticated)
	assert.Equal(t, "tok-abc", s.Token)
	assert.Equal(t, RoleCustomer, s.Role)
	assert.Equal(t, "ada@example.com", s.User.Email)
}

func TestSetCredentials_Overwrites(t *testing.T) {
	s := New()
	s.SetCredentials(User{ID: "u-1"}, "tok-1", RoleCustomer)
	s.SetCredentials(User{ID: "u-2"}, "tok-2", RoleBusiness)

	assert.Equal(t, "u-2", s.User.ID)
	assert.Equal(t, "tok-2", s.Token)
	assert.Equal(t, RoleBusiness, s.Role)
	assert.True(t, s.Authenticated)
}

func TestLogout(t *testing.T) {
	s := New()
	s.SetCredentials(User{ID: "u-1"}, "tok-1", RoleSuperuser)

	s.Logout()

	assert.Nil(t, s.User)
	assert.Empty(t, s.Token)
	assert.Equal(t, RoleNone, s.Role)
	assert.False(t, s.Authenticated)
}

func TestHydrate(t *testing.T) {
	s := Hydrate("persisted-token")

	assert.True(t, s.Authenticated)
	assert.Equal(t, "persisted-token", s.Token)
	// User and role are not restored from persistence.
	assert.Nil(t, s.User)
	assert.Equal(t, RoleNone, s.Role)
}

func TestHydrate_EmptyToken(t *testing.T) {
	s := Hydrate("")

	assert.False(t, s.Authenticated)
	assert.Empty(t, s.Token)
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleBusiness, ParseRole("business"))
	assert.Equal(t, RoleCustomer, ParseRole("customer"))
	assert.Equal(t, RoleSuperuser, ParseRole("superUser"))
	assert.Equal(t, RoleNone, ParseRole("admin"))
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleCustomer.Valid())
	assert.False(t, RoleNone.Valid())
	assert.False(t, Role("root").Valid())
}
