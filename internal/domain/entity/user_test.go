package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_RoleNamesPreservesOrder(t *testing.T) {
	user := &User{
		Username: "alice",
		Roles: []Role{
			{Name: RoleAdmin},
			{Name: RoleUser},
			{Name: RoleManager},
		},
	}

	assert.Equal(t, []string{RoleAdmin, RoleUser, RoleManager}, user.RoleNames())
}

func TestUser_RoleNamesEmpty(t *testing.T) {
	user := &User{Username: "alice"}

	assert.Empty(t, user.RoleNames())
}

func TestUser_HasRole(t *testing.T) {
	user := &User{
		Username: "alice",
		Roles:    []Role{{Name: RoleUser}},
	}

	assert.True(t, user.HasRole(RoleUser))
	assert.False(t, user.HasRole(RoleAdmin))
}

func TestUser_PasswordHashNeverSerialized(t *testing.T) {
	user := &User{
		Username:     "alice",
		PasswordHash: "$2a$10$secret",
	}

	raw, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")
	assert.NotContains(t, string(raw), "password")
}

func TestPrincipal_HasRole(t *testing.T) {
	principal := &Principal{
		Username: "alice",
		Roles:    []string{RoleUser, RoleManager},
	}

	assert.True(t, principal.HasRole(RoleUser))
	assert.True(t, principal.HasRole(RoleManager))
	assert.False(t, principal.HasRole(RoleAdmin))

	empty := &Principal{Username: "bob"}
	assert.False(t, empty.HasRole(RoleUser))
}
