package freeconnect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	freeconnect "github.com/freeconnect/freeconnect-go"
)

func TestSessionAuthenticated(t *testing.T) {
	assert.False(t, freeconnect.Session{}.Authenticated())
	assert.False(t, freeconnect.Session{Token: "token"}.Authenticated())
	assert.True(t, session(1, freeconnect.RoleClient).Authenticated())
}

func TestSessionHasRole(t *testing.T) {
	s := session(1, freeconnect.RoleFreelancer)
	assert.True(t, s.HasRole(freeconnect.RoleFreelancer))
	assert.False(t, s.HasRole(freeconnect.RoleClient))
	assert.False(t, freeconnect.Session{}.HasRole(freeconnect.RoleClient))
}

func TestSessionClaims(t *testing.T) {
	s := session(42, freeconnect.RoleAdmin)

	claims, err := s.Claims()
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin", claims.UserRole)
	assert.Equal(t, "FreeConnect", claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.True(t, claims.ExpiresAt.After(*claims.IssuedAt))
}

func TestSessionClaimsErrors(t *testing.T) {
	_, err := freeconnect.Session{}.Claims()
	assert.ErrorIs(t, err, freeconnect.ErrNoSession)

	_, err = freeconnect.Session{Token: "not a jwt"}.Claims()
	assert.Error(t, err)
}
