package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	freeconnect "github.com/freeconnect/freeconnect-go"
	"github.com/freeconnect/freeconnect-go/store"
)

func openStore(t *testing.T, path string) *store.Store {
	t.Helper()
	s, err := store.Open(context.Background(), path, store.WithLogger(freeconnect.NopLogger{}))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreTokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openStore(t, filepath.Join(t.TempDir(), "credentials.db"))

	assert.True(t, s.Available())

	_, ok := s.Token(ctx)
	assert.False(t, ok)

	s.SaveToken(ctx, "token-one")
	token, ok := s.Token(ctx)
	require.True(t, ok)
	assert.Equal(t, "token-one", token)

	// Last writer wins.
	s.SaveToken(ctx, "token-two")
	token, _ = s.Token(ctx)
	assert.Equal(t, "token-two", token)

	s.ClearToken(ctx)
	_, ok = s.Token(ctx)
	assert.False(t, ok)

	// Clearing twice is harmless.
	s.ClearToken(ctx)
}

func TestStoreUserRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openStore(t, filepath.Join(t.TempDir(), "credentials.db"))

	_, ok := s.User(ctx)
	assert.False(t, ok)

	user := &freeconnect.User{
		ID:    7,
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
		Role:  freeconnect.RoleFreelancer,
	}
	s.SaveUser(ctx, user)

	got, ok := s.User(ctx)
	require.True(t, ok)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Email, got.Email)
	assert.Equal(t, freeconnect.RoleFreelancer, got.Role)

	s.ClearUser(ctx)
	_, ok = s.User(ctx)
	assert.False(t, ok)
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "credentials.db")

	first, err := store.Open(ctx, path, store.WithLogger(freeconnect.NopLogger{}))
	require.NoError(t, err)
	first.SaveToken(ctx, "persisted-token")
	first.SaveUser(ctx, &freeconnect.User{ID: 3, Email: "ada@example.com", Role: freeconnect.RoleClient})
	require.NoError(t, first.Close())

	second := openStore(t, path)
	token, ok := second.Token(ctx)
	require.True(t, ok)
	assert.Equal(t, "persisted-token", token)

	user, ok := second.User(ctx)
	require.True(t, ok)
	assert.Equal(t, uint(3), user.ID)
}

func TestStoreHydratesBroadcaster(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "credentials.db")

	s := openStore(t, path)
	s.SaveToken(ctx, "persisted-token")
	s.SaveUser(ctx, &freeconnect.User{ID: 9, Email: "ada@example.com", Role: freeconnect.RoleAdmin})

	b := freeconnect.NewSessionBroadcaster(ctx, s)
	current := b.Current()
	assert.True(t, current.Authenticated())
	assert.Equal(t, "persisted-token", current.Token)
	assert.Equal(t, uint(9), current.User.ID)
}
