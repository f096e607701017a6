package freeconnect_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	freeconnect "github.com/freeconnect/freeconnect-go"
)

func TestLoginSuccess(t *testing.T) {
	ctx := context.Background()
	user := testUser(7, freeconnect.RoleClient)
	token := mintToken(7, "client")

	store := freeconnect.NewMemoryStore()
	broadcaster := freeconnect.NewSessionBroadcaster(ctx, store)

	var observed []freeconnect.Session
	broadcaster.Subscribe(func(s freeconnect.Session) {
		observed = append(observed, s)
	})

	authenticator := freeconnect.NewAuthenticator("http://backend", store, broadcaster,
		freeconnect.WithDoer(&http.Client{Transport: appTransport(authBackend(token, user))}),
		freeconnect.WithLogger(freeconnect.NopLogger{}),
	)

	session, err := authenticator.Login(ctx, "ada@example.com", "open sesame")
	require.NoError(t, err)
	require.NotNil(t, session.User)
	assert.Equal(t, token, session.Token)
	assert.Equal(t, uint(7), session.User.ID)
	assert.Equal(t, freeconnect.RoleClient, session.User.Role)
	assert.True(t, session.Authenticated())

	// Store and broadcaster agree by the time Login returns.
	storedToken, ok := store.Token(ctx)
	require.True(t, ok)
	assert.Equal(t, token, storedToken)
	storedUser, ok := store.User(ctx)
	require.True(t, ok)
	assert.Equal(t, uint(7), storedUser.ID)
	assert.Equal(t, session, broadcaster.Current())

	// Initial replay plus the login notification.
	require.Len(t, observed, 2)
	assert.False(t, observed[0].Authenticated())
	assert.True(t, observed[1].Authenticated())
}

func TestLoginRejectedCredentials(t *testing.T) {
	ctx := context.Background()
	store := freeconnect.NewMemoryStore()
	broadcaster := freeconnect.NewSessionBroadcaster(ctx, store)

	authenticator := freeconnect.NewAuthenticator("http://backend", store, broadcaster,
		freeconnect.WithDoer(&http.Client{Transport: appTransport(authBackend("unused", testUser(1, freeconnect.RoleClient)))}),
		freeconnect.WithLogger(freeconnect.NopLogger{}),
	)

	_, err := authenticator.Login(ctx, "ada@example.com", "wrong password")
	require.Error(t, err)
	assert.True(t, freeconnect.IsAuthError(err))
	assert.Contains(t, err.Error(), "Invalid credentials")

	// Local state stays untouched on failure.
	_, ok := store.Token(ctx)
	assert.False(t, ok)
	assert.False(t, broadcaster.Current().Authenticated())
}

func TestLoginValidationShortCircuits(t *testing.T) {
	ctx := context.Background()
	store := freeconnect.NewMemoryStore()
	broadcaster := freeconnect.NewSessionBroadcaster(ctx, store)

	spy := &countingTransport{base: appTransport(authBackend("unused", testUser(1, freeconnect.RoleClient)))}
	authenticator := freeconnect.NewAuthenticator("http://backend", store, broadcaster,
		freeconnect.WithDoer(&http.Client{Transport: spy}),
		freeconnect.WithLogger(freeconnect.NopLogger{}),
	)

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "open sesame"},
		{"malformed email", "not-an-email", "open sesame"},
		{"empty password", "ada@example.com", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := authenticator.Login(ctx, tc.email, tc.password)
			require.Error(t, err)
			assert.True(t, freeconnect.IsValidationError(err))
		})
	}

	assert.Equal(t, int64(0), spy.calls.Load(), "validation failures must not reach the network")
}

func TestLoginRejectsMalformedResponses(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name string
		body fiber.Map
	}{
		{"missing token", fiber.Map{"user": testUser(1, freeconnect.RoleClient)}},
		{"missing user", fiber.Map{"token": "abc"}},
		{"unknown role", fiber.Map{"token": "abc", "user": fiber.Map{"user_id": 1, "role": "superuser"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Post("/login", func(c *fiber.Ctx) error {
				return c.JSON(tc.body)
			})

			store := freeconnect.NewMemoryStore()
			broadcaster := freeconnect.NewSessionBroadcaster(ctx, store)
			authenticator := freeconnect.NewAuthenticator("http://backend", store, broadcaster,
				freeconnect.WithDoer(&http.Client{Transport: appTransport(app)}),
				freeconnect.WithLogger(freeconnect.NopLogger{}),
			)

			_, err := authenticator.Login(ctx, "ada@example.com", "open sesame")
			require.Error(t, err)
			_, ok := store.Token(ctx)
			assert.False(t, ok)
			assert.False(t, broadcaster.Current().Authenticated())
		})
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	store := freeconnect.NewMemoryStore()
	broadcaster := freeconnect.NewSessionBroadcaster(ctx, store)

	authenticator := freeconnect.NewAuthenticator("http://backend", store, broadcaster,
		freeconnect.WithDoer(&http.Client{Transport: appTransport(authBackend("unused", testUser(1, freeconnect.RoleFreelancer)))}),
		freeconnect.WithLogger(freeconnect.NopLogger{}),
	)

	reg := freeconnect.Registration{
		Name:            "Ada Lovelace",
		Email:           "ada@example.com",
		Role:            freeconnect.RoleFreelancer,
		Password:        "difference engine",
		ConfirmPassword: "difference engine",
	}

	require.NoError(t, authenticator.Register(ctx, reg))

	// Registration never signs the user in.
	_, ok := store.Token(ctx)
	assert.False(t, ok)
	assert.False(t, broadcaster.Current().Authenticated())

	t.Run("duplicate email", func(t *testing.T) {
		dup := reg
		dup.Email = "taken@example.com"
		err := authenticator.Register(ctx, dup)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Email already registered")
	})

	t.Run("password mismatch", func(t *testing.T) {
		bad := reg
		bad.ConfirmPassword = "analytical engine"
		err := authenticator.Register(ctx, bad)
		require.Error(t, err)
		assert.True(t, freeconnect.IsValidationError(err))
	})

	t.Run("short password", func(t *testing.T) {
		bad := reg
		bad.Password = "tiny"
		bad.ConfirmPassword = "tiny"
		err := authenticator.Register(ctx, bad)
		require.Error(t, err)
		assert.True(t, freeconnect.IsValidationError(err))
	})

	t.Run("unknown role", func(t *testing.T) {
		bad := reg
		bad.Role = freeconnect.Role("superuser")
		err := authenticator.Register(ctx, bad)
		require.Error(t, err)
		assert.True(t, freeconnect.IsValidationError(err))
	})
}

func TestLogoutClearsLocalState(t *testing.T) {
	ctx := context.Background()
	user := testUser(3, freeconnect.RoleFreelancer)
	token := mintToken(3, "freelancer")

	store := freeconnect.NewMemoryStore()
	broadcaster := freeconnect.NewSessionBroadcaster(ctx, store)

	authenticator := freeconnect.NewAuthenticator("http://backend", store, broadcaster,
		freeconnect.WithDoer(&http.Client{Transport: appTransport(authBackend(token, user))}),
		freeconnect.WithLogger(freeconnect.NopLogger{}),
	)

	_, err := authenticator.Login(ctx, "ada@example.com", "open sesame")
	require.NoError(t, err)

	require.NoError(t, authenticator.Logout(ctx))

	_, ok := store.Token(ctx)
	assert.False(t, ok)
	_, ok = store.User(ctx)
	assert.False(t, ok)
	assert.False(t, broadcaster.Current().Authenticated())

	// Logging out twice is harmless.
	require.NoError(t, authenticator.Logout(ctx))
}

func TestLogoutClearsEvenWhenServerFails(t *testing.T) {
	ctx := context.Background()
	store := freeconnect.NewMemoryStore()
	store.SaveToken(ctx, "stale-token")
	store.SaveUser(ctx, testUser(9, freeconnect.RoleAdmin))
	broadcaster := freeconnect.NewSessionBroadcaster(ctx, store)
	require.True(t, broadcaster.Current().Authenticated())

	app := fiber.New()
	app.Post("/logout", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "session service down"})
	})

	authenticator := freeconnect.NewAuthenticator("http://backend", store, broadcaster,
		freeconnect.WithDoer(&http.Client{Transport: appTransport(app)}),
		freeconnect.WithLogger(freeconnect.NopLogger{}),
		freeconnect.WithServerLogout(true),
	)

	err := authenticator.Logout(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session service down")

	// The backend failure is reported, but the local session is gone.
	_, ok := store.Token(ctx)
	assert.False(t, ok)
	_, ok = store.User(ctx)
	assert.False(t, ok)
	assert.False(t, broadcaster.Current().Authenticated())
}

func TestLoginSessionClaims(t *testing.T) {
	ctx := context.Background()
	user := testUser(7, freeconnect.RoleClient)
	token := mintToken(7, "client")

	store := freeconnect.NewMemoryStore()
	broadcaster := freeconnect.NewSessionBroadcaster(ctx, store)

	authenticator := freeconnect.NewAuthenticator("http://backend", store, broadcaster,
		freeconnect.WithDoer(&http.Client{Transport: appTransport(authBackend(token, user))}),
		freeconnect.WithLogger(freeconnect.NopLogger{}),
	)

	session, err := authenticator.Login(ctx, "ada@example.com", "open sesame")
	require.NoError(t, err)

	claims, err := session.Claims()
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "client", claims.UserRole)
	assert.Equal(t, "FreeConnect", claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), *claims.ExpiresAt, time.Minute)
}
