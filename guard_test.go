package freeconnect_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	freeconnect "github.com/freeconnect/freeconnect-go"
)

func TestEvaluateSession(t *testing.T) {
	anonymous := freeconnect.Session{}
	client := session(1, freeconnect.RoleClient)
	freelancer := session(2, freeconnect.RoleFreelancer)
	admin := session(3, freeconnect.RoleAdmin)

	cases := []struct {
		name    string
		session freeconnect.Session
		rule    freeconnect.AccessRule
		allowed bool
	}{
		{"anonymous denied by auth-only rule", anonymous, freeconnect.RequireAuth(), false},
		{"anonymous denied by role rule", anonymous, freeconnect.RequireClient(), false},
		{"client passes auth-only rule", client, freeconnect.RequireAuth(), true},
		{"client passes client rule", client, freeconnect.RequireClient(), true},
		{"freelancer denied by client rule", freelancer, freeconnect.RequireClient(), false},
		{"freelancer passes freelancer rule", freelancer, freeconnect.RequireFreelancer(), true},
		{"admin passes auth-only rule", admin, freeconnect.RequireAuth(), true},
		{"admin denied by client rule", admin, freeconnect.RequireClient(), false},
		{"admin passes admin rule", admin, freeconnect.RequireAdmin(), true},
		{"client passes multi-role rule", client, freeconnect.RequireRoles(freeconnect.RoleClient, freeconnect.RoleAdmin), true},
		{"freelancer denied by multi-role rule", freelancer, freeconnect.RequireRoles(freeconnect.RoleClient, freeconnect.RoleAdmin), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			decision := freeconnect.EvaluateSession(tc.session, tc.rule, freeconnect.DefaultLoginRoute)
			assert.Equal(t, tc.allowed, decision.Allowed)
			if tc.allowed {
				assert.Empty(t, decision.RedirectTo)
			} else {
				assert.Equal(t, freeconnect.DefaultLoginRoute, decision.RedirectTo)
			}
		})
	}
}

func TestGuardTracksBroadcaster(t *testing.T) {
	b := freeconnect.NewSessionBroadcaster(context.Background(), nil)
	guard := freeconnect.NewGuard(b)

	rule := freeconnect.RequireClient()

	assert.False(t, guard.Evaluate(rule).Allowed)

	b.Set(session(1, freeconnect.RoleClient))
	assert.True(t, guard.Evaluate(rule).Allowed)

	b.Set(session(2, freeconnect.RoleFreelancer))
	assert.False(t, guard.Evaluate(rule).Allowed)

	b.Set(freeconnect.Session{})
	assert.False(t, guard.Evaluate(rule).Allowed)
}

func TestGuardCustomLoginRoute(t *testing.T) {
	b := freeconnect.NewSessionBroadcaster(context.Background(), nil)
	guard := freeconnect.NewGuard(b, freeconnect.WithLoginRoute("/signin"))

	decision := guard.Evaluate(freeconnect.RequireAuth())
	assert.False(t, decision.Allowed)
	assert.Equal(t, "/signin", decision.RedirectTo)
}

func TestGuardEvaluateRoute(t *testing.T) {
	b := freeconnect.NewSessionBroadcaster(context.Background(), nil)
	guard := freeconnect.NewGuard(b)
	routes := freeconnect.DefaultRoutes()

	// Routes absent from the table are public.
	assert.True(t, guard.EvaluateRoute(routes, "projects").Allowed)

	// Gated routes deny anonymous sessions.
	assert.False(t, guard.EvaluateRoute(routes, "profile").Allowed)
	assert.False(t, guard.EvaluateRoute(routes, "my-projects").Allowed)
	assert.False(t, guard.EvaluateRoute(routes, "admin-dashboard").Allowed)

	b.Set(session(1, freeconnect.RoleFreelancer))
	assert.True(t, guard.EvaluateRoute(routes, "profile").Allowed)
	assert.True(t, guard.EvaluateRoute(routes, "freelancer-projects").Allowed)
	assert.True(t, guard.EvaluateRoute(routes, "freelancer-dashboard").Allowed)
	assert.False(t, guard.EvaluateRoute(routes, "my-projects").Allowed)
	assert.False(t, guard.EvaluateRoute(routes, "client-dashboard").Allowed)
	assert.False(t, guard.EvaluateRoute(routes, "admin-dashboard").Allowed)

	b.Set(session(2, freeconnect.RoleAdmin))
	assert.True(t, guard.EvaluateRoute(routes, "admin-dashboard").Allowed)
	assert.False(t, guard.EvaluateRoute(routes, "post-project").Allowed)
}
